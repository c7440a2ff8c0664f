// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/mipsasm/internal"
)

// Assembler is a single pass assembler for the MIPS subset.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Index *LineIndex // Line index of the most recent source.
}

// Program is the result of assembling a source file.
type Program struct {
	State        State         // Initial register and memory values.
	Instructions []Instruction // Every token of the CODE section, classified.
}

// Binary returns the encoded instruction words, in source order.
func (prog *Program) Binary() (words []string) {
	for _, inst := range prog.Instructions {
		if len(inst.Word) > 0 {
			words = append(words, inst.Word)
		}
	}
	return
}

// Ignored returns the tokens of the CODE section that were neither an
// instruction nor a label.
func (prog *Program) Ignored() (insts []Instruction) {
	for _, inst := range prog.Instructions {
		if inst.Class == CLASS_IGNORED {
			insts = append(insts, inst)
		}
	}
	return
}

// Lines returns an iterator over the assembled output, one line at a time.
func (prog *Program) Lines() iter.Seq[string] {
	return internal.IterSeqConcat(
		prog.State.Lines(),
		internal.IterSeqOf(KEYWORD_CODE),
		internal.IterSeqOf(prog.Binary()...),
	)
}

// WriteTo writes the assembled output.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for line := range prog.Lines() {
		var count int
		count, err = bw.WriteString(line + "\n")
		n += int64(count)
		if err != nil {
			return
		}
	}
	err = bw.Flush()
	return
}

// syntaxError wraps err with the location of tok.
func (asm *Assembler) syntaxError(tok Token, word string, err error) error {
	return &ErrSyntax{
		LineNo: tok.Line + 1,
		Line:   asm.Index.Line(tok.Line),
		Token:  word,
		Err:    err,
	}
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}
	text := string(data)

	asm.Index = NewLineIndex(text)
	tokens := Tokenize(text)

	st, pos, bad, err := ParseState(tokens, 0)
	if err != nil {
		if len(tokens) == 0 {
			err = &ErrSyntax{LineNo: asm.Index.Len(), Err: err}
			return
		}
		if len(bad.Text) == 0 {
			// Ran out of input, blame the last token.
			bad = tokens[len(tokens)-1]
		}
		err = asm.syntaxError(bad, bad.Text, err)
		return
	}

	prog = &Program{State: st}

	for pos < len(tokens) {
		tok := tokens[pos]
		pos++

		if asm.Verbose {
			log.Printf("%v: %v\n", tok.Line+1, tok.Text)
		}

		rule, ok := Lookup(tok.Text)
		if !ok {
			class := CLASS_IGNORED
			if strings.HasSuffix(tok.Text, ":") {
				class = CLASS_LABEL
			} else if asm.Verbose {
				log.Printf("%v: ignoring '%v'\n", tok.Line+1, tok.Text)
			}
			prog.Instructions = append(prog.Instructions, Instruction{
				LineNo:   tok.Line,
				Mnemonic: tok.Text,
				Class:    class,
			})
			continue
		}

		count := rule.Class.Operands()
		if pos+count > len(tokens) {
			err = asm.syntaxError(tok, tok.Text, ErrUnexpectedEnd)
			prog = nil
			return
		}
		operands := tokens[pos : pos+count]
		pos += count

		enc := &encoder{
			verbose: asm.Verbose,
			index:   asm.Index,
			rule:    rule,
			tokens:  operands,
		}

		var word string
		word, err = enc.encode(tok.Line)
		if err != nil {
			err = asm.syntaxError(tok, enc.bad, err)
			prog = nil
			return
		}

		inst := Instruction{
			LineNo:   tok.Line,
			Mnemonic: tok.Text,
			Class:    rule.Class,
			Word:     word,
		}
		for _, operand := range operands {
			inst.Operands = append(inst.Operands, ParseCommaOperand(operand.Text))
		}
		prog.Instructions = append(prog.Instructions, inst)
	}

	return
}
