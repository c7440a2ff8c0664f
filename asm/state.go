package asm

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

const (
	KEYWORD_REGISTERS = "REGISTERS"
	KEYWORD_MEMORY    = "MEMORY"
	KEYWORD_CODE      = "CODE"
)

// Entry is an initial register or memory value.
type Entry struct {
	Address int // Register number or memory address.
	Value   int
}

// State is the initial machine state declared before the CODE section.
type State struct {
	Registers []Entry
	Memory    []Entry
}

// stateParser walks the tokens of the state block.
type stateParser struct {
	tokens []Token
	pos    int
}

// next returns the next token, or ErrUnexpectedEnd.
func (sp *stateParser) next() (tok Token, err error) {
	if sp.pos >= len(sp.tokens) {
		err = ErrUnexpectedEnd
		return
	}
	tok = sp.tokens[sp.pos]
	sp.pos++
	return
}

// entry reads the value half of an entry whose address is already parsed.
func (sp *stateParser) entry(address int) (ent Entry, tok Token, err error) {
	tok, err = sp.next()
	if err != nil {
		return
	}
	value, err := strconv.Atoi(tok.Text)
	if err != nil {
		err = ErrParseNumber(tok.Text)
		return
	}
	ent = Entry{Address: address, Value: value}
	return
}

// ParseState reads the REGISTERS and MEMORY blocks starting at tokens[pos],
// through the CODE keyword. It returns the position of the first token of
// the CODE section.
//
// On error, bad is the offending token.
func ParseState(tokens []Token, pos int) (st State, next int, bad Token, err error) {
	sp := &stateParser{tokens: tokens, pos: pos}

	defer func() {
		next = sp.pos
	}()

	bad, err = sp.next()
	if err != nil {
		return
	}

	if bad.Text == KEYWORD_REGISTERS {
		for {
			bad, err = sp.next()
			if err != nil {
				return
			}
			if bad.Text == KEYWORD_MEMORY || bad.Text == KEYWORD_CODE {
				break
			}
			if !strings.HasPrefix(bad.Text, "R") {
				err = ErrParseRegister(bad.Text)
				return
			}
			var reg int
			reg, err = strconv.Atoi(bad.Text[1:])
			if err != nil {
				err = ErrParseNumber(bad.Text)
				return
			}
			var ent Entry
			ent, bad, err = sp.entry(reg)
			if err != nil {
				return
			}
			st.Registers = append(st.Registers, ent)
		}
	}

	if bad.Text == KEYWORD_MEMORY {
		for {
			bad, err = sp.next()
			if err != nil {
				return
			}
			if bad.Text == KEYWORD_CODE {
				break
			}
			var addr int
			addr, err = strconv.Atoi(bad.Text)
			if err != nil {
				err = ErrParseNumber(bad.Text)
				return
			}
			var ent Entry
			ent, bad, err = sp.entry(addr)
			if err != nil {
				return
			}
			st.Memory = append(st.Memory, ent)
		}
	}

	if bad.Text != KEYWORD_CODE {
		err = ErrHeaderMissing
		return
	}

	return
}

// Lines returns an iterator over the serialized state, one line at a time.
func (st *State) Lines() iter.Seq[string] {
	return func(yield func(line string) bool) {
		if !yield(KEYWORD_REGISTERS) {
			return
		}
		for _, ent := range st.Registers {
			if !yield(fmt.Sprintf("R%d %d", ent.Address, ent.Value)) {
				return
			}
		}
		if !yield(KEYWORD_MEMORY) {
			return
		}
		for _, ent := range st.Memory {
			if !yield(fmt.Sprintf("%d %d", ent.Address, ent.Value)) {
				return
			}
		}
	}
}

// Serialize renders the state in source form, one entry per line.
func (st *State) Serialize() string {
	return strings.Join(slices.Collect(st.Lines()), "\n") + "\n"
}
