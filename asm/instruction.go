package asm

import (
	"fmt"
	"log"
	"strings"
)

// Class is the encoding class of an instruction record.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_IGNORED  = Class(0) // ignored
	CLASS_LABEL    = Class(1) // label
	CLASS_R        = Class(2) // r
	CLASS_I_IMM    = Class(3) // i-imm
	CLASS_I_MEM    = Class(4) // i-mem
	CLASS_I_BRANCH = Class(5) // i-branch
)

// Operands returns the number of operand tokens the class consumes.
func (class Class) Operands() int {
	switch class {
	case CLASS_R, CLASS_I_IMM, CLASS_I_BRANCH:
		return 3
	case CLASS_I_MEM:
		return 2
	default:
		return 0
	}
}

const (
	OPCODE_SPECIAL = "000000" // R-type opcode.
	SHAMT_NONE     = "00000"  // R-type shift amount.
)

// Rule is the encoding rule of a mnemonic.
type Rule struct {
	Class  Class
	Opcode string // 6 bit opcode.
	Funct  string // 6 bit function, R-type only.
}

// ruleMap maps mnemonics to their encoding rules.
var ruleMap = map[string]Rule{
	"LW":   {Class: CLASS_I_MEM, Opcode: "100011"},
	"SW":   {Class: CLASS_I_MEM, Opcode: "101011"},
	"ADDI": {Class: CLASS_I_IMM, Opcode: "001000"},
	"BEQ":  {Class: CLASS_I_BRANCH, Opcode: "000100"},
	"BNE":  {Class: CLASS_I_BRANCH, Opcode: "000101"},
	"ADD":  {Class: CLASS_R, Opcode: OPCODE_SPECIAL, Funct: "100000"},
	"SUB":  {Class: CLASS_R, Opcode: OPCODE_SPECIAL, Funct: "100010"},
	"SLT":  {Class: CLASS_R, Opcode: OPCODE_SPECIAL, Funct: "101010"},
}

// Lookup returns the rule for a mnemonic.
func Lookup(mnemonic string) (rule Rule, ok bool) {
	rule, ok = ruleMap[mnemonic]
	return
}

// Instruction is a single classified source token, with its encoding.
type Instruction struct {
	LineNo   int      // 0-based line number.
	Mnemonic string   // Mnemonic, label declaration or ignored token.
	Class    Class    // Encoding class.
	Operands []string // Operand tokens, commas stripped.
	Word     string   // 32 binary digits, empty for labels and ignored tokens.
}

func (inst Instruction) String() string {
	if len(inst.Operands) == 0 {
		return fmt.Sprintf("%v %v", inst.Class, inst.Mnemonic)
	}
	return fmt.Sprintf("%v %v %v", inst.Class, inst.Mnemonic, strings.Join(inst.Operands, ", "))
}

// encoder holds the context needed to encode one instruction.
type encoder struct {
	verbose bool
	index   *LineIndex
	rule    Rule
	tokens  []Token // Operand tokens.
	bad     string  // Operand that failed to encode.
}

// register encodes an operand as a register field.
func (enc *encoder) register(word string) (bits string, err error) {
	reg, err := ParseRegister(ParseCommaOperand(word))
	if err != nil {
		return
	}
	return EncodeRegister(reg)
}

// immediate encodes an operand as an immediate field.
func (enc *encoder) immediate(word string, lineno int) (bits string, err error) {
	value, err := parseNumber(ParseCommaOperand(word), lineDict(lineno))
	if err != nil {
		return
	}
	return EncodeImmediate(value)
}

// fields encodes each word with its own field encoder.
func (enc *encoder) fields(words []string, encs ...func(string) (string, error)) (bits string, err error) {
	var sb strings.Builder
	for n, word := range words {
		var field string
		field, err = encs[n](word)
		if err != nil {
			enc.bad = word
			return
		}
		sb.WriteString(field)
	}
	bits = sb.String()
	return
}

// encode composes the full instruction word.
func (enc *encoder) encode(lineno int) (word string, err error) {
	imm := func(word string) (string, error) { return enc.immediate(word, lineno) }

	var body string
	switch enc.rule.Class {
	case CLASS_R:
		// Rd, Rs, Rt => rs rt rd shamt funct
		rd, rs, rt := enc.tokens[0].Text, enc.tokens[1].Text, enc.tokens[2].Text
		body, err = enc.fields([]string{rs, rt, rd}, enc.register, enc.register, enc.register)
		if err != nil {
			return
		}
		body += SHAMT_NONE + enc.rule.Funct
	case CLASS_I_MEM:
		// Rt, imm(Rs) => rs rt imm
		offset, base := ParseMemoryOperand(enc.tokens[1].Text)
		body, err = enc.fields([]string{base, enc.tokens[0].Text, offset}, enc.register, enc.register, imm)
	case CLASS_I_IMM:
		// Rt, Rs, imm => rs rt imm
		rt, rs, value := enc.tokens[0].Text, enc.tokens[1].Text, enc.tokens[2].Text
		body, err = enc.fields([]string{rs, rt, value}, enc.register, enc.register, imm)
	case CLASS_I_BRANCH:
		// Rt, Rs, label => rt rs offset
		body, err = enc.fields([]string{enc.tokens[0].Text, enc.tokens[1].Text}, enc.register, enc.register)
		if err != nil {
			return
		}
		var offset string
		offset, err = enc.branch(enc.tokens[2])
		body += offset
	default:
		log.Panicf("class %v has no encoding", enc.rule.Class)
	}
	if err != nil {
		return
	}

	word = enc.rule.Opcode + body
	return
}

// branch encodes the line distance from the instruction after a branch to
// its target label.
func (enc *encoder) branch(label Token) (bits string, err error) {
	if enc.verbose {
		log.Printf("looking for label %v:", label.Text)
	}
	target, err := enc.index.LineNumberOf(label.Text)
	if err != nil {
		enc.bad = label.Text
		return
	}

	current := enc.index.CurrentLineNumber(label.End())
	if enc.verbose {
		log.Printf("label %v on line %v, current line %v", label.Text, target, current)
	}

	bits, err = EncodeImmediate(target - current - 1)
	if err != nil {
		enc.bad = label.Text
	}
	return
}
