package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleMap(t *testing.T) {
	assert := assert.New(t)

	for mnemonic, rule := range ruleMap {
		assert.Len(rule.Opcode, 6, mnemonic)
		assert.Greater(rule.Class.Operands(), 0, mnemonic)
		if rule.Class == CLASS_R {
			assert.Equal(OPCODE_SPECIAL, rule.Opcode, mnemonic)
			assert.Len(rule.Funct, 6, mnemonic)
		} else {
			assert.Empty(rule.Funct, mnemonic)
		}
	}

	_, ok := Lookup("add")
	assert.False(ok)
	_, ok = Lookup("NOP")
	assert.False(ok)

	assert.Equal("i-branch", CLASS_I_BRANCH.String())
	assert.Equal("Class(9)", Class(9).String())
}

// encodeAt encodes the instruction starting at tokens[at] of a source text.
func encodeAt(t *testing.T, text string, at int) (word string, err error) {
	tokens := Tokenize(text)
	rule, ok := Lookup(tokens[at].Text)
	assert.True(t, ok, tokens[at].Text)

	enc := &encoder{
		index:  NewLineIndex(text),
		rule:   rule,
		tokens: tokens[at+1 : at+1+rule.Class.Operands()],
	}

	return enc.encode(tokens[at].Line)
}

func TestEncodeInstruction(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		word   string
	}{
		{"ADD R1, R2, R3", "000000" + "00010" + "00011" + "00001" + "00000" + "100000"},
		{"SUB R4,R5,R6", "000000" + "00101" + "00110" + "00100" + "00000" + "100010"},
		{"SLT R31, R0, R7", "000000" + "00000" + "00111" + "11111" + "00000" + "101010"},
		{"ADDI R1, R2, 4", "001000" + "00010" + "00001" + "0000000000000100"},
		{"ADDI R1, R2, -1", "001000" + "00010" + "00001" + "1111111111111111"},
		{"ADDI R1, R2, $(LINENO + 3)", "001000" + "00010" + "00001" + "0000000000000011"},
		{"LW R2, 32(R5)", "100011" + "00101" + "00010" + "0000000000100000"},
		{"LW R2, 32", "100011" + "00000" + "00010" + "0000000000100000"},
		{"SW R3, -8(R4)", "101011" + "00100" + "00011" + "1111111111111000"},
		{"SW R3, $(2 * 4)(R4)", "101011" + "00100" + "00011" + "0000000000001000"},
	}

	for _, entry := range table {
		word, err := encodeAt(t, entry.source, 0)
		assert.NoError(err, entry.source)
		assert.Len(word, 32, entry.source)
		assert.Equal(entry.word, word, entry.source)
	}

	assert.Equal("00000000010000110000100000100000", table[0].word)
}

func TestEncodeBranch(t *testing.T) {
	assert := assert.New(t)

	// Backward branch: LOOP is on line 0, the branch on line 1.
	word, err := encodeAt(t, "LOOP: ADD R1,R1,R1\nBEQ R1,R2,LOOP", 5)
	assert.NoError(err)
	assert.Equal("000100"+"00001"+"00010"+"1111111111111110", word)

	// Forward branch: skip two lines.
	program := []string{
		"BNE R1, R0, DONE",
		"ADD R1, R1, R1",
		"ADD R2, R2, R2",
		"DONE:",
	}
	word, err = encodeAt(t, strings.Join(program, "\n"), 0)
	assert.NoError(err)
	assert.Equal("000101"+"00001"+"00000"+"0000000000000010", word)

	// Branch to the following line.
	word, err = encodeAt(t, "BEQ R0, R0, NEXT\nNEXT:", 0)
	assert.NoError(err)
	assert.Equal("000100"+"00000"+"00000"+"0000000000000000", word)

	_, err = encodeAt(t, "BEQ R0, R0, NOWHERE", 0)
	assert.ErrorAs(err, new(ErrLabelNotFound))
}

func TestEncodeInstructionErr(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		bad    string
	}{
		{"ADD R1, R2, R32", "R32"},
		{"ADD R1, X2, R3", "X2,"},
		{"ADDI R1, R2, 65536", "65536"},
		{"ADDI R1, R2, two", "two"},
		{"LW R1, 4(R40)", "R40"},
		{"SW R1, x(R2)", "x"},
		{"BNE R1, R2, MISSING", "MISSING"},
	}

	for _, entry := range table {
		tokens := Tokenize(entry.source)
		rule, _ := Lookup(tokens[0].Text)
		enc := &encoder{
			index:  NewLineIndex(entry.source),
			rule:   rule,
			tokens: tokens[1:],
		}
		_, err := enc.encode(0)
		assert.Error(err, entry.source)
		assert.Equal(entry.bad, enc.bad, entry.source)
	}
}
