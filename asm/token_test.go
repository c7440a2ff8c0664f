package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func texts(tokens []Token) (words []string) {
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}
	return
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Tokenize(""))
	assert.Nil(Tokenize(" \n\t\n"))

	tokens := Tokenize("LOOP: ADD R1,R1,R1\n  BEQ R1, R2,LOOP")
	assert.Equal([]string{"LOOP:", "ADD", "R1,", "R1,", "R1", "BEQ", "R1,", "R2,", "LOOP"}, texts(tokens))

	assert.Equal(Token{Text: "LOOP:", Line: 0, Offset: 0}, tokens[0])
	assert.Equal(Token{Text: "R1,", Line: 0, Offset: 10}, tokens[2])
	assert.Equal(Token{Text: "BEQ", Line: 1, Offset: 21}, tokens[5])
	assert.Equal(Token{Text: "LOOP", Line: 1, Offset: 32}, tokens[8])
	assert.Equal(36, tokens[8].End())
}

func TestTokenizeExpression(t *testing.T) {
	assert := assert.New(t)

	tokens := Tokenize("ADDI R1, R2, $(max(1, 2) * 4)\nLW R3, $(2 + 2)(R4)")
	assert.Equal([]string{"ADDI", "R1,", "R2,", "$(max(1, 2) * 4)", "LW", "R3,", "$(2 + 2)(R4)"}, texts(tokens))
	assert.Equal(0, tokens[3].Line)
	assert.Equal(1, tokens[6].Line)

	// An unterminated expression ends with its line.
	tokens = Tokenize("ADDI R1, R2, $(1 +\nADD")
	assert.Equal([]string{"ADDI", "R1,", "R2,", "$(1 +", "ADD"}, texts(tokens))
	assert.Equal(1, tokens[4].Line)
}
