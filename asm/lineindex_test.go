package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndex(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"CODE",
		"  START:  ",
		"ADD R1, R2, R3",
		"LOOP: SUB R1, R1, R2",
		"BNE R1, R0, LOOP",
		"DONE:",
	}

	idx := NewLineIndex(strings.Join(program, "\n"))

	assert.Equal(6, idx.Len())
	assert.Equal("START:", idx.Line(1))
	assert.Equal("ADD R1, R2, R3", idx.Line(2))
	assert.Equal("", idx.Line(-1))
	assert.Equal("", idx.Line(6))

	for label, line := range map[string]int{"START": 1, "LOOP": 3, "DONE": 5} {
		lineno, err := idx.LineNumberOf(label)
		assert.NoError(err, label)
		assert.Equal(line, lineno, label)
	}

	_, err := idx.LineNumberOf("NOWHERE")
	assert.ErrorAs(err, new(ErrLabelNotFound))
	_, err = idx.LineNumberOf("")
	assert.ErrorAs(err, new(ErrLabelNotFound))
}

func TestLineIndexSubstring(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"MAINLOOP: ADD R1, R1, R1",
		"LOOP: ADD R2, R2, R2",
		"X:Y: SUB R1, R1, R1",
	}

	idx := NewLineIndex(strings.Join(program, "\n"))

	// "LOOP:" first appears inside "MAINLOOP:".
	lineno, err := idx.LineNumberOf("LOOP")
	assert.NoError(err)
	assert.Equal(0, lineno)

	lineno, err = idx.LineNumberOf("MAINLOOP")
	assert.NoError(err)
	assert.Equal(0, lineno)

	lineno, err = idx.LineNumberOf("X:Y")
	assert.NoError(err)
	assert.Equal(2, lineno)

	lineno, err = idx.LineNumberOf("Y")
	assert.NoError(err)
	assert.Equal(2, lineno)

	_, err = idx.LineNumberOf("MAIN")
	assert.Error(err)
}

func TestLineIndexCurrentLineNumber(t *testing.T) {
	assert := assert.New(t)

	text := "LOOP: ADD R1,R1,R1\nBEQ R1,R2,LOOP"
	idx := NewLineIndex(text)

	assert.Equal(0, idx.CurrentLineNumber(0))
	assert.Equal(0, idx.CurrentLineNumber(18)) // The newline.
	assert.Equal(1, idx.CurrentLineNumber(19))
	assert.Equal(1, idx.CurrentLineNumber(len(text)))
	assert.Equal(0, idx.CurrentLineNumber(-5))

	for _, tok := range Tokenize(text) {
		assert.Equal(tok.Line, idx.CurrentLineNumber(tok.End()), tok.String())
	}
}
