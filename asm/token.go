package asm

import (
	"fmt"
	"unicode"
)

// Token is a single word of source text.
type Token struct {
	Text   string // Token text, including a trailing comma if present.
	Line   int    // 0-based line number.
	Offset int    // Byte offset of the first character.
}

// End returns the byte offset just past the token.
func (tok Token) End() int {
	return tok.Offset + len(tok.Text)
}

func (tok Token) String() string {
	return fmt.Sprintf("%d:%d %q", tok.Line, tok.Offset, tok.Text)
}

// Tokenize splits source text into whitespace delimited tokens.
//
// A comma ends a token and stays attached to it, so "R1,R2" yields "R1,"
// and "R2". The body of a $(...) expression is never split.
func Tokenize(text string) (tokens []Token) {
	line := 0
	start := -1
	depth := 0

	emit := func(end int) {
		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:end], Line: line, Offset: start})
		}
		start = -1
		depth = 0
	}

	for n, r := range text {
		switch {
		case depth > 0:
			switch r {
			case '(':
				depth++
			case ')':
				depth--
			case '\n':
				// Expressions never span lines.
				emit(n)
				line++
			}
		case r == '\n':
			emit(n)
			line++
		case unicode.IsSpace(r):
			emit(n)
		case r == ',':
			if start < 0 {
				start = n
			}
			emit(n + 1)
		default:
			if start < 0 {
				start = n
			}
			if r == '(' && n > 0 && text[n-1] == '$' {
				depth = 1
			}
		}
	}
	emit(len(text))

	return
}
