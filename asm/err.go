package asm

import (
	"errors"

	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrUnexpectedEnd = errors.New(f("unexpected end of input"))
	ErrHeaderMissing = errors.New(f("expected REGISTERS, MEMORY or CODE"))
	ErrRange         = errors.New(f("out of range"))
)

// ErrLabelNotFound is returned when a branch target is never declared.
type ErrLabelNotFound string

func (el ErrLabelNotFound) Error() string {
	return f("label %v not found", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOutOfRange reports a value that does not fit its bit field.
type ErrOutOfRange struct {
	Value int
	Min   int
	Max   int
}

func (err ErrOutOfRange) Error() string {
	return f("%v outside of [%v, %v]", err.Value, err.Min, err.Max)
}

func (err ErrOutOfRange) Is(target error) bool {
	return target == ErrRange
}

// ErrSyntax locates an assembler error in the source text.
type ErrSyntax struct {
	LineNo int    // 1-based line number.
	Line   string // Trimmed text of the line.
	Token  string // Offending token, if any.
	Err    error
}

func (err ErrSyntax) Error() string {
	if len(err.Token) == 0 {
		return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
	}
	return f("line %d '%v' at '%v' %v", err.LineNo, err.Line, err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
