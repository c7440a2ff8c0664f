package compiler

import (
	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

// ErrCompile indicates the source of a failed compile.
type ErrCompile struct {
	Path string
	Err  error
}

func (err *ErrCompile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrCompile) Unwrap() error {
	return err.Err
}
