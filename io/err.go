package io

import (
	"errors"

	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrSinkClosed = errors.New(f("sink closed"))
)

// ErrIO reports a failed file operation.
type ErrIO struct {
	Op   string
	Path string
	Err  error
}

func (err *ErrIO) Error() string {
	return f("%v %v: %v", err.Op, err.Path, err.Err)
}

func (err *ErrIO) Unwrap() error {
	return err.Err
}
