package io

import (
	"bytes"
	"io"
)

// Stream is a Sink that holds output in memory, and copies it to Output
// on Commit.
type Stream struct {
	Output io.Writer

	pending bytes.Buffer
	closed  bool
}

var _ Sink = (*Stream)(nil)

// Write buffers data until Commit.
func (st *Stream) Write(data []byte) (n int, err error) {
	if st.closed {
		err = ErrSinkClosed
		return
	}
	return st.pending.Write(data)
}

// Commit copies the buffered output to Output.
func (st *Stream) Commit() (err error) {
	if st.closed {
		return
	}
	st.closed = true

	_, err = st.pending.WriteTo(st.Output)
	if err != nil {
		err = &ErrIO{Op: "write", Path: "-", Err: err}
	}
	return
}

// Abort drops the buffered output.
func (st *Stream) Abort() (err error) {
	st.closed = true
	st.pending.Reset()
	return
}
