package io

import (
	"io"
)

// Sink receives assembled output. Nothing written is visible at the
// destination until Commit; Abort discards it. After either call the sink
// is closed, and further Commit or Abort calls do nothing.
//
//go:generate go tool mockgen -destination=mock_io/mock_io.go github.com/ezrec/mipsasm/io Sink
type Sink interface {
	io.Writer
	// Commit publishes everything written.
	Commit() (err error)
	// Abort discards everything written.
	Abort() (err error)
}
