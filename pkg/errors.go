package pkg

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks failures to open, stat or map the input.
	ErrIO = errors.New("input i/o")
	// ErrEmptyFile is reported alongside ErrIO for a zero-length input.
	ErrEmptyFile = errors.New("empty input file")

	ErrFormat       = errors.New("malformed record")
	ErrWorkerFailed = errors.New("worker failed")
)

type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// FormatError describes a line that does not match `key;[-]d[d].d`.
// Line is a copy, so the error stays valid after the input is unmapped.
type FormatError struct {
	Offset int
	Line   string
	Reason string
}

const maxErrLine = 64

func newFormatError(line []byte, reason string) *FormatError {
	if len(line) > maxErrLine {
		line = line[:maxErrLine]
	}
	return &FormatError{Offset: -1, Line: string(line), Reason: reason}
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%v: %s: %q", ErrFormat, e.Reason, e.Line)
	}
	return fmt.Sprintf("%v at byte %d: %s: %q", ErrFormat, e.Offset, e.Reason, e.Line)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

type WorkerError struct {
	Worker int
	Value  any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("%v: worker %d: %v", ErrWorkerFailed, e.Worker, e.Value)
}

func (e *WorkerError) Unwrap() error { return ErrWorkerFailed }
