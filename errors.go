package lockscan

import "errors"

// ErrUsage's message is printed to standard error by cmd/lockscan when no
// file arguments were given.
var ErrUsage = errors.New("usage: lockscan <file> [file...]")

// ErrRead wraps an I/O failure while reading an input file. Use
// errors.Is/errors.Unwrap to recover the underlying cause.
type ErrRead struct {
	Path string
	Err  error
}

func (e *ErrRead) Error() string {
	return "failed to read " + e.Path + ": " + e.Err.Error()
}

func (e *ErrRead) Unwrap() error {
	return e.Err
}
