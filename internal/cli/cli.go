// Package cli holds the flag plumbing, logging setup, and exit-code
// mapping shared by cmd/train and cmd/predict.
package cli

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Exit codes: argument error, I/O error, success.
const (
	ExitOK       = 0
	ExitIOError  = 2
	ExitArgError = 4
)

type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

type argError struct{ err error }

func (e *argError) Error() string { return e.err.Error() }
func (e *argError) Unwrap() error { return e.err }

// WrapIOError tags err as an I/O failure (dataset/model read or write),
// for ExitFor to map to ExitIOError. Returns nil for a nil err.
func WrapIOError(err error) error {
	if err == nil {
		return nil
	}
	return &ioError{err}
}

// WrapArgError tags err as a bad-argument failure (malformed flags,
// invalid dataset contents, programming-error training preconditions),
// for ExitFor to map to ExitArgError. Returns nil for a nil err.
func WrapArgError(err error) error {
	if err == nil {
		return nil
	}
	return &argError{err}
}

// ExitFor maps an error returned by a command's RunE to its process exit
// code. An error that was never wrapped maps to ExitIOError. This includes
// cobra's own argument-count and flag-parsing errors, which the commands
// return unwrapped, so those exit with ExitIOError rather than
// ExitArgError.
func ExitFor(err error) int {
	if err == nil {
		return ExitOK
	}
	var io *ioError
	if errors.As(err, &io) {
		return ExitIOError
	}
	var arg *argError
	if errors.As(err, &arg) {
		return ExitArgError
	}
	return ExitIOError
}

// NewLogger builds the logrus.Logger verbose mode logs per-iteration
// progress through and silent mode restricts to errors only, per spec
// section 7's "user-visible behavior" note.
func NewLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.ErrorLevel)
	}
	return log
}
