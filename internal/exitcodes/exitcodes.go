// Package exitcodes contains all well-defined exit codes that xtendr-tool
// can return.
package exitcodes

import (
	"errors"
	"os"

	"github.com/rfjakob/xtendr"
)

const (
	// Usage - usage error like wrong cli syntax, wrong number of parameters.
	Usage = 1
	// 2 is reserved because it is used by Go panic

	// NotFound means the attribute does not exist.
	NotFound = 3
	// Exists means "-create" was passed and the attribute already exists.
	Exists = 4
	// Precondition means "-replace" was passed and the attribute does not
	// exist.
	Precondition = 5
	// Other error - please inspect the message
	Other = 6
	// ExcludeError - an error occurred while processing "-exclude"
	ExcludeError = 7
)

// Err wraps an error with an associated numeric exit code
type Err struct {
	error
	code int
}

// NewErr returns an error containing "msg" and the exit code "code".
func NewErr(msg string, code int) Err {
	return Err{
		error: errors.New(msg),
		code:  code,
	}
}

// Unwrap gives errors.Is and errors.As access to the wrapped error.
func (e Err) Unwrap() error {
	return e.error
}

// Code returns the exit code for "err". Attribute errors map to their kind,
// errors created by NewErr keep their code, everything else is Other.
func Code(err error) int {
	var err2 Err
	if errors.As(err, &err2) {
		return err2.code
	}
	var xerr *xtendr.Error
	if errors.As(err, &xerr) {
		switch xerr.Kind {
		case xtendr.KindNotFound:
			return NotFound
		case xtendr.KindExists:
			return Exists
		case xtendr.KindPrecondition:
			return Precondition
		}
	}
	return Other
}

// Exit extracts the numeric exit code from "err" (if available) and exits the
// application.
func Exit(err error) {
	os.Exit(Code(err))
}
