package xtendr

import (
	"errors"
	"syscall"

	"github.com/rfjakob/xtendr/internal/syscallcompat"
)

// Kind classifies an attribute error.
type Kind int

const (
	// KindSystem is any OS error without a more specific kind: permission
	// denied, no such file, name too long, unsupported filesystem...
	KindSystem Kind = iota
	// KindNotFound means the attribute does not exist. It is the only kind
	// Lookup and GetOrDefault recover from.
	KindNotFound
	// KindExists means Set was called with Create and the attribute exists.
	KindExists
	// KindPrecondition means Set was called with Replace and the attribute
	// does not exist.
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindExists:
		return "already exists"
	case KindPrecondition:
		return "precondition failed"
	}
	return "system error"
}

// Sentinels for errors.Is. An *Error matches the one for its Kind.
var (
	ErrNotFound     = errors.New("xtendr: attribute not found")
	ErrExists       = errors.New("xtendr: attribute already exists")
	ErrPrecondition = errors.New("xtendr: attribute does not exist")
)

// Error records a failed attribute operation, the path and attribute it
// was applied to, and the OS error.
type Error struct {
	Op   string
	Path string
	Name string
	Kind Kind
	// Err is the syscall.Errno the OS returned.
	Err error
}

func (e *Error) Error() string {
	s := "xtendr." + e.Op + " " + e.Path
	if e.Name != "" {
		s += " " + e.Name
	}
	if e.Err == nil {
		return s + ": " + e.Kind.String()
	}
	return s + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that belongs to e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrExists:
		return e.Kind == KindExists
	case ErrPrecondition:
		return e.Kind == KindPrecondition
	}
	return false
}

// IsNotFound reports whether "err" says the attribute does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ErrnoOf returns the OS error number behind "err", or 0 if there is none.
func ErrnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// wrapErr turns what the syscall returned into an *Error. "flags" are the
// flags the caller passed, they decide how ENOATTR and EEXIST are read.
func wrapErr(op, path, name string, flags Flags, err error) error {
	if err == nil {
		return nil
	}
	kind := KindSystem
	switch {
	case errors.Is(err, syscallcompat.ENOATTR) && flags&Replace != 0:
		kind = KindPrecondition
	case errors.Is(err, syscallcompat.ENOATTR):
		kind = KindNotFound
	case err == syscall.EEXIST && flags&Create != 0:
		kind = KindExists
	}
	return &Error{Op: op, Path: path, Name: name, Kind: kind, Err: err}
}
