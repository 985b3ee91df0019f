//go:build !linux && !darwin

package syscallcompat

import (
	"errors"
	"syscall"
)

const (
	// XattrSupported is true on platforms this package implements.
	XattrSupported = false

	// ENOATTR is never returned on this platform.
	ENOATTR = syscall.Errno(0)
)

var errUnsupported = errors.ErrUnsupported

func Getxattr(path string, attr string, nofollow bool) ([]byte, error) {
	return nil, errUnsupported
}

func Listxattr(path string, nofollow bool) ([]string, error) {
	return nil, errUnsupported
}

func Removexattr(path string, attr string, nofollow bool) error {
	return errUnsupported
}

func Setxattr(path string, attr string, data []byte, nofollow, create, replace bool) error {
	return errUnsupported
}
