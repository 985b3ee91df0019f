package syscallcompat

import (
	"golang.org/x/sys/unix"
)

const (
	// XattrSupported is true on platforms this package implements.
	XattrSupported = true

	// ENOATTR is returned when the attribute does not exist.
	ENOATTR = unix.ENOATTR
)

// setxattrFlags encodes create/replace for setxattr(2). The L* wrappers in
// x/sys/unix add XATTR_NOFOLLOW themselves.
func setxattrFlags(create, replace bool) (flags int) {
	if create {
		flags |= unix.XATTR_CREATE
	}
	if replace {
		flags |= unix.XATTR_REPLACE
	}
	return flags
}
