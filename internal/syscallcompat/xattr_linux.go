package syscallcompat

import (
	"golang.org/x/sys/unix"
)

const (
	// XattrSupported is true on platforms this package implements.
	XattrSupported = true

	// ENOATTR is what Linux calls ENODATA. Only Darwin and the BSDs have a
	// separate name for it.
	ENOATTR = unix.ENODATA
)

// setxattrFlags encodes create/replace for setxattr(2). No-follow is not a
// flag on Linux, it selects lsetxattr(2) instead.
func setxattrFlags(create, replace bool) (flags int) {
	if create {
		flags |= unix.XATTR_CREATE
	}
	if replace {
		flags |= unix.XATTR_REPLACE
	}
	return flags
}
