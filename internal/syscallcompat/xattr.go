//go:build linux || darwin

package syscallcompat

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// Getxattr reads the value of "attr" on "path". The first call passes an
// empty buffer to learn the size, the second one fills a buffer of exactly
// that size.
//
// If the value grows between the two calls, Linux returns ERANGE. We pass
// that up, the caller decides whether to try again.
func Getxattr(path string, attr string, nofollow bool) ([]byte, error) {
	get := unix.Getxattr
	if nofollow {
		get = unix.Lgetxattr
	}
	sz, err := get(path, attr, nil)
	if err != nil {
		return nil, err
	}
	val := make([]byte, sz)
	if sz == 0 {
		return val, nil
	}
	sz, err = get(path, attr, val)
	if err != nil {
		return nil, err
	}
	// MacOS truncates instead of returning ERANGE, and a value that shrunk
	// in between returns less.
	return val[:sz], nil
}

// Listxattr returns the attribute names on "path". Same two-call scheme as
// Getxattr.
func Listxattr(path string, nofollow bool) ([]string, error) {
	list := unix.Listxattr
	if nofollow {
		list = unix.Llistxattr
	}
	sz, err := list(path, nil)
	if err != nil {
		return nil, err
	}
	if sz == 0 {
		return nil, nil
	}
	buf := make([]byte, sz)
	sz, err = list(path, buf)
	if err != nil {
		return nil, err
	}
	return parseListxattrBlob(buf[:sz]), nil
}

// Removexattr deletes "attr" from "path".
func Removexattr(path string, attr string, nofollow bool) error {
	if nofollow {
		return unix.Lremovexattr(path, attr)
	}
	return unix.Removexattr(path, attr)
}

// Setxattr writes "data" to "attr". "create" and "replace" are translated to
// the native flag encoding by setxattrFlags.
func Setxattr(path string, attr string, data []byte, nofollow, create, replace bool) error {
	flags := setxattrFlags(create, replace)
	if nofollow {
		return unix.Lsetxattr(path, attr, data, flags)
	}
	return unix.Setxattr(path, attr, data, flags)
}

// parseListxattrBlob splits the NUL-separated name list the kernel returns.
func parseListxattrBlob(buf []byte) (attrs []string) {
	parts := bytes.Split(buf, []byte{0})
	for _, part := range parts {
		if len(part) == 0 {
			// Last part is empty, ignore
			continue
		}
		attrs = append(attrs, string(part))
	}
	return attrs
}
