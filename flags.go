package xtendr

import (
	"fmt"
	"strings"
)

// Flags modify a single attribute operation. The bit layout matches the
// options argument of the Darwin xattr syscalls. internal/syscallcompat
// translates it for each OS.
type Flags uint8

const (
	// NoFollow makes the operation act on a symbolic link itself instead of
	// the file it points to.
	NoFollow Flags = 1 << iota
	// Create makes Set fail with KindExists if the attribute is already
	// present.
	Create
	// Replace makes Set fail with KindPrecondition if the attribute is not
	// present.
	Replace
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{NoFollow, "nofollow"},
	{Create, "create"},
	{Replace, "replace"},
}

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, n := range flagNames {
		if f&n.f != 0 {
			parts = append(parts, n.name)
			f &^= n.f
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint8(f)))
	}
	return strings.Join(parts, "|")
}

// readFlags are the flags accepted by Get, List and Remove.
const readFlags = NoFollow

// validSet reports whether "f" is acceptable for Set. Create and Replace
// exclude each other.
func (f Flags) validSet() bool {
	if f&^(NoFollow|Create|Replace) != 0 {
		return false
	}
	return f&(Create|Replace) != Create|Replace
}

// validRead reports whether "f" is acceptable for Get, List and Remove.
func (f Flags) validRead() bool {
	return f&^readFlags == 0
}
