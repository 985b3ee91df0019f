// Package xtendr reads and writes extended attributes (xattrs) on anything
// that can name a filesystem path.
//
// Every call goes straight to the OS. Nothing is cached, and nothing is
// locked: a List followed by a Remove can race with other writers, callers
// that need atomicity have to serialize themselves.
package xtendr

import (
	"syscall"

	"github.com/rfjakob/xtendr/internal/syscallcompat"
	"github.com/rfjakob/xtendr/internal/tlog"
)

// Pather is implemented by anything that resolves to a filesystem path.
// Path is called once per operation.
type Pather interface {
	Path() string
}

// Path wraps a raw path string.
type Path string

// Path returns p itself.
func (p Path) Path() string {
	return string(p)
}

// Get returns the value of "attr". If the attribute does not exist, the
// error is an *Error of KindNotFound. Only NoFollow is accepted in "flags".
func Get(p Pather, attr string, flags Flags) ([]byte, error) {
	path := p.Path()
	if !flags.validRead() {
		return nil, &Error{Op: "get", Path: path, Name: attr, Err: syscall.EINVAL}
	}
	val, err := syscallcompat.Getxattr(path, attr, flags&NoFollow != 0)
	tlog.Debug.Printf("xtendr.get %q %q flags=%v: len=%d err=%v", path, attr, flags, len(val), err)
	if err != nil {
		return nil, wrapErr("get", path, attr, flags, err)
	}
	return val, nil
}

// Lookup is like Get, but a missing attribute is reported through "found"
// instead of an error. Any other error is returned as-is.
func Lookup(p Pather, attr string, flags Flags) (val []byte, found bool, err error) {
	val, err = Get(p, attr, flags)
	if IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// GetOrDefault returns "def" if "attr" does not exist.
func GetOrDefault(p Pather, attr string, def []byte, flags Flags) ([]byte, error) {
	return GetOrElse(p, attr, func() ([]byte, error) { return def, nil }, flags)
}

// GetOrElse calls "fn" if "attr" does not exist and returns its result.
// "fn" is not called otherwise.
func GetOrElse(p Pather, attr string, fn func() ([]byte, error), flags Flags) ([]byte, error) {
	val, found, err := Lookup(p, attr, flags)
	if err != nil {
		return nil, err
	}
	if !found {
		return fn()
	}
	return val, nil
}

// Set writes "value" to "attr". Without Create or Replace it creates or
// overwrites. Create and Replace together are rejected with EINVAL.
func Set(p Pather, attr string, value []byte, flags Flags) error {
	path := p.Path()
	if !flags.validSet() {
		return &Error{Op: "set", Path: path, Name: attr, Err: syscall.EINVAL}
	}
	err := syscallcompat.Setxattr(path, attr, value,
		flags&NoFollow != 0, flags&Create != 0, flags&Replace != 0)
	tlog.Debug.Printf("xtendr.set %q %q len=%d flags=%v: err=%v", path, attr, len(value), flags, err)
	return wrapErr("set", path, attr, flags, err)
}

// List returns the names of all attributes, in the order the OS reports
// them. Only NoFollow is accepted in "flags".
func List(p Pather, flags Flags) ([]string, error) {
	path := p.Path()
	if !flags.validRead() {
		return nil, &Error{Op: "list", Path: path, Err: syscall.EINVAL}
	}
	names, err := syscallcompat.Listxattr(path, flags&NoFollow != 0)
	tlog.Debug.Printf("xtendr.list %q flags=%v: %d names, err=%v", path, flags, len(names), err)
	if err != nil {
		return nil, wrapErr("list", path, "", flags, err)
	}
	return names, nil
}

// Remove deletes "attr". Removing a missing attribute fails with
// KindNotFound. Only NoFollow is accepted in "flags".
func Remove(p Pather, attr string, flags Flags) error {
	path := p.Path()
	if !flags.validRead() {
		return &Error{Op: "remove", Path: path, Name: attr, Err: syscall.EINVAL}
	}
	err := syscallcompat.Removexattr(path, attr, flags&NoFollow != 0)
	tlog.Debug.Printf("xtendr.remove %q %q flags=%v: err=%v", path, attr, flags, err)
	return wrapErr("remove", path, attr, flags, err)
}

// RemoveAll lists all attributes and removes them one by one. This is not
// atomic: an attribute added after the listing survives. Attributes that
// disappear before we get to them are skipped. The first other error stops
// the loop.
func RemoveAll(p Pather, flags Flags) error {
	names, err := List(p, flags)
	if err != nil {
		return err
	}
	for _, name := range names {
		err = Remove(p, name, flags)
		if err != nil && !IsNotFound(err) {
			return err
		}
	}
	return nil
}

// Accessor binds the operations to one Pather.
type Accessor struct {
	p Pather
}

// New returns an Accessor for "p".
func New(p Pather) *Accessor {
	return &Accessor{p: p}
}

// Open returns an Accessor for a raw path.
func Open(path string) *Accessor {
	return New(Path(path))
}

// Path implements Pather, so an Accessor can be passed to the package-level
// functions as well.
func (a *Accessor) Path() string {
	return a.p.Path()
}

// Get calls the package-level Get with the bound Pather.
func (a *Accessor) Get(attr string, flags Flags) ([]byte, error) {
	return Get(a.p, attr, flags)
}

// Lookup calls the package-level Lookup with the bound Pather.
func (a *Accessor) Lookup(attr string, flags Flags) ([]byte, bool, error) {
	return Lookup(a.p, attr, flags)
}

// GetOrDefault calls the package-level GetOrDefault with the bound Pather.
func (a *Accessor) GetOrDefault(attr string, def []byte, flags Flags) ([]byte, error) {
	return GetOrDefault(a.p, attr, def, flags)
}

// GetOrElse calls the package-level GetOrElse with the bound Pather.
func (a *Accessor) GetOrElse(attr string, fn func() ([]byte, error), flags Flags) ([]byte, error) {
	return GetOrElse(a.p, attr, fn, flags)
}

// Set calls the package-level Set with the bound Pather.
func (a *Accessor) Set(attr string, value []byte, flags Flags) error {
	return Set(a.p, attr, value, flags)
}

// List calls the package-level List with the bound Pather.
func (a *Accessor) List(flags Flags) ([]string, error) {
	return List(a.p, flags)
}

// Remove calls the package-level Remove with the bound Pather.
func (a *Accessor) Remove(attr string, flags Flags) error {
	return Remove(a.p, attr, flags)
}

// RemoveAll calls the package-level RemoveAll with the bound Pather.
func (a *Accessor) RemoveAll(flags Flags) error {
	return RemoveAll(a.p, flags)
}

// Dump calls the package-level Dump with the bound Pather.
func (a *Accessor) Dump(flags Flags) ([]Attribute, error) {
	return Dump(a.p, flags)
}
