// Package test_helpers sets up the scratch directory the integration tests
// in tests/ run in.
package test_helpers

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/xattr"
)

// TmpDir will be created inside this directory, set in init() to
// $TMPDIR/xtendr-test-parent-$UID .
var testParentDir = ""

// TmpDir is a unique temporary directory. "go test" runs package tests in parallel. We create a
// unique TmpDir in init() so the tests do not interfere.
var TmpDir string

func init() {
	doInit()
}

func doInit() {
	// Something like /tmp/xtendr-test-parent-1234
	testParentDir = fmt.Sprintf("%s/xtendr-test-parent-%d", os.TempDir(), os.Getuid())
	os.MkdirAll(testParentDir, 0755)
	var err error
	TmpDir, err = os.MkdirTemp(testParentDir, "")
	if err != nil {
		panic(err)
	}
}

// XattrSupported checks whether "path" resides on a filesystem that takes
// "user." xattrs. It uses github.com/pkg/xattr so the answer does not depend
// on the code under test.
func XattrSupported(path string) bool {
	const probe = "user.xattrSupported-dummy-value"
	err := xattr.LSet(path, probe, []byte("1"))
	if err == nil {
		xattr.LRemove(path, probe)
		return true
	}
	var err2 *xattr.Error
	if errors.As(err, &err2) && (err2.Err == syscall.EOPNOTSUPP || err2.Err == syscall.EPERM) {
		return false
	}
	fmt.Printf("XattrSupported: unexpected error: %v\n", err)
	return false
}

// ResetTmpDir deletes and recreates TmpDir.
func ResetTmpDir() {
	err := os.RemoveAll(TmpDir)
	if err != nil {
		panic(err)
	}
	err = os.MkdirAll(TmpDir, 0755)
	if err != nil {
		panic(err)
	}
}
