//go:build linux || darwin

package syscallcompat

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestParseListxattrBlob(t *testing.T) {
	testTable := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\x00", nil},
		{"user.foo\x00", []string{"user.foo"}},
		{"user.foo\x00user.bar\x00", []string{"user.foo", "user.bar"}},
		{"user.foo\x00\x00user.bar", []string{"user.foo", "user.bar"}},
	}
	for _, v := range testTable {
		have := parseListxattrBlob([]byte(v.in))
		if !reflect.DeepEqual(v.want, have) {
			t.Errorf("in=%q: want=%q have=%q", v.in, v.want, have)
		}
	}
}

// userOnly drops names outside the "user." namespace, like security.selinux,
// that the system may attach to any new file.
func userOnly(list []string) (out []string) {
	for _, a := range list {
		if strings.HasPrefix(a, "user.") {
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}

func newTestFile(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(tmpDir, t.Name())
	err := os.WriteFile(fn, nil, 0600)
	if err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestGetxattrSizes(t *testing.T) {
	requireUserXattr(t)
	fn := newTestFile(t)
	// 0 exercises the probe-only path, 4000 is about the ext4 limit for
	// in-inode attributes.
	for _, n := range []int{0, 1, 100, 500, 4000} {
		attr := fmt.Sprintf("user.size%d", n)
		val := bytes.Repeat([]byte("x"), n)
		err := Setxattr(fn, attr, val, false, false, false)
		if err != nil {
			t.Fatal(err)
		}
		val2, err := Getxattr(fn, attr, false)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(val, val2) {
			t.Errorf("n=%d: wrong readback, len=%d", n, len(val2))
		}
		if val2 == nil {
			t.Errorf("n=%d: nil value", n)
		}
	}
}

func TestGetxattrMissing(t *testing.T) {
	requireUserXattr(t)
	fn := newTestFile(t)
	_, err := Getxattr(fn, "user.missing", false)
	if err != ENOATTR {
		t.Errorf("want ENOATTR, have %v", err)
	}
}

func TestSetxattrCreateReplace(t *testing.T) {
	requireUserXattr(t)
	fn := newTestFile(t)
	err := Setxattr(fn, "user.r", []byte("1"), false, false, true)
	if err != ENOATTR {
		t.Errorf("replace on missing attr: want ENOATTR, have %v", err)
	}
	err = Setxattr(fn, "user.c", []byte("1"), false, true, false)
	if err != nil {
		t.Fatal(err)
	}
	err = Setxattr(fn, "user.c", []byte("2"), false, true, false)
	if err == nil {
		t.Error("second create should have failed")
	}
	err = Setxattr(fn, "user.c", []byte("3"), false, false, true)
	if err != nil {
		t.Error(err)
	}
}

func TestListRemove(t *testing.T) {
	requireUserXattr(t)
	fn := newTestFile(t)
	list, err := Listxattr(fn, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(userOnly(list)) != 0 {
		t.Fatalf("fresh file has attrs: %v", list)
	}
	want := []string{"user.a", "user.b", "user.c"}
	for _, a := range want {
		if err := Setxattr(fn, a, []byte(a), false, false, false); err != nil {
			t.Fatal(err)
		}
	}
	list, err = Listxattr(fn, false)
	if err != nil {
		t.Fatal(err)
	}
	if list = userOnly(list); !reflect.DeepEqual(want, list) {
		t.Errorf("want=%v have=%v", want, list)
	}
	if err := Removexattr(fn, "user.b", false); err != nil {
		t.Fatal(err)
	}
	list, _ = Listxattr(fn, false)
	if list = userOnly(list); !reflect.DeepEqual([]string{"user.a", "user.c"}, list) {
		t.Errorf("after remove: %v", list)
	}
	if err := Removexattr(fn, "user.b", false); err != ENOATTR {
		t.Errorf("second remove: want ENOATTR, have %v", err)
	}
}
