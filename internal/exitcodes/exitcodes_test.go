package exitcodes

import (
	"fmt"
	"syscall"
	"testing"

	"github.com/rfjakob/xtendr"
)

func TestCode(t *testing.T) {
	testTable := []struct {
		err  error
		want int
	}{
		{NewErr("bad args", Usage), Usage},
		{fmt.Errorf("wrapped: %w", NewErr("bad pattern", ExcludeError)), ExcludeError},
		{&xtendr.Error{Op: "get", Kind: xtendr.KindNotFound}, NotFound},
		{&xtendr.Error{Op: "set", Kind: xtendr.KindExists}, Exists},
		{fmt.Errorf("x: %w", &xtendr.Error{Op: "set", Kind: xtendr.KindPrecondition}), Precondition},
		{&xtendr.Error{Op: "get", Kind: xtendr.KindSystem, Err: syscall.EACCES}, Other},
		{syscall.ENOENT, Other},
	}
	for i, v := range testTable {
		if have := Code(v.err); have != v.want {
			t.Errorf("#%d %v: want=%d have=%d", i, v.err, v.want, have)
		}
	}
}
