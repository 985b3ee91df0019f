package xtendr

import (
	"testing"
)

func TestFlagsString(t *testing.T) {
	testTable := []struct {
		in   Flags
		want string
	}{
		{0, "0"},
		{NoFollow, "nofollow"},
		{Create, "create"},
		{NoFollow | Replace, "nofollow|replace"},
		{NoFollow | Create | Replace, "nofollow|create|replace"},
		{Create | 0x40, "create|0x40"},
	}
	for _, v := range testTable {
		if have := v.in.String(); have != v.want {
			t.Errorf("%d: want=%q have=%q", uint8(v.in), v.want, have)
		}
	}
}

// The bit positions are part of the API.
func TestFlagsBits(t *testing.T) {
	if NoFollow != 0x1 || Create != 0x2 || Replace != 0x4 {
		t.Errorf("NoFollow=%#x Create=%#x Replace=%#x", NoFollow, Create, Replace)
	}
}

func TestFlagsValid(t *testing.T) {
	testTable := []struct {
		in        Flags
		set, read bool
	}{
		{0, true, true},
		{NoFollow, true, true},
		{Create, true, false},
		{Replace, true, false},
		{NoFollow | Create, true, false},
		{Create | Replace, false, false},
		{0x08, false, false},
	}
	for _, v := range testTable {
		if have := v.in.validSet(); have != v.set {
			t.Errorf("%v validSet: want=%v have=%v", v.in, v.set, have)
		}
		if have := v.in.validRead(); have != v.read {
			t.Errorf("%v validRead: want=%v have=%v", v.in, v.read, have)
		}
	}
}
