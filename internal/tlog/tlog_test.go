package tlog

import (
	"bytes"
	"log"
	"testing"
)

// Test that trimNewline() works as expected
func TestTrimNewline(t *testing.T) {
	testTable := []struct {
		in   string
		want string
	}{
		{"...\n", "..."},
		{"\n...\n", "\n..."},
		{"", ""},
		{"\n", ""},
		{"\n\n", "\n"},
		{"   ", "   "},
	}
	for _, v := range testTable {
		have := trimNewline(v.in)
		if v.want != have {
			t.Errorf("want=%q have=%q", v.want, have)
		}
	}
}

func TestToggle(t *testing.T) {
	var buf bytes.Buffer
	l := &toggledLogger{Logger: log.New(&buf, "", 0)}
	l.Printf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
	l.Enabled = true
	l.Printf("shown %d\n", 2)
	l.Println("again")
	if have := buf.String(); have != "shown 2\nagain\n" {
		t.Errorf("have %q", have)
	}
}

func TestJSONDump(t *testing.T) {
	have := JSONDump([]string{"user.a", "user.b"})
	want := "[\n\t\"user.a\",\n\t\"user.b\"\n]"
	if have != want {
		t.Errorf("want=%q have=%q", want, have)
	}
}
