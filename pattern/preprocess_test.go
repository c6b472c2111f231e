package pattern

import "testing"

func TestSplit(t *testing.T) {
	cases := []struct {
		blob []byte
		want []string
	}{
		{[]byte("foo\nbar\nbaz"), []string{"foo", "bar", "baz"}},
		{[]byte("foo\nbar\n"), []string{"foo", "bar", ""}},
		{[]byte(""), []string{""}},
		{[]byte("single"), []string{"single"}},
	}
	for _, c := range cases {
		got := Split(c.blob, '\n')
		if len(got) != len(c.want) {
			t.Fatalf("Split(%q) = %v, want %v", c.blob, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Split(%q)[%d] = %q, want %q", c.blob, i, got[i], c.want[i])
			}
		}
	}
}

func TestWrapLayeredWholeLine(t *testing.T) {
	got := WrapLayered("foo", Flags{WholeLine: true})
	want := "^(foo)$"
	if got != want {
		t.Errorf("WrapLayered = %q, want %q", got, want)
	}
}

func TestWrapLayeredWholeWord(t *testing.T) {
	got := WrapLayered("foo", Flags{WholeWord: true})
	want := "(^|[^0-9A-Za-z_])(foo)([^0-9A-Za-z_]|$)"
	if got != want {
		t.Errorf("WrapLayered = %q, want %q", got, want)
	}
}

func TestWrapLayeredWholeLineTakesPrecedence(t *testing.T) {
	got := WrapLayered("foo", Flags{WholeLine: true, WholeWord: true})
	want := "^(foo)$"
	if got != want {
		t.Errorf("WrapLayered with both flags set = %q, want whole-line form %q", got, want)
	}
}

func TestWrapLayeredNoRestriction(t *testing.T) {
	got := WrapLayered("foo", Flags{})
	if got != "foo" {
		t.Errorf("WrapLayered with no restriction = %q, want unchanged", got)
	}
}

func TestJoinPerlWholeWord(t *testing.T) {
	got := JoinPerl([]string{"foo", "bar"}, Flags{WholeWord: true})
	want := `\b(?:foo|bar)\b`
	if got != want {
		t.Errorf("JoinPerl = %q, want %q", got, want)
	}
}

func TestJoinPerlWholeLine(t *testing.T) {
	got := JoinPerl([]string{"foo", "bar"}, Flags{WholeLine: true})
	want := "(?m)^(?:foo|bar)$"
	if got != want {
		t.Errorf("JoinPerl = %q, want %q", got, want)
	}
}

func TestASCIILower(t *testing.T) {
	got := ASCIILower([]byte("Hello, World! 123"))
	want := "hello, world! 123"
	if string(got) != want {
		t.Errorf("ASCIILower = %q, want %q", got, want)
	}
}

func TestASCIILowerPreservesLength(t *testing.T) {
	in := []byte("MiXeD\xffCase")
	out := ASCIILower(in)
	if len(out) != len(in) {
		t.Fatalf("ASCIILower changed length: %d -> %d", len(in), len(out))
	}
	if out[5] != 0xff {
		t.Errorf("ASCIILower altered a non-ASCII byte: got %x, want %x", out[5], 0xff)
	}
}

func TestEncodeNULPerl(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a\x00b", `a\000b`},
		{"a\\\x00b", `a\000b`},  // escaped NUL: one backslash consumed
		{"a\\\\\x00b", `a\\\000b`}, // two backslashes (escaped backslash) + literal NUL
	}
	for _, c := range cases {
		if got := encodeNULPerl(c.in); got != c.want {
			t.Errorf("encodeNULPerl(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
