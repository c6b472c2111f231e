package pattern

import (
	"testing"

	"github.com/coregx/grepcore/dialect"
)

func TestCompileGrepBasicLayered(t *testing.T) {
	set, err := Compile(dialect.Grep, []byte(`wor\(l\)d`), DefaultFlags())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if len(set.Layered) != 1 {
		t.Fatalf("len(Layered) = %d, want 1", len(set.Layered))
	}
	if set.Fixed != nil || set.Perl != nil {
		t.Error("a layered-dialect Set should leave Fixed and Perl unset")
	}
}

func TestCompileMultipleAlternatives(t *testing.T) {
	flags := DefaultFlags()
	for _, tag := range []dialect.Tag{dialect.Grep, dialect.Egrep, dialect.Awk} {
		set, err := Compile(tag, []byte("foo\nbar\nbaz"), flags)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", tag, err)
		}
		if len(set.Layered) != 3 {
			t.Errorf("Compile(%q): len(Layered) = %d, want 3", tag, len(set.Layered))
		}
	}
}

func TestCompileFgrepFixed(t *testing.T) {
	set, err := Compile(dialect.Fgrep, []byte("foo.bar\nbaz[1]"), DefaultFlags())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if set.Fixed == nil {
		t.Fatal("a fgrep Set should populate Fixed")
	}
	if set.Fixed.ExactCount != 2 {
		t.Errorf("Fixed.ExactCount = %d, want 2 (both alternatives are literal)", set.Fixed.ExactCount)
	}
}

func TestCompileFgrepCaseInsensitiveFoldsMusts(t *testing.T) {
	flags := DefaultFlags()
	flags.CaseInsensitive = true
	set, err := Compile(dialect.Fgrep, []byte("Hello"), flags)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	m, ok := set.Fixed.Keywords.Find([]byte("well hello there"), 0)
	if !ok {
		t.Fatal("case-insensitive fixed match: no hit, want one")
	}
	_ = m
}

func TestCompilePerlWithoutCGOFailsAtCompile(t *testing.T) {
	_, err := Compile(dialect.Perl, []byte("foo"), DefaultFlags())
	if err == nil {
		t.Fatal("Compile(perl) without cgo: got nil error, want PerlUnavailableError")
	}
}

func TestCompileBackreferenceBundle(t *testing.T) {
	set, err := Compile(dialect.Egrep, []byte(`(a+)\1`), DefaultFlags())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if len(set.Layered) != 1 {
		t.Fatalf("len(Layered) = %d, want 1", len(set.Layered))
	}
	if !set.Layered[0].DFA.HasBackref() {
		t.Error("the bundle's DFA should report HasBackref() = true for a backreference pattern")
	}
}

func TestCompileUnsupportedDialect(t *testing.T) {
	if _, err := Compile(dialect.Tag("nonsense"), []byte("x"), DefaultFlags()); err == nil {
		t.Fatal("Compile with an unrecognized dialect: got nil error, want an error")
	}
}

func TestCompileInvalidPatternSyntax(t *testing.T) {
	if _, err := Compile(dialect.Egrep, []byte("a("), DefaultFlags()); err == nil {
		t.Fatal("Compile(unterminated group): got nil error, want a CompileError")
	}
}
