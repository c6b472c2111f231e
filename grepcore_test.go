package grepcore

import "testing"

func TestCompileAndExecuteGrep(t *testing.T) {
	set, err := Compile(Grep, []byte(`wor\(l\)d`), DefaultFlags())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	buf := []byte("line one\nhello world here\nline three\n")
	m, ok := set.Execute(buf, false)
	if !ok {
		t.Fatal("Execute: no match, want a hit")
	}
	if got := string(buf[m.Offset : m.Offset+m.Length]); got != "hello world here\n" {
		t.Errorf("matched line %q, want %q", got, "hello world here\n")
	}
}

func TestCompileAndExecuteFgrep(t *testing.T) {
	set, err := Compile(Fgrep, []byte("wor.d"), DefaultFlags())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	buf := []byte("hello wor.d here\n")
	m, ok := set.Execute(buf, true)
	if !ok {
		t.Fatal("Execute: no match, want a hit")
	}
	if got := string(buf[m.Offset : m.Offset+m.Length]); got != "wor.d" {
		t.Errorf("matched %q, want %q", got, "wor.d")
	}
}

func TestCompilePerlFailsWithoutCGO(t *testing.T) {
	if _, err := Compile(Perl, []byte("foo"), DefaultFlags()); err == nil {
		t.Fatal("Compile(Perl) without a cgo-linked PCRE backend: got nil error, want one")
	}
}

func TestExecuteNoMatch(t *testing.T) {
	set, err := Compile(Egrep, []byte("zzz"), DefaultFlags())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if _, ok := set.Execute([]byte("nothing matches here\n"), false); ok {
		t.Error("Execute: got a match, want none")
	}
}

func TestDefaultFlags(t *testing.T) {
	f := DefaultFlags()
	if f.LineTerminator != '\n' {
		t.Errorf("DefaultFlags().LineTerminator = %q, want '\\n'", f.LineTerminator)
	}
	if f.CaseInsensitive || f.WholeWord || f.WholeLine {
		t.Error("DefaultFlags() should have every restriction flag unset")
	}
}

func TestCompileReuseAcrossBuffers(t *testing.T) {
	set, err := Compile(Grep, []byte("needle"), DefaultFlags())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if _, ok := set.Execute([]byte("a needle here\n"), false); !ok {
		t.Error("first Execute: no match, want a hit")
	}
	if _, ok := set.Execute([]byte("nothing here\n"), false); ok {
		t.Error("second Execute on a different buffer: got a match, want none")
	}
	if _, ok := set.Execute([]byte("another needle\n"), false); !ok {
		t.Error("third Execute: no match, want a hit")
	}
}
