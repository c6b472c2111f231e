package exec

import "testing"

func TestLineStartEnd(t *testing.T) {
	buf := []byte("first\nsecond\nthird")
	cases := []struct {
		from            int
		wantStart       int
		wantEndFrom     int
		wantEnd         int
	}{
		{0, 0, 0, 6},
		{6, 6, 6, 13},
		{13, 13, 13, 18},
	}
	for _, c := range cases {
		if got := lineStart(buf, c.from, '\n'); got != c.wantStart {
			t.Errorf("lineStart(%d) = %d, want %d", c.from, got, c.wantStart)
		}
		if got := lineEnd(buf, c.wantEndFrom, '\n'); got != c.wantEnd {
			t.Errorf("lineEnd(%d) = %d, want %d", c.wantEndFrom, got, c.wantEnd)
		}
	}
}

func TestLineEndNoTrailingTerminator(t *testing.T) {
	buf := []byte("only line, no newline")
	if got := lineEnd(buf, 0, '\n'); got != len(buf) {
		t.Errorf("lineEnd = %d, want %d", got, len(buf))
	}
}

func TestIsWordByte(t *testing.T) {
	cases := map[byte]bool{
		'a': true, 'Z': true, '5': true, '_': true,
		' ': false, '.': false, '-': false,
	}
	for b, want := range cases {
		if got := isWordByte(b); got != want {
			t.Errorf("isWordByte(%q) = %v, want %v", b, got, want)
		}
	}
}

func TestWholeWordAccept(t *testing.T) {
	buf := []byte("the cat sat")
	// "cat" at [4,7)
	if !wholeWordAccept(buf, 4, 3, 0, len(buf)) {
		t.Error("wholeWordAccept(cat) = false, want true")
	}
	// "at" at [5,7) is inside "cat" - not on a word boundary before it
	if wholeWordAccept(buf, 5, 2, 0, len(buf)) {
		t.Error("wholeWordAccept(at, inside cat) = true, want false")
	}
}

func TestWholeWordAcceptRegionEdges(t *testing.T) {
	buf := []byte("catfish")
	// "cat" starting exactly at the region start, match end mid-word: not accepted after.
	if wholeWordAccept(buf, 0, 3, 0, len(buf)) {
		t.Error("wholeWordAccept(cat inside catfish) = true, want false")
	}
	if !wholeWordAccept(buf, 0, len(buf), 0, len(buf)) {
		t.Error("wholeWordAccept over the whole region = false, want true")
	}
}
