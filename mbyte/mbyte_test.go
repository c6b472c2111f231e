package mbyte

import "testing"

func TestProbeASCII(t *testing.T) {
	buf := []byte("hello world\n")
	props := Probe(buf)
	if len(props) != len(buf) {
		t.Fatalf("len(props) = %d, want %d", len(props), len(buf))
	}
	for i, p := range props {
		if p != 1 {
			t.Errorf("props[%d] = %d, want 1 for ASCII byte %q", i, p, buf[i])
		}
	}
}

func TestProbeMultibyte(t *testing.T) {
	// "café" = c a f é, é is 2 bytes in UTF-8 (0xc3 0xa9).
	buf := []byte("café")
	props := Probe(buf)
	want := []byte{1, 1, 1, 2, 0}
	if len(props) != len(want) {
		t.Fatalf("len(props) = %d, want %d", len(props), len(want))
	}
	for i := range want {
		if props[i] != want[i] {
			t.Errorf("props[%d] = %d, want %d", i, props[i], want[i])
		}
	}
}

func TestProbeInvalidSequence(t *testing.T) {
	// A lone continuation byte has no valid lead, so it cannot be decoded;
	// like GNU grep's check_multibyte_string, Probe treats it as a
	// single-byte character (property 1).
	buf := []byte{0x80, 'x'}
	props := Probe(buf)
	if props[0] != 1 {
		t.Errorf("props[0] = %d, want 1 for an undecodable byte", props[0])
	}
	if props[1] != 1 {
		t.Errorf("props[1] = %d, want 1 for the trailing ASCII byte", props[1])
	}
}

func TestPropertiesStartsChar(t *testing.T) {
	props := Properties{1, 1, 2, 0, 1}
	cases := []struct {
		offset int
		want   bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false}, // continuation byte
		{4, true},
		{5, true}, // end of buffer is a valid boundary
		{6, false},
		{-1, false},
	}
	for _, c := range cases {
		if got := props.StartsChar(c.offset); got != c.want {
			t.Errorf("StartsChar(%d) = %v, want %v", c.offset, got, c.want)
		}
	}
}

func TestProbeEmpty(t *testing.T) {
	props := Probe(nil)
	if len(props) != 0 {
		t.Errorf("Probe(nil) returned %d properties, want 0", len(props))
	}
}

func TestIsASCIIChunkedBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 17} {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = 'a'
		}
		if !isASCIIChunked(buf) {
			t.Errorf("isASCIIChunked(len=%d all-ASCII) = false, want true", n)
		}
		if n > 0 {
			buf[n-1] = 0xff
			if isASCIIChunked(buf) {
				t.Errorf("isASCIIChunked(len=%d, high bit at end) = true, want false", n)
			}
		}
	}
}
