// Package exec drives the compiled pattern set's engines against a buffer
// to locate the enclosing line of the first match (spec.md §4.4-§4.6).
package exec

import "bytes"

// lineEnd returns the offset just past the next terminator at or after
// from, or len(buf) if none remains.
func lineEnd(buf []byte, from int, terminator byte) int {
	idx := bytes.IndexByte(buf[from:], terminator)
	if idx < 0 {
		return len(buf)
	}
	return from + idx + 1
}

// lineStart returns the offset just past the terminator preceding from, or
// 0 if from is on the first line.
func lineStart(buf []byte, from int, terminator byte) int {
	idx := bytes.LastIndexByte(buf[:from], terminator)
	if idx < 0 {
		return 0
	}
	return idx + 1
}

// isWordByte reports whether b is a word character, [0-9A-Za-z_] on the raw
// byte domain (spec.md §6 — no locale awareness).
func isWordByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b == '_':
		return true
	default:
		return false
	}
}

// wholeWordAccept reports whether the match [start, start+length) in buf
// sits on non-word boundaries, treating regionStart/regionEnd as line edges
// that count as boundaries in their own right (spec.md §4.4 step 4,
// §4.5 step 2).
func wholeWordAccept(buf []byte, start, length, regionStart, regionEnd int) bool {
	before := start == regionStart || !isWordByte(buf[start-1])
	end := start + length
	after := end == regionEnd || !isWordByte(buf[end])
	return before && after
}
