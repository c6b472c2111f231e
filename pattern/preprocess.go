package pattern

import (
	"strings"
)

// nonWordClass is the bracket expression complementary to the word-byte
// class [0-9A-Za-z_] (spec.md §6 "Word characters").
const nonWordClass = `[^0-9A-Za-z_]`

// Split breaks blob into alternatives on terminator. A trailing terminator
// yields a trailing empty alternative, which compiles as the empty pattern
// and so matches every line; this mirrors GNU grep's own treatment of a
// pattern file ending in a blank line.
func Split(blob []byte, terminator byte) []string {
	if len(blob) == 0 {
		return []string{""}
	}
	parts := strings.Split(string(blob), string(terminator))
	return parts
}

// WrapLayered applies the whole-line/whole-word envelope (spec.md §4.2) to
// a single already-dialect-translated (ERE-shaped) alternative. Whole-line
// takes precedence when both flags are set.
func WrapLayered(translated string, f Flags) string {
	switch {
	case f.WholeLine:
		return "^(" + translated + ")$"
	case f.WholeWord:
		return "(^|" + nonWordClass + ")(" + translated + ")(" + nonWordClass + "|$)"
	default:
		return translated
	}
}

// JoinPerl concatenates every alternative into the single pattern the perl
// dialect compiles as one unit (spec.md §4.2: "applied to the concatenated
// pattern as a single alternative"), then applies the word/line envelope
// using PCRE's own anchors.
func JoinPerl(alternatives []string, f Flags) string {
	joined := strings.Join(alternatives, "|")
	switch {
	case f.WholeLine:
		return "(?m)^(?:" + joined + ")$"
	case f.WholeWord:
		return `\b(?:` + joined + `)\b`
	default:
		return joined
	}
}

// ASCIILower folds ASCII letters to lowercase, leaving every other byte
// (including multibyte sequence bytes, which never fall in A-Z) untouched.
// Used for the fixed-strings dialect's case-insensitive mode: since the
// keyword automaton has no fold option of its own, both musts and the
// search haystack are lowercased before the automaton ever sees them
// (exec.Fixed does the haystack side).
func ASCIILower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

// encodeNULPerl implements spec.md §4.3's NUL-encoding rule: a literal NUL
// byte in a perl pattern becomes the four-character sequence \000, with one
// immediately preceding backslash consumed if the run of backslashes before
// the NUL is odd-length (so "\<NUL>" — an escaped NUL — collapses to a
// single \000 rather than becoming \\000, which would parse as an escaped
// backslash followed by literal "000").
func encodeNULPerl(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	i := 0
	for i < len(pattern) {
		if pattern[i] != 0 {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		backslashes := 0
		for backslashes < b.Len() && b.String()[b.Len()-1-backslashes] == '\\' {
			backslashes++
		}
		if backslashes%2 == 1 {
			trimmed := b.String()[:b.Len()-1]
			b.Reset()
			b.WriteString(trimmed)
		}
		b.WriteString(`\000`)
		i++
	}
	return b.String()
}
