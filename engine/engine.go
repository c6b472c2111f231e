// Package engine binds the two engine contracts spec.md §3 leaves abstract
// — a regex program and a DFA program — to concrete implementations.
//
// Every pattern alternative compiles to both: a RegexProgram, which is
// authoritative (it understands backreferences and is what ultimately
// confirms or rejects a candidate region), and a DFAProgram, which is a
// cheap prefilter that is only trustworthy on its own when it reports no
// backreference was present in the pattern it compiled.
package engine

import "github.com/coregx/grepcore/literal"

// RegexProgram executes a compiled pattern against a byte range, honoring
// the active dialect.
type RegexProgram interface {
	// Search finds the leftmost match within buf[start:endLimit], returning
	// the match's absolute start and end offsets.
	Search(buf []byte, start, endLimit int) (matchStart, matchEnd int, ok bool)

	// Match reports the length of a match beginning exactly at start. When
	// anchorEnd is true, the match must also end exactly at endLimit — used
	// by the whole-word retry (spec.md §4.4 step 4) to test progressively
	// shorter candidate lengths anchored at the same start.
	Match(buf []byte, start, endLimit int, anchorEnd bool) (length int, ok bool)
}

// DFAProgram executes a non-backreferencing regex as a DFA over a byte
// range, reporting only the first match offset (never a captured length).
type DFAProgram interface {
	// Search finds the offset of the leftmost match within buf[start:end],
	// relative to start — add start to get the absolute offset into buf —
	// or false if none exists.
	Search(buf []byte, start, end int) (offset int, ok bool)

	// HasBackref reports whether a backreference was encountered while
	// compiling the pattern this DFA approximates. When true, a Search hit
	// is a superset: the executor must still confirm it against the
	// RegexProgram (spec.md §3 invariant).
	HasBackref() bool

	// Musts returns the fixed substrings any match of this program's
	// pattern is known to contain, or an empty Seq if none could be proven.
	Musts() *literal.Seq
}
