// Package pattern turns a raw pattern blob into a compiled, read-only
// PatternSet: splitting it on the line terminator, optionally wrapping each
// alternative for whole-word/whole-line matching, and compiling each
// resulting alternative into a Bundle.
package pattern

import (
	"github.com/coregx/grepcore/engine"
	"github.com/coregx/grepcore/keyword"
)

// Bundle is the compiled form of one pattern alternative (spec.md §3).
type Bundle struct {
	// Regex is authoritative: it understands backreferences and captures,
	// and its verdict on a candidate region always wins.
	Regex engine.RegexProgram

	// DFA is the cheap prefilter stage. It is nil for the fixed-strings and
	// perl executors, which never build a DFA.
	DFA engine.DFAProgram

	// Keywords is nil when this bundle's DFA produced no musts.
	Keywords *keyword.Set

	// ExactCount mirrors Keywords.ExactCount(), cached so callers that
	// don't need the full Set can still check without a nil guard.
	ExactCount int

	// Source is the alternative's pattern text after dialect translation
	// and word/line wrapping, kept for diagnostics.
	Source string
}

// HasKeywords reports whether this bundle has a keyword-set prefilter.
func (b *Bundle) HasKeywords() bool {
	return b.Keywords != nil
}
