// Package grepcore compiles regular-expression and fixed-string pattern
// sets and executes them against in-memory buffers to find the enclosing
// line of the first match.
//
// It is a library: there is no flag parsing, no file or stdin reading, no
// output formatting, and no locale initialization — callers own all of
// that. Compile builds a PatternSet once; Execute runs it as many times as
// needed against different buffers.
package grepcore

import (
	"github.com/coregx/grepcore/dialect"
	"github.com/coregx/grepcore/exec"
	"github.com/coregx/grepcore/pattern"
)

// Dialect tags recognized by Compile (spec.md §6). Default and Grep are
// synonyms selecting basic regular expressions.
const (
	Default = dialect.Default
	Grep    = dialect.Grep
	Egrep   = dialect.Egrep
	Awk     = dialect.Awk
	Fgrep   = dialect.Fgrep
	Perl    = dialect.Perl
)

// Tag names a dialect, as given to Compile.
type Tag = dialect.Tag

// Flags configures a Compile call: case-folding, the two mutually exclusive
// match-restriction modes (whole-line takes precedence when both are set),
// and the line-terminator byte.
type Flags = pattern.Flags

// DefaultFlags returns newline-terminated, case-sensitive, unrestricted
// matching.
func DefaultFlags() Flags {
	return pattern.DefaultFlags()
}

// Match is the span Execute reports: either the enclosing line (the
// default) or, in exact mode, the regex/keyword match span itself.
type Match struct {
	Offset int
	Length int
}

// PatternSet is a compiled, read-only pattern set (spec.md §3, §5). Build
// one with Compile; Execute may be called on it any number of times, from
// any number of goroutines, since nothing under it mutates.
type PatternSet struct {
	set *pattern.Set
}

// Compile builds a PatternSet from a dialect tag, a raw pattern blob split
// on flags.LineTerminator, and the active flags. It fails hard — with no
// partially-built set left behind — on a pattern syntax error, an
// unsupported dialect/terminator combination, or resource exhaustion
// (spec.md §6, §7).
func Compile(tag Tag, patternBlob []byte, flags Flags) (*PatternSet, error) {
	set, err := pattern.Compile(tag, patternBlob, flags)
	if err != nil {
		return nil, err
	}
	return &PatternSet{set: set}, nil
}

// Execute runs the compiled set against buffer, returning the enclosing
// line of the first match (by earliest starting offset; spec.md §4.4
// "Tie-breaks"), or just the match span itself when exact is true. The
// second return value is false when no bundle matches anywhere in buffer.
func (ps *PatternSet) Execute(buffer []byte, exact bool) (Match, bool) {
	var offset, length int
	var ok bool

	switch ps.set.Dialect.Executor {
	case dialect.Layered:
		offset, length, ok = exec.Layered(ps.set, buffer, exact)
	case dialect.Fixed:
		offset, length, ok = exec.Fixed(ps.set, buffer, exact)
	case dialect.PerlOnly:
		offset, length, ok = exec.Perl(ps.set, buffer, exact)
	}
	if !ok {
		return Match{}, false
	}
	return Match{Offset: offset, Length: length}, true
}
