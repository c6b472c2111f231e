// Package keyword adapts a bundle's musts into the keyword-set prefilter
// contract: find the first occurrence, anywhere in a buffer, of any one of
// a fixed set of byte strings, and report which string matched.
//
// The underlying multi-pattern search is github.com/coregx/ahocorasick, the
// same dependency coregex's meta-engine reaches for when a pattern has more
// literal alternatives than its SIMD (Teddy) prefilters can hold.
package keyword

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/grepcore/literal"
)

// Set is a compiled keyword-set matcher. Indices [0, ExactCount) identify
// keywords that are themselves a complete match for their pattern
// alternative; a hit on one of them needs no further verification.
type Set struct {
	automaton  *ahocorasick.Automaton
	exactCount int
}

// Match is one occurrence reported by Find.
type Match struct {
	// Start and End delimit the matched keyword within the haystack.
	Start, End int
	// Index identifies which keyword matched, in insertion order.
	Index int
}

// Build compiles musts into a Set. Exact musts (Complete == true) are
// inserted first so their indices land below ExactCount, matching GNU
// grep's kwsmusts: exact musts are inserted before probable ones so that
// "index < exact count" is a cheap confirmed-match test.
func Build(musts *literal.Seq) (*Set, error) {
	if musts.IsEmpty() {
		return nil, nil
	}
	musts.Minimize()

	builder := ahocorasick.NewBuilder()
	exactCount := 0
	n := musts.Len()

	for i := 0; i < n; i++ {
		l := musts.Get(i)
		if l.Complete {
			builder.AddPattern(l.Bytes)
			exactCount++
		}
	}
	for i := 0; i < n; i++ {
		l := musts.Get(i)
		if !l.Complete {
			builder.AddPattern(l.Bytes)
		}
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Set{automaton: automaton, exactCount: exactCount}, nil
}

// ExactCount returns the number of keywords that are themselves a complete
// match for their originating alternative.
func (s *Set) ExactCount() int {
	if s == nil {
		return 0
	}
	return s.exactCount
}

// IsExact reports whether a hit at the given keyword index is, by itself, a
// confirmed match (no DFA or regex confirmation needed).
func (s *Set) IsExact(index int) bool {
	return index < s.exactCount
}

// Find returns the first keyword occurrence at or after start, or false if
// none exists in haystack[start:].
func (s *Set) Find(haystack []byte, start int) (Match, bool) {
	if s == nil || start >= len(haystack) {
		return Match{}, false
	}
	m := s.automaton.Find(haystack, start)
	if m == nil {
		return Match{}, false
	}
	return Match{Start: m.Start, End: m.End, Index: m.Pattern}, true
}

// FindWithin reports the first keyword occurrence in haystack[start:limit],
// or false if none. It is used by the fixed-strings executor's whole-word
// retry (spec.md §4.5, §9 Open Question), which re-searches a shrinking
// window anchored at the same start.
func (s *Set) FindWithin(haystack []byte, start, limit int) (Match, bool) {
	m, ok := s.Find(haystack[:limit], start)
	return m, ok
}
