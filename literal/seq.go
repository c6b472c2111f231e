// Package literal represents the "musts" of a compiled pattern: fixed byte
// strings that any match is known to contain.
//
// A must is either exact (the must equals the entire alternative, so a
// keyword hit is by itself a confirmed match) or probable (the must merely
// narrows the region handed to the regex engine). See ExtractMusts for how
// a must-set is derived from a parsed pattern, and the keyword package for
// how a must-set becomes a prefilter.
package literal

import "sort"

// Literal is one fixed byte run a pattern's match is known to contain.
// Complete marks it as an exact must: the whole alternative reduces to
// this literal, so matching it is itself a confirmed match.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral builds a Literal from a byte run and its completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the literal's length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String renders the literal for debugging.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative musts — e.g. the per-branch literals of an
// alternation, any one of which a match is known to contain.
type Seq struct {
	literals []Literal
}

// NewSeq builds a Seq from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. It panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Minimize drops any literal that has another, already kept literal as a
// byte-for-byte prefix, since a match containing the longer one
// necessarily contains the shorter — GNU grep's kwsmusts performs this
// same dedup pass before handing musts to the keyword automaton, so a
// pattern like "foo|foobar" builds a one-pattern automaton instead of two.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.Slice(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if isPrefix(k.Bytes, current.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}
	s.literals = kept
}

// isPrefix reports whether prefix is a prefix of s.
func isPrefix(prefix, s []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if prefix[i] != s[i] {
			return false
		}
	}
	return true
}
