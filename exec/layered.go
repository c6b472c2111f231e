package exec

import (
	"github.com/coregx/grepcore/engine"
	"github.com/coregx/grepcore/mbyte"
	"github.com/coregx/grepcore/pattern"
)

// Layered drives the keyword + DFA + regex pipeline across every bundle in
// set.Layered, in compilation order, implementing spec.md §4.4. Every
// bundle is run and the match with the smallest offset wins; on equal
// offsets the earlier bundle wins, and within whole-word relaxation the
// longest valid-word match at the earliest start is preferred (spec.md
// §4.4 "Tie-breaks").
func Layered(set *pattern.Set, buf []byte, exact bool) (offset, length int, ok bool) {
	bestOffset, bestLength := 0, 0
	found := false

	for _, bundle := range set.Layered {
		o, l, matched := runBundle(bundle, buf, set.Flags, exact)
		if !matched {
			continue
		}
		if !found || o < bestOffset {
			bestOffset, bestLength, found = o, l, true
		}
	}
	return bestOffset, bestLength, found
}

// runBundle implements spec.md §4.4's per-bundle algorithm.
func runBundle(b *pattern.Bundle, buf []byte, flags pattern.Flags, exact bool) (int, int, bool) {
	n := len(buf)
	term := flags.LineTerminator

	var props mbyte.Properties
	if b.HasKeywords() {
		props = mbyte.Probe(buf)
	}

	beg := 0
	for beg <= n {
		var end int

		if b.HasKeywords() {
			m, found := b.Keywords.Find(buf, beg)
			if !found {
				return 0, 0, false
			}
			p := m.Start
			if props != nil && !props.StartsChar(p) {
				beg = p + 1
				continue
			}

			end = lineEnd(buf, m.End, term)
			lineBeg := lineStart(buf, p, term)

			if b.Keywords.IsExact(m.Index) {
				if exact {
					return m.Start, m.End - m.Start, true
				}
				return lineBeg, end - lineBeg, true
			}

			beg = lineBeg
			// The DFA sees the line without its terminator, the same range
			// the regex confirms, so its $ can anchor at the line's end.
			dfaEnd := end
			if dfaEnd > beg && buf[dfaEnd-1] == term {
				dfaEnd--
			}
			off, hit := b.DFA.Search(buf, beg, dfaEnd)
			if !hit {
				beg = end
				continue
			}
			_ = off // the DFA's own offset is superseded by the regex confirmation below
		} else {
			off, hit := b.DFA.Search(buf, beg, n)
			if !hit {
				return 0, 0, false
			}
			beg = beg + off
			end = lineEnd(buf, beg, term)
			beg = lineStart(buf, beg, term)

			if !b.DFA.HasBackref() && !exact {
				return beg, end - beg, true
			}
		}

		confirmEnd := end
		if confirmEnd > beg && buf[confirmEnd-1] == term {
			confirmEnd--
		}

		if o, l, matched := confirmRegex(b, buf, beg, end, confirmEnd, flags, exact); matched {
			return o, l, true
		}
		beg = end
	}
	return 0, 0, false
}

// confirmRegex implements spec.md §4.4 steps 3-4: run the regex engine on
// the candidate line (minus its trailing terminator), then apply whichever
// of exact/whole-line/whole-word mode is active.
func confirmRegex(b *pattern.Bundle, buf []byte, beg, end, confirmEnd int, flags pattern.Flags, exact bool) (int, int, bool) {
	switch {
	case flags.WholeLine:
		length, ok := b.Regex.Match(buf, beg, confirmEnd, true)
		if !ok {
			return 0, 0, false
		}
		if exact {
			return beg, length, true
		}
		return beg, end - beg, true

	case flags.WholeWord:
		start, length, matched := wholeWordSearch(b.Regex, buf, beg, confirmEnd)
		if !matched {
			return 0, 0, false
		}
		if exact {
			return start, length, true
		}
		return beg, end - beg, true

	default:
		start, matchEnd, matched := b.Regex.Search(buf, beg, confirmEnd)
		if !matched {
			return 0, 0, false
		}
		if exact {
			return start, matchEnd - start, true
		}
		return beg, end - beg, true
	}
}

// wholeWordSearch implements spec.md §4.4 step 4's whole-word relaxation:
// find a match, and if its boundaries aren't both non-word, shrink it one
// byte at a time (re-verifying the shorter span as an anchored match)
// before giving up and searching further forward in the line. The first
// accepted length at a given start is the longest one, since shrinking
// stops at the first success — satisfying the "longest valid-word match at
// the earliest start wins" tie-break.
func wholeWordSearch(regex engine.RegexProgram, buf []byte, regionStart, regionEnd int) (int, int, bool) {
	searchFrom := regionStart
	for searchFrom < regionEnd {
		start, end, matched := regex.Search(buf, searchFrom, regionEnd)
		if !matched {
			return 0, 0, false
		}
		if length, ok := shrinkToWordBoundary(regex, buf, start, end-start, regionStart, regionEnd); ok {
			return start, length, true
		}
		searchFrom = start + 1
	}
	return 0, 0, false
}

func shrinkToWordBoundary(regex engine.RegexProgram, buf []byte, start, length, regionStart, regionEnd int) (int, bool) {
	if wholeWordAccept(buf, start, length, regionStart, regionEnd) {
		return length, true
	}
	for l := length - 1; l >= 0; l-- {
		matchLen, ok := regex.Match(buf, start, start+l, true)
		if !ok || matchLen != l {
			continue
		}
		if wholeWordAccept(buf, start, l, regionStart, regionEnd) {
			return l, true
		}
	}
	return 0, false
}
