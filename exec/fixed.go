package exec

import (
	"github.com/coregx/grepcore/keyword"
	"github.com/coregx/grepcore/mbyte"
	"github.com/coregx/grepcore/pattern"
)

// Fixed runs the fixed-strings executor (spec.md §4.5) against set.Fixed,
// the single bundle whose keyword set holds every literal pattern line.
func Fixed(set *pattern.Set, buf []byte, exact bool) (offset, length int, ok bool) {
	b := set.Fixed
	term := set.Flags.LineTerminator
	props := mbyte.Probe(buf)

	haystack := buf
	if set.Flags.CaseInsensitive {
		// ASCII-only fold preserves every byte's position, so match offsets
		// found against the folded copy are still valid indices into buf.
		haystack = pattern.ASCIILower(buf)
	}

	beg := 0
	for beg < len(buf) {
		m, found := b.Keywords.Find(haystack, beg)
		if !found {
			return 0, 0, false
		}
		p, hitLen := m.Start, m.End-m.Start

		if !props.StartsChar(p) {
			beg = p + 1
			continue
		}

		if exact && !set.Flags.WholeLine && !set.Flags.WholeWord {
			return p, hitLen, true
		}

		switch {
		case set.Flags.WholeLine:
			beforeOK := p == 0 || buf[p-1] == term
			afterOK := p+hitLen == len(buf) || buf[p+hitLen] == term
			if !beforeOK || !afterOK {
				beg = p + 1
				continue
			}
			if exact {
				return p, hitLen, true
			}

		case set.Flags.WholeWord:
			length, okLen := fixedShrinkToWordBoundary(b.Keywords, haystack, buf, p, hitLen)
			if !okLen {
				beg = p + 1
				continue
			}
			if exact {
				return p, length, true
			}
			hitLen = length
		}

		lineBeg := lineStart(buf, p, term)
		end := lineEnd(buf, p+hitLen, term)
		return lineBeg, end - lineBeg, true
	}
	return 0, 0, false
}

// fixedShrinkToWordBoundary implements the Open Question resolution for
// spec.md §4.5's whole-word `--len` step: try progressively shorter
// prefixes of the hit, anchored at the same start p, until one both exists
// in the keyword set and lands on non-word boundaries; give up when none
// remain.
func fixedShrinkToWordBoundary(kw *keyword.Set, haystack, buf []byte, p, length int) (int, bool) {
	limit := p + length
	for limit > p {
		m, found := kw.FindWithin(haystack, p, limit)
		if found && m.Start == p {
			l := m.End - m.Start
			if wholeWordAccept(buf, p, l, 0, len(buf)) {
				return l, true
			}
		}
		limit--
	}
	return 0, false
}
