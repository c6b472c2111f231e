package literal

import (
	"regexp/syntax"
	"unicode/utf8"
)

// ExtractConfig bounds how much work ExtractMusts will do on a pathological
// pattern (deeply nested groups, huge alternations).
type ExtractConfig struct {
	// MaxDepth caps recursion into the parsed syntax tree.
	MaxDepth int
	// MaxMusts caps the number of alternative musts returned.
	MaxMusts int
	// MaxLiteralLen truncates any single must longer than this.
	MaxLiteralLen int
}

// DefaultExtractConfig mirrors the limits the teacher's literal extractor
// uses for alternation fan-out, scaled down since a must-set only needs to
// be "good enough to prefilter", not a full prefix/suffix/inner extraction.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		MaxDepth:      64,
		MaxMusts:      64,
		MaxLiteralLen: 256,
	}
}

// ExtractMusts walks a parsed pattern and returns the set of fixed
// substrings any match of re is known to contain, or an empty Seq if none
// can be proven (e.g. the pattern starts with ".*" or a wide character class).
//
// A returned Literal is Complete when it equals re's entire matched text —
// that is, re reduces to nothing but a literal run (ignoring a single
// enclosing capture). Complete musts are GNU grep's "exact" musts: a
// keyword-set hit on one of them is a confirmed match with no need to run
// the regex engine at all.
func ExtractMusts(re *syntax.Regexp, cfg ExtractConfig) *Seq {
	seq, whole := extract(re, cfg, 0)
	if seq.IsEmpty() {
		return seq
	}
	if whole {
		for i := range seq.literals {
			seq.literals[i].Complete = true
		}
	}
	if seq.Len() > cfg.MaxMusts {
		seq.literals = seq.literals[:cfg.MaxMusts]
	}
	for i, l := range seq.literals {
		if len(l.Bytes) > cfg.MaxLiteralLen {
			seq.literals[i].Bytes = l.Bytes[:cfg.MaxLiteralLen]
			seq.literals[i].Complete = false
		}
	}
	return seq
}

// extract returns the musts of re and whether re's matched text is nothing
// but those musts concatenated (i.e. re is "whole-literal": a single literal
// run, an alternation of literal runs, or one capture around either).
func extract(re *syntax.Regexp, cfg ExtractConfig, depth int) (*Seq, bool) {
	if depth > cfg.MaxDepth {
		return NewSeq(), false
	}

	switch re.Op {
	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			// Case-folded literals can't be matched by exact byte
			// comparison; the keyword set would miss case variants.
			return NewSeq(), false
		}
		return NewSeq(NewLiteral(runeSliceToBytes(re.Rune), false)), true

	case syntax.OpCapture:
		return extract(re.Sub[0], cfg, depth+1)

	case syntax.OpConcat:
		return extractConcat(re.Sub, cfg, depth+1)

	case syntax.OpAlternate:
		return extractAlternate(re.Sub, cfg, depth+1)

	case syntax.OpPlus:
		// x+ must contain at least one occurrence of x's musts.
		seq, _ := extract(re.Sub[0], cfg, depth+1)
		return seq, false

	default:
		// OpStar, OpQuest, OpAnyChar, OpCharClass, OpBeginLine, etc: no
		// substring is provably required.
		return NewSeq(), false
	}
}

// extractConcat finds the longest run of whole-literal sub-expressions
// within a concatenation and returns their concatenation as a single must.
// A concatenation is itself whole-literal only if every sub-expression is.
func extractConcat(subs []*syntax.Regexp, cfg ExtractConfig, depth int) (*Seq, bool) {
	var run []byte
	var best []byte
	allWhole := true

	flush := func() {
		if len(run) > len(best) {
			best = run
		}
		run = nil
	}

	for _, sub := range subs {
		seq, whole := extract(sub, cfg, depth)
		if whole && seq.Len() == 1 {
			run = append(run, seq.Get(0).Bytes...)
		} else {
			flush()
			allWhole = false
		}
	}
	flush()

	if len(best) == 0 {
		return NewSeq(), false
	}
	return NewSeq(NewLiteral(best, false)), allWhole
}

// extractAlternate unions the musts of every branch. The union is only
// useful as a must-set when every branch contributes exactly one literal
// run (otherwise some branch could match without any of the collected
// substrings present, and the "any match contains one of these" invariant
// would be violated).
func extractAlternate(subs []*syntax.Regexp, cfg ExtractConfig, depth int) (*Seq, bool) {
	lits := make([]Literal, 0, len(subs))
	allWhole := true
	for _, sub := range subs {
		seq, whole := extract(sub, cfg, depth)
		if seq.Len() != 1 || len(seq.Get(0).Bytes) == 0 {
			return NewSeq(), false
		}
		lits = append(lits, seq.Get(0))
		allWhole = allWhole && whole
	}
	return NewSeq(lits...), allWhole
}

func runeSliceToBytes(rs []rune) []byte {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	out := make([]byte, 0, n)
	buf := make([]byte, utf8.UTFMax)
	for _, r := range rs {
		l := utf8.EncodeRune(buf, r)
		out = append(out, buf[:l]...)
	}
	return out
}
