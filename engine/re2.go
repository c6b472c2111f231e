package engine

import (
	"fmt"
	"regexp"
	"regexp/syntax"

	"github.com/coregx/grepcore/literal"
)

// CompileError reports a pattern that failed to compile, in either the
// regex or the DFA stage (spec.md §7 category 1).
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern %q: %s", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// re2Program is a RegexProgram backed by stdlib regexp. It never reports a
// backreference, since regexp/syntax has no such node.
//
// anchored is the same pattern wrapped in a leading \A, compiled once at
// construction time, so Match can ask RE2 to anchor the search itself
// instead of running an unanchored FindIndex over the whole region and
// rejecting results that don't start at offset 0.
type re2Program struct {
	re       *regexp.Regexp
	anchored *regexp.Regexp
}

// re2DFA is a DFAProgram backed by the same compiled regexp, used as the
// cheap prefilter stage. When the originating pattern had a backreference,
// backrefFallback is true and the compiled text is a superset approximation
// (see CompileDFA).
type re2DFA struct {
	re              *regexp.Regexp
	musts           *literal.Seq
	backrefFallback bool
}

// CompileRegex compiles pattern (already translated into regexp/syntax
// form by dialect.Resolved.Translate) into the authoritative RegexProgram.
func CompileRegex(pattern string, flags syntax.Flags) (RegexProgram, error) {
	re, err := compileWithFlags(pattern, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	anchored, err := compileWithFlags(`\A(?:`+pattern+`)`, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return &re2Program{re: re, anchored: anchored}, nil
}

// CompileDFA compiles pattern into the DFA prefilter stage and extracts its
// musts. When hasBackref is true, pattern should already have its
// backreference tokens replaced by a conservative superset (".*"), and the
// resulting program is marked backrefFallback so the executor treats a hit
// as prefilter-only (spec.md §3 invariant).
func CompileDFA(pattern string, flags syntax.Flags, hasBackref bool) (DFAProgram, error) {
	re, err := compileWithFlags(pattern, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	parsed, err := syntax.Parse(pattern, flags)
	var musts *literal.Seq
	if err == nil {
		musts = literal.ExtractMusts(parsed, literal.DefaultExtractConfig())
	} else {
		musts = literal.NewSeq()
	}

	return &re2DFA{re: re, musts: musts, backrefFallback: hasBackref}, nil
}

// compileWithFlags compiles pattern via stdlib regexp, translating the one
// bit of flags regexp.Compile has no constructor parameter for —
// case-folding — into an inline (?i) group. regexp.Compile exposes no way
// to hand it a pre-parsed syntax.Flags value directly, so this is the
// narrowest bridge between dialect.Resolved's flags and the stdlib
// compiler; musts extraction (CompileDFA, above) parses with the real
// flags directly via regexp/syntax instead and is unaffected by this.
func compileWithFlags(pattern string, flags syntax.Flags) (*regexp.Regexp, error) {
	if flags&syntax.FoldCase != 0 {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

func (p *re2Program) Search(buf []byte, start, endLimit int) (int, int, bool) {
	loc := p.re.FindIndex(buf[start:endLimit])
	if loc == nil {
		return 0, 0, false
	}
	return start + loc[0], start + loc[1], true
}

func (p *re2Program) Match(buf []byte, start, endLimit int, anchorEnd bool) (int, bool) {
	sub := buf[start:endLimit]
	loc := p.anchored.FindIndex(sub)
	if loc == nil {
		return 0, false
	}
	if anchorEnd && loc[1] != len(sub) {
		return 0, false
	}
	return loc[1], true
}

func (d *re2DFA) Search(buf []byte, start, end int) (int, bool) {
	loc := d.re.FindIndex(buf[start:end])
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}

func (d *re2DFA) HasBackref() bool { return d.backrefFallback }

func (d *re2DFA) Musts() *literal.Seq { return d.musts }
