package pattern

import (
	"regexp/syntax"

	"github.com/coregx/grepcore/dialect"
	"github.com/coregx/grepcore/engine"
	"github.com/coregx/grepcore/keyword"
	"github.com/coregx/grepcore/literal"
)

// Set is an ordered, immutable-after-compile sequence of bundles (spec.md
// §3 "Pattern set"). It matches a buffer if any bundle matches.
type Set struct {
	Dialect dialect.Resolved
	Flags   Flags
	Layered []*Bundle   // used when Dialect.Executor == dialect.Layered
	Fixed   *Bundle     // used when Dialect.Executor == dialect.Fixed
	Perl    PerlProgram // used when Dialect.Executor == dialect.PerlOnly
}

// Compile builds a Set from tag, the raw pattern blob, and flags. It is the
// sole entry point the executor packages read a compiled pattern set from;
// nothing under it mutates afterward (spec.md §5).
func Compile(tag dialect.Tag, patternBlob []byte, flags Flags) (*Set, error) {
	resolved, err := dialect.Adapt(tag, flags.CaseInsensitive, flags.LineTerminator)
	if err != nil {
		return nil, err
	}

	alternatives := Split(patternBlob, flags.LineTerminator)

	switch resolved.Executor {
	case dialect.Layered:
		return compileLayered(resolved, alternatives, flags)
	case dialect.Fixed:
		return compileFixed(resolved, alternatives, flags)
	case dialect.PerlOnly:
		return compilePerl(resolved, alternatives, flags)
	default:
		return nil, &dialect.UnsupportedError{Tag: tag, Reason: "unrecognized executor kind"}
	}
}

// compileLayered implements spec.md §4.3 for the basic/extended/awk dialects:
// one bundle per alternative, each with its own regex, DFA, and (optional)
// keyword set.
func compileLayered(resolved dialect.Resolved, alternatives []string, flags Flags) (*Set, error) {
	bundles := make([]*Bundle, 0, len(alternatives))
	for _, alt := range alternatives {
		translated := resolved.Translate(alt)
		wrapped := WrapLayered(translated, flags)

		bundle, err := compileBundle(wrapped, resolved.Syntax)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, bundle)
	}
	return &Set{Dialect: resolved, Flags: flags, Layered: bundles}, nil
}

// compileBundle builds one Bundle: regex, DFA, and the keyword set derived
// from the DFA's musts (spec.md §4.3 steps 1-3).
func compileBundle(pattern string, flags syntax.Flags) (*Bundle, error) {
	hasBackref := engine.HasBackreference(pattern)

	var regex engine.RegexProgram
	var err error
	if hasBackref {
		regex, err = engine.CompileBacktracker(pattern, flags&syntax.FoldCase != 0)
	} else {
		regex, err = engine.CompileRegex(pattern, flags)
	}
	if err != nil {
		return nil, err
	}

	dfaPattern := pattern
	if hasBackref {
		dfaPattern = engine.StripBackreferencesForDFA(pattern)
	}
	dfa, err := engine.CompileDFA(dfaPattern, flags, hasBackref)
	if err != nil {
		return nil, err
	}

	kw, err := keyword.Build(dfa.Musts())
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Regex:      regex,
		DFA:        dfa,
		Keywords:   kw,
		ExactCount: kw.ExactCount(),
		Source:     pattern,
	}, nil
}

// compileFixed implements spec.md §4.5's single bundle: every alternative is
// a literal, exact must with no regex and no DFA stage.
func compileFixed(resolved dialect.Resolved, alternatives []string, flags Flags) (*Set, error) {
	musts := make([]literal.Literal, 0, len(alternatives))
	for _, alt := range alternatives {
		b := []byte(alt)
		if flags.CaseInsensitive {
			b = ASCIILower(b)
		}
		musts = append(musts, literal.NewLiteral(b, true))
	}
	kw, err := keyword.Build(literal.NewSeq(musts...))
	if err != nil {
		return nil, err
	}
	bundle := &Bundle{Keywords: kw, ExactCount: kw.ExactCount()}
	return &Set{Dialect: resolved, Flags: flags, Fixed: bundle}, nil
}

// compilePerl implements spec.md §4.2's single-concatenated-alternative
// treatment and §4.3's NUL-encoding rule.
func compilePerl(resolved dialect.Resolved, alternatives []string, flags Flags) (*Set, error) {
	for i, alt := range alternatives {
		alternatives[i] = encodeNULPerl(alt)
	}
	joined := JoinPerl(alternatives, flags)

	program, err := CompilePerl(joined, flags.CaseInsensitive)
	if err != nil {
		return nil, err
	}
	return &Set{Dialect: resolved, Flags: flags, Perl: program}, nil
}
