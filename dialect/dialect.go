// Package dialect normalizes a dialect selection (spec.md §4.1) into the
// syntax flags shared by the regex and DFA compilers, plus which executor
// the pattern set should use.
package dialect

import (
	"fmt"
	"regexp/syntax"
	"strings"
)

// Tag names one of the recognized dialects (spec.md §6).
type Tag string

const (
	Default Tag = "default"
	Grep    Tag = "grep"
	Egrep   Tag = "egrep"
	Awk     Tag = "awk"
	Fgrep   Tag = "fgrep"
	Perl    Tag = "perl"
)

// ExecutorKind selects which of exec's three executors a compiled pattern
// set should run under.
type ExecutorKind int

const (
	// Layered drives the keyword + DFA + regex pipeline (basic, extended, awk).
	Layered ExecutorKind = iota
	// Fixed drives the keyword-only fixed-strings executor.
	Fixed
	// PerlOnly drives a single call into the PCRE-backed executor.
	PerlOnly
)

// Resolved is the result of adapting a Tag: the syntax flags to hand both
// compilers, which executor runs the compiled bundles, and a pattern text
// translator (dialects whose backslash-metacharacter convention stdlib
// regexp/syntax doesn't natively speak need their text rewritten first).
type Resolved struct {
	Syntax    syntax.Flags
	Executor  ExecutorKind
	Translate func(pattern string) string
	Name      Tag

	// ClassNegationExcludesNewline reports whether a negated bracket
	// expression excludes the newline in this dialect: true for the layered
	// dialects, false for fgrep and perl (whose Syntax also has ClassNL
	// cleared but is never handed to a regexp/syntax-based compiler). It's
	// surfaced separately so callers that only need the boolean don't have
	// to know the regexp/syntax bit layout.
	ClassNegationExcludesNewline bool
}

// UnsupportedError reports a dialect or dialect/terminator combination that
// compile must fatally reject (spec.md §6, §7 category 3).
type UnsupportedError struct {
	Tag    Tag
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("dialect %q: %s", e.Tag, e.Reason)
}

// Adapt resolves tag into syntax flags and an executor kind. caseInsensitive
// and lineTerminator come from the caller's Flags (spec.md §6).
//
// basic and extended/awk both route through regexp/syntax, which has no
// notion of POSIX basic-vs-extended backslash metacharacter conventions;
// Resolved.Translate rewrites the raw pattern text into the ERE-like form
// regexp/syntax expects before parsing. This is a deliberate simplification
// spec.md licenses explicitly: "this spec does not define the dialect
// grammars, only how the core composes the engines around them."
func Adapt(tag Tag, caseInsensitive bool, lineTerminator byte) (Resolved, error) {
	flags := syntax.Perl &^ syntax.ClassNL // negated classes never match newline (spec.md §4.1)
	if caseInsensitive {
		flags |= syntax.FoldCase
	}

	switch tag {
	case Default, Grep:
		return Resolved{Syntax: flags, Executor: Layered, Translate: translateBasic, Name: Grep, ClassNegationExcludesNewline: true}, nil
	case Egrep:
		return Resolved{Syntax: flags, Executor: Layered, Translate: translateExtended, Name: Egrep, ClassNegationExcludesNewline: true}, nil
	case Awk:
		return Resolved{Syntax: flags, Executor: Layered, Translate: translateExtended, Name: Awk, ClassNegationExcludesNewline: true}, nil
	case Fgrep:
		return Resolved{Syntax: flags, Executor: Fixed, Name: Fgrep}, nil
	case Perl:
		if lineTerminator != '\n' {
			return Resolved{}, &UnsupportedError{Tag: tag, Reason: "the perl dialect requires a newline line terminator"}
		}
		return Resolved{Syntax: flags, Executor: PerlOnly, Name: Perl}, nil
	default:
		return Resolved{}, &UnsupportedError{Tag: tag, Reason: "unrecognized dialect"}
	}
}

// translateExtended passes POSIX extended / awk syntax through mostly
// unchanged: Go's regexp/syntax already parses unescaped ( ) { } | + ? as
// metacharacters the way ERE does.
func translateExtended(pattern string) string {
	return pattern
}

// translateBasic rewrites GNU basic-regular-expression backslash
// conventions (\( \) \{ \} \+ \? \| are metacharacters; bare ( ) { } + ? |
// are literal) into the extended form regexp/syntax expects.
func translateBasic(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	const metas = "(){}+?|"
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) && strings.IndexByte(metas, pattern[i+1]) >= 0 {
			b.WriteByte(pattern[i+1])
			i++
			continue
		}
		if strings.IndexByte(metas, c) >= 0 {
			b.WriteByte('\\')
			b.WriteByte(c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
