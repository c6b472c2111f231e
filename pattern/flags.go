package pattern

// Flags carries the configuration spec.md's DESIGN NOTES recast from
// GNU grep's module-level globals (match-icase, eolbyte, word-class
// definition) into an explicit struct plumbed through Compile and carried
// inside every bundle's wrapping/compilation step.
type Flags struct {
	// CaseInsensitive folds case during regex/DFA compilation.
	CaseInsensitive bool

	// WholeWord requires a match to fall on a word boundary on both sides.
	// Ignored when WholeLine is also set (whole-line takes precedence).
	WholeWord bool

	// WholeLine requires a match to span the entire line.
	WholeLine bool

	// LineTerminator is the single byte that delimits records. Normally
	// '\n'; '\x00' selects NUL-separated mode and is incompatible with the
	// perl dialect.
	LineTerminator byte
}

// DefaultFlags returns the conventional newline-terminated, case-sensitive,
// unrestricted configuration.
func DefaultFlags() Flags {
	return Flags{LineTerminator: '\n'}
}
