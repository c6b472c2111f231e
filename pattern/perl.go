package pattern

// PerlProgram is the compiled form of the perl dialect's single
// concatenated alternative (spec.md §4.6). It is a narrow interface —
// rather than a concrete cgo-bound type — so this package, and Compile
// itself, never need to import the PCRE binding directly: whichever build
// actually links PCRE registers its constructor into CompilePerl.
type PerlProgram interface {
	// Search runs one whole-buffer match attempt and reports the match
	// span, mirroring pcre_exec's single call per spec.md §4.6.
	Search(buf []byte) (start, end int, ok bool)
}

// CompilePerl constructs a PerlProgram for pattern. The exec package's
// cgo-gated PCRE adapter overwrites this at package-init time
// (exec/perl_cgo.go); without cgo nothing overwrites it, and the default
// below always fails, so compiling under the perl dialect surfaces
// "Perl engine unavailable" at Compile, not at the first Execute.
var CompilePerl func(pattern string, caseInsensitive bool) (PerlProgram, error) = compilePerlUnavailable

// PerlUnavailableError reports that the module was built without the PCRE
// binding (spec.md §6).
type PerlUnavailableError struct{}

func (e *PerlUnavailableError) Error() string {
	return "perl engine unavailable: built without cgo"
}

func compilePerlUnavailable(pattern string, caseInsensitive bool) (PerlProgram, error) {
	return nil, &PerlUnavailableError{}
}
