package exec

import "github.com/coregx/grepcore/pattern"

// Perl runs the single-call Perl executor (spec.md §4.6): one call to
// set.Perl (already configured with multi-line mode and case-insensitivity
// as appropriate by whichever PerlProgram constructor pattern.Compile used),
// then expansion to the enclosing line unless exact mode is requested.
func Perl(set *pattern.Set, buf []byte, exact bool) (offset, length int, ok bool) {
	start, end, matched := set.Perl.Search(buf)
	if !matched {
		return 0, 0, false
	}
	if exact {
		return start, end - start, true
	}
	lineBeg := lineStart(buf, start, set.Flags.LineTerminator)
	lineEndPos := lineEnd(buf, end, set.Flags.LineTerminator)
	return lineBeg, lineEndPos - lineBeg, true
}
