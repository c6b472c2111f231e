//go:build cgo

package exec

import (
	"github.com/elmeyer/go-pcre"

	"github.com/coregx/grepcore/pattern"
)

func init() {
	pattern.CompilePerl = compilePCRE
}

// pcreProgram adapts a compiled *pcre.Regexp to pattern.PerlProgram. Per
// spec.md §5, each Search call gets its own Matcher (re.Matcher below),
// rather than reusing one across calls — the "Perl path has single-instance
// state" pitfall DESIGN NOTES calls out is avoided by never sharing a
// Matcher's ovector scratch space across executions.
type pcreProgram struct {
	re *pcre.Regexp
}

func compilePCRE(expr string, caseInsensitive bool) (pattern.PerlProgram, error) {
	flags := pcre.MULTILINE
	if caseInsensitive {
		flags |= pcre.CASELESS
	}
	re, err := pcre.Compile(expr, flags)
	if err != nil {
		return nil, err
	}
	return &pcreProgram{re: re}, nil
}

// Search runs one pcre_exec call. A plain no-match is a normal return; any
// other engine error aborts the process (spec.md §4.6, §7 category 4) —
// memory exhaustion surfaces here as PCRE_ERROR_NOMEMORY via m.Err().
func (p *pcreProgram) Search(buf []byte) (int, int, bool) {
	m := p.re.Matcher(buf, 0)
	if !m.Matches() {
		if err := m.Err(); err != nil {
			panic(err)
		}
		return 0, 0, false
	}
	loc := m.Index()
	return loc[0], loc[1], true
}
