//go:build !cgo

package exec

// Without cgo, github.com/elmeyer/go-pcre cannot be linked, so
// pattern.CompilePerl keeps its default (always-fails) implementation and
// compiling under the perl dialect surfaces pattern.PerlUnavailableError at
// Compile time.
