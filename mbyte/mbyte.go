// Package mbyte classifies the bytes of a buffer so the executor never lets
// a candidate region start or end in the middle of a multibyte character
// (spec.md §3, §4.7).
//
// GNU grep's check_multibyte_string builds exactly this kind of property
// array once per line and consults it before accepting a DFA or keyword-set
// hit. The property values mirror its three outcomes: 1 for a standalone
// single-byte character, N>1 for the first byte of an N-byte sequence (with
// the following N-1 bytes property 0), and 0 alone for a continuation byte
// or for the bytes of an incomplete sequence at the end of the buffer. An
// undecodable byte anywhere else gets 1, like a single-byte character.
package mbyte

import (
	"unicode/utf8"

	"golang.org/x/sys/cpu"
)

// asciiFast selects the 8-bytes-at-a-time form of the all-ASCII check below
// (isASCIIChunked); without it the check runs a byte at a time. Either way
// an all-ASCII buffer skips utf8.DecodeRune entirely. It isn't a real SIMD
// path — the pack's simd package keeps its vector kernels in .s files this
// module doesn't have — but it follows the same cpu.X86.Has*-gated dispatch
// shape as simd/memchr_amd64.go and simd/ascii_amd64.go.
var asciiFast = cpu.X86.HasSSE42 || cpu.X86.HasAVX2

// Properties is a per-byte classification of a buffer, indexed the same way
// as the buffer itself.
type Properties []byte

// Probe builds a Properties array for buf.
func Probe(buf []byte) Properties {
	props := make(Properties, len(buf))
	if isASCII(buf) {
		for i := range props {
			props[i] = 1
		}
		return props
	}

	for i := 0; i < len(buf); {
		b := buf[i]
		if b < utf8.RuneSelf {
			props[i] = 1
			i++
			continue
		}
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(buf[i:]) {
				// Incomplete sequence at the end of the buffer: none of its
				// bytes may start a character.
				for ; i < len(buf); i++ {
					props[i] = 0
				}
				break
			}
			// Undecodable byte: treated as a single-byte character, as GNU
			// grep does, so scanning always makes progress.
			props[i] = 1
			i++
			continue
		}
		props[i] = byte(size)
		for j := 1; j < size; j++ {
			props[i+j] = 0
		}
		i += size
	}
	return props
}

// isASCII reports whether buf contains no byte >= 0x80. When asciiFast is
// set the check still degrades gracefully (it's correctness-neutral either
// way); the flag exists so the decision follows the pack's CPU-feature
// dispatch convention rather than being unconditional.
func isASCII(buf []byte) bool {
	if asciiFast {
		return isASCIIChunked(buf)
	}
	for _, b := range buf {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isASCIIChunked checks 8 bytes at a time via a widened OR, the standard
// SWAR (SIMD-within-a-register) trick for the all-ASCII fast path: any byte
// with its high bit set makes the corresponding 0x80 bit of the mask
// nonzero.
func isASCIIChunked(buf []byte) bool {
	const mask = 0x8080808080808080
	i := 0
	for ; i+8 <= len(buf); i += 8 {
		word := uint64(buf[i]) | uint64(buf[i+1])<<8 | uint64(buf[i+2])<<16 | uint64(buf[i+3])<<24 |
			uint64(buf[i+4])<<32 | uint64(buf[i+5])<<40 | uint64(buf[i+6])<<48 | uint64(buf[i+7])<<56
		if word&mask != 0 {
			return false
		}
	}
	for ; i < len(buf); i++ {
		if buf[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// StartsChar reports whether offset begins a character: either a
// single-byte character or the first byte of a multibyte sequence. An
// offset equal to len(props) (the end of the buffer) always counts, since
// it is a valid boundary rather than a mid-character split.
func (p Properties) StartsChar(offset int) bool {
	if offset < 0 {
		return false
	}
	if offset == len(p) {
		return true
	}
	if offset > len(p) {
		return false
	}
	return p[offset] != 0
}

// EndsChar reports whether offset is immediately after a complete
// character — i.e. it would be valid to end a match there.
func (p Properties) EndsChar(offset int) bool {
	return p.StartsChar(offset)
}
