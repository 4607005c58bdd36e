package blockassembler

import (
	"strconv"
	"strings"
)

// splitMajorMinor decodes the source literal of a command's numeric
// token into (major, minor) per spec: the integer part before the '.'
// becomes major (sign truncated away); the digit run after the '.' is
// read as a plain decimal integer with leading zeros ignored, not a
// fractional value times ten — so "G38.2" is major=38, minor=2 and
// "G1.02" is major=1, minor=2. Absence of a '.' yields minor=0.
//
// negative reports whether the literal carried a leading '-'. Line
// numbers and major/minor are unsigned, so a negative literal is a
// truncation the caller must diagnose; it is reported here rather than
// silently absorbed, so every call site — the mnemonic word and the N
// line-number word alike — gets the same signal.
func splitMajorMinor(text string) (major, minor uint32, negative bool) {
	s, negative := strings.CutPrefix(text, "-")

	whole, frac, hasDot := strings.Cut(s, ".")
	major = parseDigits(whole)
	if !hasDot {
		return major, 0, negative
	}
	frac = strings.TrimLeft(frac, "0")
	return major, parseDigits(frac), negative
}

// parseDigits parses a run of decimal digits, treating an empty or
// non-numeric string as zero. It never fails: by construction the lexer
// only ever hands this function substrings of a token that already
// matched the number grammar.
func parseDigits(s string) uint32 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}
