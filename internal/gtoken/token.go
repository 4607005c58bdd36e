// Package gtoken holds the token and span types shared by the lexer,
// block assembler, and parser driver.
package gtoken

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	KindLetter Kind = iota
	KindNumber
	KindComment
	KindForwardSlash
	KindPercent
	KindNewline
	KindGarbage
)

// kindNames is indexed by Kind; String falls back to a numeric form for
// anything outside the table so a stray value never panics.
var kindNames = [...]string{
	KindLetter:       "Letter",
	KindNumber:       "Number",
	KindComment:      "Comment",
	KindForwardSlash: "ForwardSlash",
	KindPercent:      "Percent",
	KindNewline:      "Newline",
	KindGarbage:      "Garbage",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a half-open byte range in the source plus the 0-based logical
// line it falls on.
type Span struct {
	Start int
	End   int
	Line  int
}

// Contains reports whether s fully encloses other.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Token is the single concrete type emitted by the lexer for every Kind.
// Only the fields relevant to Kind are populated; the rest are zero.
//
//	KindLetter:   Letter, Text (single uppercased byte)
//	KindNumber:   Number, Text (original literal as scanned)
//	KindComment:  Text (contents, parens/semicolon stripped)
//	KindGarbage:  Text (the unrecognized run)
//	other kinds:  Span only
type Token struct {
	Kind   Kind
	Span   Span
	Text   string
	Letter byte
	Number float32
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %-10q  line %d [%d:%d)", t.Kind, t.Text, t.Span.Line, t.Span.Start, t.Span.End)
}
