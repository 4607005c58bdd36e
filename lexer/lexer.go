// Package lexer turns G-code source text into a lazy, restartable
// sequence of tokens. See gtoken for the token shape and diagnostics for
// the events it can report.
//
// The lexer never fails: an unrecognized byte run becomes a Garbage
// token rather than an error, per the non-fatal design spelled out in
// the parser package's doc comment.
package lexer

import (
	"gocode/diagnostics"
	"gocode/internal/gtoken"
	"strconv"
)

// letterText holds a precomputed single-character string for every
// uppercase letter, so turning a Letter token's byte into its Text field
// never allocates: Go string slicing shares the backing array of an
// existing string, but a byte-to-string conversion always allocates a
// fresh one-byte string, which would sit on the hot path of every word
// this lexer scans.
var letterText = func() [26]string {
	var t [26]string
	for i := range t {
		t[i] = string(rune('A' + i))
	}
	return t
}()

// Lexer scans src one token at a time. It holds no heap-allocated state
// beyond the one-token lookahead buffer. src is a Go string, not a
// []byte: every Token.Text this package produces is a substring of src
// (s[start:end]), and substring slicing shares src's backing array
// rather than copying it, unlike a []byte-to-string conversion, which
// always allocates. This is what keeps scanning allocation-free.
type Lexer struct {
	src      string
	pos      int
	line     int
	observer diagnostics.Observer

	lookahead    gtoken.Token
	hasLookahead bool
}

// New returns a Lexer over src. A nil observer is replaced with a no-op.
func New(src string, observer diagnostics.Observer) *Lexer {
	if observer == nil {
		observer = diagnostics.NoopObserver{}
	}
	return &Lexer{src: src, observer: observer}
}

// peek returns the byte at the current position, or 0 past the end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the byte one position ahead of the current position.
func (l *Lexer) peek2() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	b := l.src[l.pos]
	l.pos++
	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// skipSpace consumes spaces, tabs, and lone carriage returns. A '\r'
// immediately followed by '\n' is left for the newline rule below so the
// pair collapses into a single Newline token.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		b := l.peek()
		if b == '\r' && l.peek2() == '\n' {
			break
		}
		if isSpace(b) {
			l.advance()
			continue
		}
		break
	}
}

// Peek returns the next token without advancing the lexer.
func (l *Lexer) Peek() (gtoken.Token, bool) {
	if !l.hasLookahead {
		tok, ok := l.scan()
		if !ok {
			return gtoken.Token{}, false
		}
		l.lookahead = tok
		l.hasLookahead = true
	}
	return l.lookahead, true
}

// Next returns the next token, advancing past it.
func (l *Lexer) Next() (gtoken.Token, bool) {
	if l.hasLookahead {
		l.hasLookahead = false
		return l.lookahead, true
	}
	return l.scan()
}

// scan performs the actual recognition described in spec §4.1, rules in
// first-match-wins order.
func (l *Lexer) scan() (gtoken.Token, bool) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return gtoken.Token{}, false
	}

	start := l.pos
	line := l.line
	b := l.peek()

	switch {
	case b == '\r' && l.peek2() == '\n':
		l.advance()
		l.advance()
		l.line++
		return gtoken.Token{Kind: gtoken.KindNewline, Span: gtoken.Span{Start: start, End: l.pos, Line: line}}, true
	case b == '\n':
		l.advance()
		l.line++
		return gtoken.Token{Kind: gtoken.KindNewline, Span: gtoken.Span{Start: start, End: l.pos, Line: line}}, true
	case b == '(':
		return l.scanParenComment(start, line), true
	case b == ';':
		return l.scanSemicolonComment(start, line), true
	case b == '%':
		l.advance()
		return gtoken.Token{Kind: gtoken.KindPercent, Span: gtoken.Span{Start: start, End: l.pos, Line: line}}, true
	case b == '/':
		l.advance()
		return gtoken.Token{Kind: gtoken.KindForwardSlash, Span: gtoken.Span{Start: start, End: l.pos, Line: line}}, true
	case isAlpha(b):
		l.advance()
		up := upper(b)
		return gtoken.Token{
			Kind:   gtoken.KindLetter,
			Span:   gtoken.Span{Start: start, End: l.pos, Line: line},
			Letter: up,
			Text:   letterText[up-'A'],
		}, true
	case b == '-' || b == '.' || isDigit(b):
		return l.scanNumberOrGarbage(start, line), true
	default:
		return l.scanGarbage(start, line), true
	}
}

// scanParenComment handles "(...)" per spec §4.1 rule 3: nesting is not
// supported, the first ')' ends the comment, and running off the end of
// the line or input without a ')' still yields a Comment token covering
// everything consumed, plus an UnknownContent diagnostic.
func (l *Lexer) scanParenComment(start, line int) gtoken.Token {
	l.advance() // consume '('
	contentStart := l.pos
	for l.pos < len(l.src) {
		b := l.peek()
		if b == ')' {
			text := l.src[contentStart:l.pos]
			l.advance() // consume ')'
			return gtoken.Token{Kind: gtoken.KindComment, Span: gtoken.Span{Start: start, End: l.pos, Line: line}, Text: text}
		}
		if b == '\n' {
			break
		}
		l.advance()
	}
	text := l.src[contentStart:l.pos]
	span := gtoken.Span{Start: start, End: l.pos, Line: line}
	l.observer.UnknownContent(l.src[start:l.pos], span)
	return gtoken.Token{Kind: gtoken.KindComment, Span: span, Text: text}
}

// scanSemicolonComment handles ";..." per spec §4.1 rule 4: runs to but
// not including the next newline or EOF.
func (l *Lexer) scanSemicolonComment(start, line int) gtoken.Token {
	l.advance() // consume ';'
	contentStart := l.pos
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
	span := gtoken.Span{Start: start, End: l.pos, Line: line}
	return gtoken.Token{Kind: gtoken.KindComment, Span: span, Text: l.src[contentStart:l.pos]}
}

// scanNumberOrGarbage handles spec §4.1 rule 8: an optional '-', digits
// with at most one '.', at least one digit required. Digits may sit on
// either side of the '.', so ".5" and "5." are both numbers. A lone '-'
// or '.' becomes Garbage.
func (l *Lexer) scanNumberOrGarbage(start, line int) gtoken.Token {
	if l.peek() == '-' {
		l.advance()
	}
	digitsBefore := 0
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
		digitsBefore++
	}
	if l.pos < len(l.src) && l.peek() == '.' {
		l.advance()
	}
	digitsAfter := 0
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
		digitsAfter++
	}

	if digitsBefore+digitsAfter == 0 {
		text := l.src[start:l.pos]
		span := gtoken.Span{Start: start, End: l.pos, Line: line}
		l.observer.UnknownContent(text, span)
		return gtoken.Token{Kind: gtoken.KindGarbage, Span: span, Text: text}
	}

	text := l.src[start:l.pos]
	span := gtoken.Span{Start: start, End: l.pos, Line: line}
	value, err := strconv.ParseFloat(text, 32)
	if err != nil {
		// strconv reports ErrRange for magnitudes f32 can't hold; the
		// returned value is already the correctly-signed ±Inf we want.
		l.observer.UnknownContent(text, span)
	}
	return gtoken.Token{Kind: gtoken.KindNumber, Span: span, Text: text, Number: float32(value)}
}

// scanGarbage collects a maximal run of bytes that match none of the
// other rules, per spec §4.1 rule 9.
func (l *Lexer) scanGarbage(start, line int) gtoken.Token {
	for l.pos < len(l.src) {
		b := l.peek()
		if isSpace(b) || b == '\n' || b == '(' || b == ';' || b == '%' || b == '/' || isAlpha(b) || isDigit(b) || b == '-' || b == '.' {
			break
		}
		if b == '\r' && l.peek2() == '\n' {
			break
		}
		l.advance()
	}
	text := l.src[start:l.pos]
	span := gtoken.Span{Start: start, End: l.pos, Line: line}
	l.observer.UnknownContent(text, span)
	return gtoken.Token{Kind: gtoken.KindGarbage, Span: span, Text: text}
}
