// Package blockassembler groups a lexer's token stream into logical
// lines: it recognizes line-number prefixes and block-delete marks,
// forms words from letter+number pairs, and groups words into commands.
// This is the state machine carrying most of this module's design
// decisions.
package blockassembler

import (
	"strings"

	"gocode/diagnostics"
	"gocode/internal/gast"
	"gocode/internal/gtoken"
	"gocode/lexer"
)

// state names the position within a logical line. BetweenCommands is
// folded into inCommand: once a command has opened, "a mnemonic word
// closes the current command and opens the next" is exactly InCommand's
// own transition, so the two states behave identically here.
type state int

const (
	stateLineStart state = iota
	stateAfterDelete
	stateAfterLineNumber
	stateInCommand
)

// Assembler consumes tokens from a Lexer and produces one Line per call
// to NextLine. It holds no per-line heap allocation: the in-progress
// command and line-start bookkeeping are plain fields reused across
// calls, mirroring the Lexer's own one-token lookahead buffer.
type Assembler struct {
	lex      *lexer.Lexer
	observer diagnostics.Observer

	state         state
	started       bool
	haveSpanStart bool
	spanStart     gtoken.Span
	lastEnd       int
	cur           gast.GCode
	curOpen       bool
}

// New returns an Assembler pulling tokens from lex. A nil observer is
// replaced with a no-op.
func New(lex *lexer.Lexer, observer diagnostics.Observer) *Assembler {
	if observer == nil {
		observer = diagnostics.NoopObserver{}
	}
	return &Assembler{lex: lex, observer: observer}
}

// NextLine fills out with the next logical line, reusing out's own
// fixed-size buffers, and reports whether a line was produced. It
// returns false once the input is exhausted.
func (a *Assembler) NextLine(out *gast.Line) bool {
	out.Reset()
	a.state = stateLineStart
	a.started = false
	a.haveSpanStart = false
	a.curOpen = false

	for {
		tok, ok := a.lex.Next()
		if !ok {
			return a.finish(out, a.lastEnd)
		}
		a.noteSpan(tok.Span)

		switch tok.Kind {
		case gtoken.KindNewline:
			if a.started {
				return a.finish(out, tok.Span.Start)
			}
			a.haveSpanStart = false
			a.state = stateLineStart
		case gtoken.KindPercent:
			if a.started {
				return a.finish(out, tok.Span.End)
			}
			a.haveSpanStart = false
		case gtoken.KindForwardSlash:
			if a.state == stateLineStart && !a.started {
				out.Deleted = true
				a.started = true
				a.state = stateAfterDelete
			}
			// A '/' anywhere else has no grammatical role; spec names
			// no diagnostic for it, so it is silently ignored.
		case gtoken.KindComment:
			a.started = true
			if out.PushComment(gast.Comment{Text: tok.Text, Span: tok.Span}) {
				a.observer.CommentBufferOverflow(tok.Text, tok.Span)
			}
		case gtoken.KindNumber:
			a.started = true
			a.observer.NumberWithoutALetter(tok.Text, tok.Span)
		case gtoken.KindGarbage:
			// Already reported by the lexer; a garbage run has no
			// grammatical role of its own.
		case gtoken.KindLetter:
			a.handleLetter(out, tok)
		}
	}
}

// noteSpan records the first token's span as the line's provisional
// start and tracks the running end, so EOF and the Percent/Newline
// terminators can all compute the same Span shape.
func (a *Assembler) noteSpan(span gtoken.Span) {
	if !a.haveSpanStart {
		a.spanStart = span
		a.haveSpanStart = true
	}
	a.lastEnd = span.End
}

// finish closes any open command, and — only if the line actually
// accumulated content — stamps out.Span and reports true.
func (a *Assembler) finish(out *gast.Line, end int) bool {
	a.closeCurrent(out)
	if !a.started {
		return false
	}
	out.Span = gtoken.Span{Start: a.spanStart.Start, End: end, Line: a.spanStart.Line}
	return true
}

// closeCurrent pushes the in-progress command, if any, into out.
func (a *Assembler) closeCurrent(out *gast.Line) {
	if !a.curOpen {
		return
	}
	if out.PushGCode(a.cur) {
		a.observer.GCodeBufferOverflowed(a.cur.Mnemonic, a.cur.Major, a.cur.Span)
	}
	a.curOpen = false
}

// handleLetter resolves one Letter token into a Word — reading past any
// intervening comments to find its Number — and dispatches on what kind
// of letter it is.
func (a *Assembler) handleLetter(out *gast.Line, letterTok gtoken.Token) {
	numTok, ok := a.readNumber(out)
	a.started = true
	if !ok {
		a.observer.LetterWithoutANumber(letterTok.Text, letterTok.Span)
		return
	}

	letter := letterTok.Letter
	wordSpan := gtoken.Span{Start: letterTok.Span.Start, End: numTok.Span.End, Line: letterTok.Span.Line}
	major, minor, negative := splitMajorMinor(numTok.Text)

	switch {
	case letter == 'N':
		// A line number is a plain unsigned integer; a negative literal
		// or one carrying a fractional part (N has no minor field to
		// hold it) is truncated to its non-negative integer value and
		// diagnosed.
		if negative || strings.ContainsRune(numTok.Text, '.') {
			a.observer.UnknownContent(numTok.Text, wordSpan)
		}
		// N is only a line-number prefix at the true start of a line,
		// before or after a block-delete mark but before any command.
		if a.state == stateLineStart || a.state == stateAfterDelete {
			out.LineNumber = major
			out.HasLineNumber = true
			a.state = stateAfterLineNumber
		} else {
			a.observer.UnexpectedLineNumber(major, wordSpan)
		}
	case gast.IsMnemonic(letter):
		if negative {
			// A command's major/minor are unsigned; the sign is
			// truncated away rather than silently absorbed.
			a.observer.UnknownContent(numTok.Text, wordSpan)
		}
		a.closeCurrent(out)
		a.cur = gast.GCode{Mnemonic: letter, Major: major, Minor: minor, Span: wordSpan}
		a.curOpen = true
		a.state = stateInCommand
	default:
		w := gast.Word{Letter: letter, Value: numTok.Number, Span: wordSpan}
		if !a.curOpen {
			a.observer.ArgumentWithoutACommand(letter, numTok.Number, wordSpan)
			return
		}
		if a.cur.Span.End < wordSpan.End {
			a.cur.Span.End = wordSpan.End
		}
		if _, overflowed := a.cur.PushArg(w); overflowed {
			a.observer.GCodeArgumentBufferOverflowed(a.cur.Mnemonic, a.cur.Major, w)
		}
	}
}

// readNumber looks for the Number token that completes the word begun
// by the letter just consumed. Comments encountered along the way are
// pushed onto out and do not reset the search: a comment between a
// letter and its number is allowed. Anything else is left unconsumed
// for the caller's main loop to handle as a terminator.
func (a *Assembler) readNumber(out *gast.Line) (gtoken.Token, bool) {
	for {
		tok, ok := a.lex.Peek()
		if !ok {
			return gtoken.Token{}, false
		}
		switch tok.Kind {
		case gtoken.KindComment:
			a.lex.Next()
			a.noteSpan(tok.Span)
			if out.PushComment(gast.Comment{Text: tok.Text, Span: tok.Span}) {
				a.observer.CommentBufferOverflow(tok.Text, tok.Span)
			}
		case gtoken.KindNumber:
			a.lex.Next()
			a.noteSpan(tok.Span)
			return tok, true
		default:
			return gtoken.Token{}, false
		}
	}
}
