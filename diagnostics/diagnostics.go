// Package diagnostics defines the non-fatal event surface the lexer and
// block assembler report through. No diagnostic ever aborts a parse; see
// the parser package's doc comment for the propagation policy.
package diagnostics

import (
	"gocode/internal/gast"
	"gocode/internal/gtoken"
)

// Observer receives one call per malformed fragment encountered while
// scanning or assembling. Every method takes the smallest payload needed
// to describe the fragment plus the Span it covers.
//
// The string arguments are substrings of the source text handed to the
// lexer and share its backing storage; retaining one keeps that whole
// source alive.
type Observer interface {
	// UnknownContent fires whenever the lexer cannot classify a byte run:
	// a genuine Garbage token, a lone '-' or '.', an unterminated
	// parenthesised comment, or a numeric literal clamped for overflow.
	UnknownContent(text string, span gtoken.Span)

	// GCodeBufferOverflowed fires when a Line's command buffer is full and
	// a further command (mnemonic + its arguments so far) is discarded.
	GCodeBufferOverflowed(mnemonic byte, major uint32, span gtoken.Span)

	// GCodeArgumentBufferOverflowed fires when a command's argument buffer
	// is full and a further argument word is discarded.
	GCodeArgumentBufferOverflowed(mnemonic byte, major uint32, arg gast.Word)

	// CommentBufferOverflow fires when a Line's comment buffer is full and
	// a further comment is discarded.
	CommentBufferOverflow(text string, span gtoken.Span)

	// UnexpectedLineNumber fires when an N word appears anywhere but the
	// start of a line; the word is discarded.
	UnexpectedLineNumber(n uint32, span gtoken.Span)

	// ArgumentWithoutACommand fires when a non-mnemonic letter word
	// appears before any command has opened on the line.
	ArgumentWithoutACommand(letter byte, value float32, span gtoken.Span)

	// NumberWithoutALetter fires on a bare numeric literal with no
	// preceding letter.
	NumberWithoutALetter(text string, span gtoken.Span)

	// LetterWithoutANumber fires on a letter with no following number
	// before the next terminator.
	LetterWithoutANumber(text string, span gtoken.Span)
}

// NoopObserver implements Observer with methods that do nothing. Embed it
// in a caller's type to pick up only the events that type cares about.
type NoopObserver struct{}

func (NoopObserver) UnknownContent(string, gtoken.Span)                      {}
func (NoopObserver) GCodeBufferOverflowed(byte, uint32, gtoken.Span)         {}
func (NoopObserver) GCodeArgumentBufferOverflowed(byte, uint32, gast.Word)   {}
func (NoopObserver) CommentBufferOverflow(string, gtoken.Span)               {}
func (NoopObserver) UnexpectedLineNumber(uint32, gtoken.Span)                {}
func (NoopObserver) ArgumentWithoutACommand(byte, float32, gtoken.Span)      {}
func (NoopObserver) NumberWithoutALetter(string, gtoken.Span)                {}
func (NoopObserver) LetterWithoutANumber(string, gtoken.Span)                {}

var _ Observer = NoopObserver{}
