// Package parser is the public entry point for this module: it wires a
// Lexer and a block Assembler together behind a small pull API.
//
// Parsing is diagnostic-rich but non-fatal. A malformed fragment —
// an unrecognized byte run, a mangled numeric literal, a buffer
// overflow, an orphan argument — is reported through the Observer
// supplied at construction and then discarded; it never aborts the
// parse. A caller who installs no Observer gets a best-effort parse:
// well-formed portions yield well-formed Lines, malformed portions
// silently vanish. The eight event kinds a caller can observe are
// listed on the diagnostics.Observer interface.
package parser

import (
	"gocode/blockassembler"
	"gocode/diagnostics"
	"gocode/internal/gast"
	"gocode/lexer"
)

// Parser drives the lexer/assembler pipeline over a borrowed source
// string. It owns one reusable Line buffer, cleared on every NextLine
// call; values NextLine returns are snapshots copied out of that buffer,
// so a caller may retain one across further NextLine calls without it
// being overwritten.
//
// src is a string rather than a []byte so the lexer can slice Token.Text
// values out of it with zero allocation; a caller holding a []byte (for
// instance from os.ReadFile) converts it once at this boundary, not once
// per token the way an internal []byte-to-string conversion on every
// scan would.
//
// Construction cannot fail: an "invalid input pointer/length" error
// belongs to a C-ABI surface an FFI wrapper would own, not this
// package — a Go string (possibly empty) is always a valid, if
// trivial, source to scan, and yields zero lines.
type Parser struct {
	assembler *blockassembler.Assembler
	line      gast.Line
}

// New constructs a Parser over src. A nil observer is treated as a
// no-op observer.
func New(src string, observer diagnostics.Observer) *Parser {
	lx := lexer.New(src, observer)
	return &Parser{assembler: blockassembler.New(lx, observer)}
}

// NextLine returns the next logical line and true, or a zero Line and
// false once the input is exhausted.
func (p *Parser) NextLine() (gast.Line, bool) {
	if !p.assembler.NextLine(&p.line) {
		return gast.Line{}, false
	}
	return p.line, true
}

// ForEachCommand walks every remaining line, calling f once per command
// in source order. It is a convenience wrapper around NextLine for
// callers that don't need per-line structure (comments, line numbers,
// block-delete) and just want the command stream.
func (p *Parser) ForEachCommand(f func(line gast.Line, code gast.GCode)) {
	for {
		line, ok := p.NextLine()
		if !ok {
			return
		}
		for _, code := range line.Commands() {
			f(line, code)
		}
	}
}
