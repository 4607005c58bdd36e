// Command gcodedump reads a G-code file and prints every command and
// diagnostic it contains. It exists to exercise the parser end to end;
// it is not the focus of this module and intentionally does nothing
// more than a thin demo needs to (no flags package; it reads os.Args
// directly).
package main

import (
	"fmt"
	"log"
	"os"

	"gocode/diagnostics"
	"gocode/internal/gast"
	"gocode/internal/gtoken"
	"gocode/parser"
)

// printingObserver prints every diagnostic as it fires, prefixed with
// its source span, and counts how many fired.
type printingObserver struct {
	count int
}

func (o *printingObserver) report(kind string, span gtoken.Span, detail string) {
	o.count++
	fmt.Printf("line %d [%d:%d) %s: %s\n", span.Line, span.Start, span.End, kind, detail)
}

func (o *printingObserver) UnknownContent(text string, span gtoken.Span) {
	o.report("unknown-content", span, text)
}

func (o *printingObserver) GCodeBufferOverflowed(mnemonic byte, major uint32, span gtoken.Span) {
	o.report("gcode-buffer-overflow", span, fmt.Sprintf("%c%d", mnemonic, major))
}

func (o *printingObserver) GCodeArgumentBufferOverflowed(mnemonic byte, major uint32, arg gast.Word) {
	o.report("argument-buffer-overflow", arg.Span, fmt.Sprintf("%c%d %c%g", mnemonic, major, arg.Letter, arg.Value))
}

func (o *printingObserver) CommentBufferOverflow(text string, span gtoken.Span) {
	o.report("comment-buffer-overflow", span, text)
}

func (o *printingObserver) UnexpectedLineNumber(n uint32, span gtoken.Span) {
	o.report("unexpected-line-number", span, fmt.Sprintf("N%d", n))
}

func (o *printingObserver) ArgumentWithoutACommand(letter byte, value float32, span gtoken.Span) {
	o.report("argument-without-a-command", span, fmt.Sprintf("%c%g", letter, value))
}

func (o *printingObserver) NumberWithoutALetter(text string, span gtoken.Span) {
	o.report("number-without-a-letter", span, text)
}

func (o *printingObserver) LetterWithoutANumber(text string, span gtoken.Span) {
	o.report("letter-without-a-number", span, text)
}

var _ diagnostics.Observer = (*printingObserver)(nil)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: gcodedump <file.nc>")
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read source file: %v", err)
	}

	obs := &printingObserver{}
	p := parser.New(string(src), obs)

	lineNo := 0
	for {
		line, ok := p.NextLine()
		if !ok {
			break
		}
		lineNo++
		printLine(line)
	}

	fmt.Printf("%d logical lines, %d diagnostics\n", lineNo, obs.count)
}

func printLine(line gast.Line) {
	prefix := ""
	if line.Deleted {
		prefix += "/"
	}
	if line.HasLineNumber {
		prefix += fmt.Sprintf("N%d ", line.LineNumber)
	}
	fmt.Printf("%sline %d:", prefix, line.Span.Line)
	for _, code := range line.Commands() {
		fmt.Printf(" %c%d", code.Mnemonic, code.Major)
		if code.Minor != 0 {
			fmt.Printf(".%d", code.Minor)
		}
		for _, arg := range code.Arguments[:code.ArgCount] {
			fmt.Printf(" %c%g", arg.Letter, arg.Value)
		}
	}
	for _, c := range line.CommentList() {
		fmt.Printf(" (%s)", c.Text)
	}
	fmt.Println()
}
