package parser

import (
	"reflect"
	"testing"

	"gocode/internal/gast"
)

func TestNextLineDrainsAllLogicalLines(t *testing.T) {
	p := New("G90\nG01 X1 Y2\nM30", nil)

	var got []string
	for {
		line, ok := p.NextLine()
		if !ok {
			break
		}
		for _, code := range line.Commands() {
			got = append(got, string(code.Mnemonic))
		}
	}
	want := []string{"G", "G", "M"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("commands seen = %v, want %v", got, want)
	}
}

func TestNextLineOnEmptySourceYieldsNoLines(t *testing.T) {
	p := New("", nil)
	if _, ok := p.NextLine(); ok {
		t.Fatalf("NextLine() on empty source = true, want false")
	}
}

func TestNextLineReturnsIndependentSnapshots(t *testing.T) {
	p := New("G1\nG2", nil)

	first, ok := p.NextLine()
	if !ok {
		t.Fatalf("first NextLine() = false, want true")
	}
	second, ok := p.NextLine()
	if !ok {
		t.Fatalf("second NextLine() = false, want true")
	}
	if first.Commands()[0].Major == second.Commands()[0].Major {
		t.Fatalf("first and second snapshots unexpectedly equal: %+v, %+v", first, second)
	}
	// first must still read G1 even though the assembler has moved on to G2.
	if first.Commands()[0].Major != 1 {
		t.Fatalf("first snapshot's command = %+v, want Major 1 (retained after second NextLine call)", first.Commands()[0])
	}
}

func TestForEachCommandVisitsEveryCommandInOrder(t *testing.T) {
	p := New("G1 X1\nM6 T2\nG0", nil)

	var seen []gast.GCode
	p.ForEachCommand(func(line gast.Line, code gast.GCode) {
		seen = append(seen, code)
	})

	// T is a mnemonic, so "M6 T2" is two commands.
	if len(seen) != 4 {
		t.Fatalf("ForEachCommand visited %d commands, want 4", len(seen))
	}
	wantMnemonics := []byte{'G', 'M', 'T', 'G'}
	for i, code := range seen {
		if code.Mnemonic != wantMnemonics[i] {
			t.Errorf("command %d mnemonic = %c, want %c", i, code.Mnemonic, wantMnemonics[i])
		}
	}
}
