package code

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		input    rune
		expected Symbol
	}{
		{'.', Dot},
		{'-', Dash},
	}

	for _, tt := range tests {
		got, err := ParseSymbol(tt.input)
		if err != nil {
			t.Errorf("ParseSymbol(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseSymbol(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseSymbol_Invalid(t *testing.T) {
	for _, r := range []rune{'x', ' ', '_', '·', '/', '0'} {
		_, err := ParseSymbol(r)
		var ise *InvalidSymbolError
		if !errors.As(err, &ise) {
			t.Errorf("ParseSymbol(%q) should return InvalidSymbolError, got %v", r, err)
			continue
		}
		if ise.Char != r {
			t.Errorf("ParseSymbol(%q) error carries %q", r, ise.Char)
		}
	}
}

func TestSequence_TwoLetters(t *testing.T) {
	got, err := Sequence(".- -...")
	if err != nil {
		t.Fatalf("Sequence returned error: %v", err)
	}

	expected := []Instruction{
		Tone(Dot), SymbolGap, Tone(Dash),
		LetterGap,
		Tone(Dash), SymbolGap, Tone(Dot), SymbolGap, Tone(Dot), SymbolGap, Tone(Dot),
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestSequence_SingleSymbol(t *testing.T) {
	got, err := Sequence(".")
	if err != nil {
		t.Fatalf("Sequence returned error: %v", err)
	}
	if len(got) != 1 || got[0] != Tone(Dot) {
		t.Errorf("Expected exactly one Tone(Dot), got %v", got)
	}
}

func TestSequence_Empty(t *testing.T) {
	for _, input := range []string{"", " ", "   "} {
		got, err := Sequence(input)
		if err != nil {
			t.Errorf("Sequence(%q) returned error: %v", input, err)
			continue
		}
		if len(got) != 0 {
			t.Errorf("Sequence(%q) = %v, want empty", input, got)
		}
	}
}

func TestSequence_SkipsEmptyLetters(t *testing.T) {
	got, err := Sequence(" ..  - ")
	if err != nil {
		t.Fatalf("Sequence returned error: %v", err)
	}
	expected := []Instruction{Tone(Dot), SymbolGap, Tone(Dot), LetterGap, Tone(Dash)}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestSequence_CountLaw(t *testing.T) {
	tests := []string{
		".",
		"-",
		"... --- ...",
		".- -...",
		"-.-. --.- -.-. --.-",
		"..--.. .-.-.- -----",
	}

	for _, input := range tests {
		got, err := Sequence(input)
		if err != nil {
			t.Errorf("Sequence(%q) returned error: %v", input, err)
			continue
		}

		letters := strings.Split(input, " ")
		expected := len(letters) - 1
		for _, l := range letters {
			expected += 2*len(l) - 1
		}
		if len(got) != expected {
			t.Errorf("Sequence(%q) produced %d instructions, want %d", input, len(got), expected)
		}
		if !got[0].IsTone() || !got[len(got)-1].IsTone() {
			t.Errorf("Sequence(%q) must start and end with a tone, got %v", input, got)
		}
		for _, ins := range got {
			if ins.Kind == KindWordGap {
				t.Errorf("Sequence(%q) must not emit word gaps", input)
			}
		}
	}
}

func TestSequence_InvalidSymbol(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		pos   int
	}{
		{"x", 'x', 0},
		{".-x", 'x', 2},
		{"... --- ..,", ',', 10},
		{"..\t-", '\t', 2},
		{"ñ .", 'ñ', 0},
		{". ñ.", 'ñ', 2},
		{"... / ...", '/', 4},
	}

	for _, tt := range tests {
		got, err := Sequence(tt.input)
		if got != nil {
			t.Errorf("Sequence(%q) should not return instructions, got %v", tt.input, got)
		}
		var ise *InvalidSymbolError
		if !errors.As(err, &ise) {
			t.Errorf("Sequence(%q) should return InvalidSymbolError, got %v", tt.input, err)
			continue
		}
		if ise.Char != tt.char || ise.Pos != tt.pos {
			t.Errorf("Sequence(%q) error = %q at %d, want %q at %d", tt.input, ise.Char, ise.Pos, tt.char, tt.pos)
		}
	}
}

func TestInstruction_Units(t *testing.T) {
	tests := []struct {
		ins   Instruction
		units int
	}{
		{Tone(Dot), 1},
		{Tone(Dash), 3},
		{SymbolGap, 1},
		{LetterGap, 3},
		{WordGap, 7},
	}

	for _, tt := range tests {
		if got := tt.ins.Units(); got != tt.units {
			t.Errorf("%v.Units() = %d, want %d", tt.ins, got, tt.units)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	if s := Tone(Dash).String(); s != "Tone(Dash)" {
		t.Errorf("Expected Tone(Dash), got %q", s)
	}
	if s := LetterGap.String(); s != "LetterGap" {
		t.Errorf("Expected LetterGap, got %q", s)
	}
}
