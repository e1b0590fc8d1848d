// Package code turns Morse text into an ordered script of tone and gap
// instructions.
package code

import "fmt"

// Symbol is a single Morse code point.
type Symbol uint8

const (
	Dot Symbol = iota + 1
	Dash
)

// Units is the tone length of the symbol in dot units.
func (s Symbol) Units() int {
	if s == Dash {
		return 3
	}
	return 1
}

func (s Symbol) Rune() rune {
	if s == Dash {
		return '-'
	}
	return '.'
}

func (s Symbol) String() string {
	switch s {
	case Dot:
		return "Dot"
	case Dash:
		return "Dash"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// InvalidSymbolError reports a character that is not part of the accepted
// alphabet. Pos is the rune offset in the input, or -1 when unknown.
type InvalidSymbolError struct {
	Char rune
	Pos  int
}

func (e *InvalidSymbolError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("invalid symbol %q", e.Char)
	}
	return fmt.Sprintf("invalid symbol %q at position %d", e.Char, e.Pos)
}

// ParseSymbol maps '.' to Dot and '-' to Dash.
func ParseSymbol(r rune) (Symbol, error) {
	switch r {
	case '.':
		return Dot, nil
	case '-':
		return Dash, nil
	default:
		return 0, &InvalidSymbolError{Char: r, Pos: -1}
	}
}
