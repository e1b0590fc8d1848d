package code

import (
	"strings"
	"unicode/utf8"
)

const letterSeparator = " "

// Sequence converts a Morse string such as ".- -..." into its instruction
// script. Letters are separated by single spaces; symbols inside a letter are
// not separated. Any character other than '.', '-' or the separator fails the
// whole parse and no instructions are returned.
//
// Empty tokens (from repeated, leading or trailing spaces) are skipped, so a
// non-empty result always starts and ends with a tone.
func Sequence(s string) ([]Instruction, error) {
	var out []Instruction
	pos := 0
	for _, letter := range strings.Split(s, letterSeparator) {
		start := pos
		pos += utf8.RuneCountInString(letter) + 1
		if letter == "" {
			continue
		}

		if len(out) > 0 {
			out = append(out, LetterGap)
		}

		i := 0
		for _, r := range letter {
			sym, err := ParseSymbol(r)
			if err != nil {
				return nil, &InvalidSymbolError{Char: r, Pos: start + i}
			}
			if i > 0 {
				out = append(out, SymbolGap)
			}
			out = append(out, Tone(sym))
			i++
		}
	}
	return out, nil
}
