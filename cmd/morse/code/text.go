package code

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

const wordSeparator = " / "

var toMorse = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
}

var fromMorse = lo.Invert(toMorse)

// Encode converts plain text to a Morse string. Letters are separated by a
// space and words by " / ". Characters without a Morse representation fail
// the conversion.
func Encode(text string) (string, error) {
	words, err := encodeWords(text)
	if err != nil {
		return "", err
	}
	return strings.Join(lo.Map(words, func(letters []string, _ int) string {
		return strings.Join(letters, letterSeparator)
	}), wordSeparator), nil
}

// FromText converts plain text straight into an instruction script, with a
// WordGap between words.
func FromText(text string) ([]Instruction, error) {
	words, err := encodeWords(text)
	if err != nil {
		return nil, err
	}

	var out []Instruction
	for _, letters := range words {
		seq, err := Sequence(strings.Join(letters, letterSeparator))
		if err != nil {
			return nil, err
		}
		if len(out) > 0 {
			out = append(out, WordGap)
		}
		out = append(out, seq...)
	}
	return out, nil
}

// Decode converts a Morse string back to text for display. Unknown letters
// are shown as '?'.
func Decode(morse string) string {
	var result strings.Builder
	for i, word := range strings.Split(morse, wordSeparator) {
		if i > 0 {
			result.WriteRune(' ')
		}
		for _, letter := range strings.Fields(word) {
			if r, ok := fromMorse[letter]; ok {
				result.WriteRune(r)
			} else {
				result.WriteRune('?')
			}
		}
	}
	return result.String()
}

func encodeWords(text string) ([][]string, error) {
	var words [][]string
	var current []string
	pos := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			if len(current) > 0 {
				words = append(words, current)
				current = nil
			}
			pos++
			continue
		}
		c, ok := toMorse[unicode.ToUpper(r)]
		if !ok {
			return nil, &InvalidSymbolError{Char: r, Pos: pos}
		}
		current = append(current, c)
		pos++
	}
	if len(current) > 0 {
		words = append(words, current)
	}
	return words, nil
}
