package code

import "fmt"

type Kind uint8

const (
	KindTone Kind = iota
	KindSymbolGap
	KindLetterGap
	KindWordGap
)

// Instruction is one step of a playback script. Symbol is only set for tones.
type Instruction struct {
	Kind   Kind
	Symbol Symbol
}

var (
	SymbolGap = Instruction{Kind: KindSymbolGap}
	LetterGap = Instruction{Kind: KindLetterGap}
	WordGap   = Instruction{Kind: KindWordGap}
)

func Tone(s Symbol) Instruction {
	return Instruction{Kind: KindTone, Symbol: s}
}

func (i Instruction) IsTone() bool {
	return i.Kind == KindTone
}

// Units is the length of the instruction in dot units.
func (i Instruction) Units() int {
	switch i.Kind {
	case KindTone:
		return i.Symbol.Units()
	case KindSymbolGap:
		return 1
	case KindLetterGap:
		return 3
	case KindWordGap:
		return 7
	default:
		return 0
	}
}

func (i Instruction) String() string {
	switch i.Kind {
	case KindTone:
		return fmt.Sprintf("Tone(%s)", i.Symbol)
	case KindSymbolGap:
		return "SymbolGap"
	case KindLetterGap:
		return "LetterGap"
	case KindWordGap:
		return "WordGap"
	default:
		return fmt.Sprintf("Instruction(%d)", uint8(i.Kind))
	}
}
