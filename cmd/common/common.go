package common

import (
	"io"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"golang.org/x/term"
)

const defaultTermWidth = 120

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// SetupLogging installs a text slog handler on stderr. Debug records are only
// shown when verbose is set.
func SetupLogging(verbose bool) {
	slog.SetDefault(NewLogger(os.Stderr, verbose))
}

func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// TermWidth returns the width of the attached terminal, or a sane default
// when output is not a terminal.
func TermWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	if width, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultTermWidth
}
