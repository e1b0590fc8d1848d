package morse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/morse/code"
	"github.com/gigurra/morse/cmd/morse/render"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Exit codes, one per fatal error kind.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitArgParse          = 2
	ExitInvalidSymbol     = 3
	ExitOutputUnavailable = 4
	ExitFileWrite         = 5
)

type Params struct {
	Code       []string `pos:"true" optional:"true" help:"Morse code to render, letters separated by single spaces (e.g. \"... --- ...\"). Code starting with a dash works as is; a lone M is written -- --."`
	Frequency  float64  `short:"f" help:"Tone frequency in Hz." default:"440"`
	Unit       float64  `short:"u" help:"Dot duration in seconds." default:"0.3"`
	Outfile    string   `short:"o" optional:"true" help:"Write a mono 16-bit 44.1kHz WAV file instead of playing through the speaker."`
	Text       bool     `short:"t" help:"Treat the input as plain text and encode it to morse first." default:"false"`
	DryRun     bool     `short:"n" help:"Print the instruction sequence with timings instead of rendering it." default:"false"`
	PhaseReset bool     `help:"Restart every tone at phase zero in WAV output (may click between tones)." default:"false"`
	Debug      bool     `short:"d" help:"Enable debug logging." default:"false"`
}

// ArgParseError reports unusable command line input.
type ArgParseError struct {
	Msg string
}

func (e *ArgParseError) Error() string {
	return e.Msg
}

// openSink is swapped out in tests.
var openSink = render.OpenSpeaker

func Cmd() *cobra.Command {
	return newCmd(func(params *Params) {
		if err := Run(params, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "morse: %v\n", err)
			os.Exit(ExitCode(err))
		}
	})
}

func newCmd(run func(params *Params)) *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "morse [flags] <code>",
		Short: "Play Morse code as tones or render it to a WAV file",
		Long: `Play a Morse code string through the speaker, or write it to a WAV file with -o.

Letters are written with '.' and '-' and separated by single spaces.
A dot lasts one unit, a dash three. Symbols inside a letter are one unit apart
and letters three units apart. With -t the input is plain text and words are
seven units apart.

Code that starts with a dash is accepted as is (morse "- ..."). A lone "--"
ends the flags, so the letter M on its own is written morse -- --.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			common.SetupLogging(params.Debug)
			run(params)
		},
	}.ToCobra()
}

// valueFlags take the following argument as their value.
var valueFlags = map[string]bool{
	"-f": true, "--frequency": true,
	"-u": true, "--unit": true,
	"-o": true, "--outfile": true,
}

// NormalizeArgs moves the positional arguments behind a "--" terminator so
// that Morse code starting with a dash is not parsed as a flag. Flags keep
// their order, positionals keep theirs, and an existing "--" is honored.
// Shell completion requests are passed through untouched.
func NormalizeArgs(args []string) []string {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return args
	}
	flags := make([]string, 0, len(args)+1)
	var positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isDashCode(a) || !strings.HasPrefix(a, "-"):
			positional = append(positional, a)
		default:
			flags = append(flags, a)
			if valueFlags[a] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

// isDashCode reports whether a looks like Morse code rather than a flag.
func isDashCode(a string) bool {
	return strings.HasPrefix(a, "-") && strings.Trim(a, ".- ") == ""
}

// ExitCode maps an error returned by Run to the process exit code.
func ExitCode(err error) int {
	var argErr *ArgParseError
	var symErr *code.InvalidSymbolError
	var fileErr *render.FileWriteError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &argErr):
		return ExitArgParse
	case errors.As(err, &symErr):
		return ExitInvalidSymbol
	case errors.Is(err, render.ErrOutputUnavailable):
		return ExitOutputUnavailable
	case errors.As(err, &fileErr):
		return ExitFileWrite
	default:
		return ExitFailure
	}
}

func Run(params *Params, stdout io.Writer) error {
	if len(params.Code) == 0 {
		return &ArgParseError{Msg: "missing morse code argument"}
	}
	if len(params.Code) > 1 {
		slog.Warn("ignoring dangling arguments", "args", params.Code[1:])
	}
	input := params.Code[0]

	cfg := render.Config{
		Frequency:  params.Frequency,
		Unit:       params.Unit,
		PhaseReset: params.PhaseReset,
	}
	if err := cfg.Validate(); err != nil {
		return &ArgParseError{Msg: err.Error()}
	}

	seq, morse, err := parse(input, params.Text)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	slog.Debug("parsed input",
		"morse", morse,
		"text", code.Decode(morse),
		"instructions", len(seq),
		"duration", cfg.TotalDuration(seq),
	)
	if len(seq) == 0 {
		slog.Warn("input contains no morse symbols")
	}

	switch {
	case params.DryRun:
		printSequence(stdout, morse, seq, cfg)
		return nil
	case params.Outfile != "":
		if err := render.RenderFile(params.Outfile, seq, cfg); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		slog.Info("wrote wav file", "path", params.Outfile, "duration", cfg.TotalDuration(seq))
		return nil
	default:
		return playLive(seq, cfg)
	}
}

func parse(input string, text bool) ([]code.Instruction, string, error) {
	if !text {
		seq, err := code.Sequence(input)
		return seq, input, err
	}
	morse, err := code.Encode(input)
	if err != nil {
		return nil, "", err
	}
	seq, err := code.FromText(input)
	return seq, morse, err
}

func playLive(seq []code.Instruction, cfg render.Config) error {
	sink, err := openSink()
	if err != nil {
		return fmt.Errorf("open audio output: %w", err)
	}
	defer sink.Close()

	live, err := render.NewLive(sink, cfg)
	if err != nil {
		return &ArgParseError{Msg: err.Error()}
	}
	if err := live.Render(seq); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

func printSequence(w io.Writer, morse string, seq []code.Instruction, cfg render.Config) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(common.TermWidth())

	t.AppendHeader(table.Row{"#", "Instruction", "Units", "Duration", "Samples"})
	for i, ins := range seq {
		t.AppendRow(table.Row{i, ins.String(), ins.Units(), cfg.Duration(ins), cfg.SampleCount(ins)})
	}
	tones := lo.CountBy(seq, code.Instruction.IsTone)
	t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("%d tones, %d gaps", tones, len(seq)-tones),
		lo.SumBy(seq, code.Instruction.Units),
		cfg.TotalDuration(seq),
		cfg.TotalSamples(seq),
	})

	fmt.Fprintf(w, "Morse: %s\n", morse)
	fmt.Fprintf(w, "Text:  %s\n", strings.TrimSpace(code.Decode(morse)))
	t.Render()
}
