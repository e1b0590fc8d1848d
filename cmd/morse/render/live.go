package render

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gigurra/morse/cmd/morse/code"
	"github.com/gopxl/beep/v2"
)

// Sink is an audio output. Play must block until s has been fully played.
type Sink interface {
	Play(s beep.Streamer) error
	Close() error
}

// Live plays an instruction script through a Sink in real time.
type Live struct {
	sink  Sink
	cfg   Config
	sleep func(time.Duration)
	dot   *beep.Buffer
	dash  *beep.Buffer
}

func NewLive(sink Sink, cfg Config) (*Live, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dot, err := newToneBuffer(cfg.Frequency, cfg.SampleCount(code.Tone(code.Dot)))
	if err != nil {
		return nil, err
	}
	dash, err := newToneBuffer(cfg.Frequency, cfg.SampleCount(code.Tone(code.Dash)))
	if err != nil {
		return nil, err
	}
	return &Live{
		sink:  sink,
		cfg:   cfg,
		sleep: time.Sleep,
		dot:   dot,
		dash:  dash,
	}, nil
}

// Render plays seq in order and returns once the last instruction is done.
// Tones block until the sink has drained them; gaps block the caller for
// their duration without producing audio.
func (l *Live) Render(seq []code.Instruction) error {
	for i, ins := range seq {
		slog.Debug("live instruction", "index", i, "instruction", ins.String())

		if !ins.IsTone() {
			l.sleep(l.cfg.Duration(ins))
			continue
		}

		buf := l.dot
		if ins.Symbol == code.Dash {
			buf = l.dash
		}
		if err := l.sink.Play(buf.Streamer(0, buf.Len())); err != nil {
			return fmt.Errorf("failed to play %s at instruction %d: %w", ins, i, err)
		}
	}
	return nil
}
