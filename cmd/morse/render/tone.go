package render

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

const (
	liveVolume = 0.5
	minFadeLen = 10
)

var liveFormat = beep.Format{
	SampleRate:  SampleRate,
	NumChannels: 2,
	Precision:   2,
}

// newTone returns a sine tone of n samples that fades in and out linearly
// over 5% of its length at each end, so live playback does not click.
func newTone(frequency float64, n int) (beep.Streamer, error) {
	sine, err := generators.SineTone(liveFormat.SampleRate, frequency)
	if err != nil {
		return nil, err
	}
	fadeLen := min(max(n/20, minFadeLen), n/2)
	tone := beep.Seq(
		effects.Transition(beep.Take(fadeLen, sine), fadeLen, 0, 1, effects.TransitionLinear),
		beep.Take(n-2*fadeLen, sine),
		effects.Transition(beep.Take(fadeLen, sine), fadeLen, 1, 0, effects.TransitionLinear),
	)
	return &effects.Gain{Streamer: tone, Gain: liveVolume - 1}, nil
}

// newToneBuffer renders a tone once so it can be replayed for every
// occurrence of the symbol.
func newToneBuffer(frequency float64, n int) (*beep.Buffer, error) {
	tone, err := newTone(frequency, n)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(liveFormat)
	buf.Append(tone)
	return buf, nil
}
