// Package render turns an instruction script into sound, either live through
// an audio sink or offline as a WAV file.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gigurra/morse/cmd/morse/code"
	"github.com/samber/lo"
)

// SampleRate is used for both live playback and WAV output.
const SampleRate = 44100

const (
	DefaultFrequency = 440.0
	DefaultUnit      = 0.3
)

// Config holds the tone parameters shared by both renderers.
type Config struct {
	// Frequency of the tone in Hz.
	Frequency float64
	// Unit is the dot duration in seconds. Every other duration is a multiple of it.
	Unit float64
	// PhaseReset restarts each tone at phase zero in WAV output instead of
	// continuing the running phase of the previous tone.
	PhaseReset bool
}

func DefaultConfig() Config {
	return Config{
		Frequency: DefaultFrequency,
		Unit:      DefaultUnit,
	}
}

func (c Config) Validate() error {
	nyquist := float64(SampleRate) / 2
	if math.IsNaN(c.Frequency) || c.Frequency <= 0 || c.Frequency >= nyquist {
		return fmt.Errorf("frequency must be between 0 and %v Hz, got %v", nyquist, c.Frequency)
	}
	if math.IsNaN(c.Unit) || math.IsInf(c.Unit, 0) || c.Unit <= 0 {
		return fmt.Errorf("unit must be a positive number of seconds, got %v", c.Unit)
	}
	return nil
}

// Seconds is the length of one instruction.
func (c Config) Seconds(ins code.Instruction) float64 {
	return float64(ins.Units()) * c.Unit
}

func (c Config) Duration(ins code.Instruction) time.Duration {
	return time.Duration(math.Round(c.Seconds(ins) * float64(time.Second)))
}

// SampleCount is the number of samples one instruction occupies. It is
// computed per instruction so rounding never accumulates over a script.
func (c Config) SampleCount(ins code.Instruction) int {
	return int(math.Round(SampleRate * c.Seconds(ins)))
}

func (c Config) TotalSamples(seq []code.Instruction) int {
	return lo.SumBy(seq, c.SampleCount)
}

func (c Config) TotalDuration(seq []code.Instruction) time.Duration {
	return lo.SumBy(seq, c.Duration)
}
