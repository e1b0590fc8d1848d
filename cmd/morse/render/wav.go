package render

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gigurra/morse/cmd/morse/code"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth      = 16
	numChannels   = 1
	pcmFormat     = 1
	maxAmplitude  = math.MaxInt16
	samplesPerBuf = 8192

	// riffOverhead is what the RIFF chunk size counts besides the sample data.
	riffOverhead = 36
)

// checkSize rejects scripts whose sample data would overflow the 32-bit WAV
// chunk sizes. Counts are summed as floats so a huge unit cannot wrap an int.
func checkSize(seq []code.Instruction, cfg Config) error {
	var samples float64
	for _, ins := range seq {
		samples += math.Round(SampleRate * cfg.Seconds(ins))
	}
	if samples*bitDepth/8+riffOverhead > math.MaxUint32 {
		return fmt.Errorf("%.0f samples (%.0fs) do not fit in a wav file", samples, samples/SampleRate)
	}
	return nil
}

// WriteWAV synthesizes seq as 16-bit mono PCM at SampleRate and writes it to w
// as a WAV stream. It returns the number of samples written.
func WriteWAV(w io.WriteSeeker, seq []code.Instruction, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if err := checkSize(seq, cfg); err != nil {
		return 0, err
	}

	enc := wav.NewEncoder(w, SampleRate, bitDepth, numChannels, pcmFormat)
	s := &pcmWriter{
		enc: enc,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: numChannels, SampleRate: SampleRate},
			SourceBitDepth: bitDepth,
			Data:           make([]int, 0, samplesPerBuf),
		},
		step: 2 * math.Pi * cfg.Frequency / SampleRate,
	}

	for _, ins := range seq {
		n := cfg.SampleCount(ins)
		var err error
		if ins.IsTone() {
			if cfg.PhaseReset {
				s.phase = 0
			}
			err = s.tone(n)
		} else {
			err = s.silence(n)
		}
		if err != nil {
			return s.written, err
		}
	}

	if err := s.flush(); err != nil {
		return s.written, err
	}
	if err := enc.Close(); err != nil {
		return s.written, fmt.Errorf("failed to finalize wav header: %w", err)
	}
	return s.written, nil
}

// pcmWriter batches samples into fixed size buffers for the encoder. phase is
// a running tone-sample index, so consecutive tones continue the same sine.
type pcmWriter struct {
	enc     *wav.Encoder
	buf     *audio.IntBuffer
	step    float64
	phase   int
	written int
}

func (p *pcmWriter) tone(n int) error {
	for i := 0; i < n; i++ {
		v := int(math.Round(maxAmplitude * math.Sin(p.step*float64(p.phase))))
		p.phase++
		if err := p.push(v); err != nil {
			return err
		}
	}
	return nil
}

func (p *pcmWriter) silence(n int) error {
	for i := 0; i < n; i++ {
		if err := p.push(0); err != nil {
			return err
		}
	}
	return nil
}

func (p *pcmWriter) push(v int) error {
	p.buf.Data = append(p.buf.Data, v)
	if len(p.buf.Data) == cap(p.buf.Data) {
		return p.flush()
	}
	return nil
}

// flush is also the call that makes the encoder emit its headers, so it must
// run at least once even for an empty script.
func (p *pcmWriter) flush() error {
	if err := p.enc.Write(p.buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	p.written += len(p.buf.Data)
	p.buf.Data = p.buf.Data[:0]
	return nil
}

// RenderFile writes seq as a WAV file at path. The file is built next to the
// destination under a temporary name and renamed into place only when
// complete, so a failed render never leaves a partial file at path.
func RenderFile(path string, seq []code.Instruction, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkSize(seq, cfg); err != nil {
		return &FileWriteError{Path: path, Op: "write", Err: err}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &FileWriteError{Path: path, Op: "create", Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(0o644); err != nil {
		return &FileWriteError{Path: path, Op: "chmod", Err: err}
	}

	n, err := WriteWAV(tmp, seq, cfg)
	if err != nil {
		return &FileWriteError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &FileWriteError{Path: path, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &FileWriteError{Path: path, Op: "close", Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		committed = true
		return &FileWriteError{Path: path, Op: "rename", Err: err}
	}
	committed = true

	slog.Debug("wrote wav file", "path", path, "samples", n, "seconds", float64(n)/SampleRate)
	return nil
}
