//go:build (linux && cgo) || windows || darwin

package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// speakerBuffer is the mixer buffer length handed to speaker.Init. A tone's
// callback fires once the mixer has pulled its last samples, which can still
// be up to one buffer away from reaching the device.
const speakerBuffer = time.Second / 10

var speakerInit struct {
	once sync.Once
	err  error
}

type speakerSink struct {
	sleep func(time.Duration)
	close func()
}

// OpenSpeaker opens the default audio output device.
func OpenSpeaker() (Sink, error) {
	speakerInit.once.Do(func() {
		speakerInit.err = speaker.Init(liveFormat.SampleRate, liveFormat.SampleRate.N(speakerBuffer))
	})
	if speakerInit.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputUnavailable, speakerInit.err)
	}
	return &speakerSink{sleep: time.Sleep, close: speaker.Close}, nil
}

func (*speakerSink) Play(s beep.Streamer) error {
	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	return s.Err()
}

// Close lets the last mixed buffer reach the device before shutting it down.
func (s *speakerSink) Close() error {
	s.sleep(speakerBuffer)
	s.close()
	return nil
}
