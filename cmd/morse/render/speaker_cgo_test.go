//go:build (linux && cgo) || windows || darwin

package render

import (
	"reflect"
	"testing"
	"time"
)

func TestSpeakerSink_CloseDrainsBuffer(t *testing.T) {
	var events []string
	var slept time.Duration
	s := &speakerSink{
		sleep: func(d time.Duration) {
			slept += d
			events = append(events, "sleep")
		},
		close: func() { events = append(events, "close") },
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if want := []string{"sleep", "close"}; !reflect.DeepEqual(events, want) {
		t.Errorf("Expected %v, got %v", want, events)
	}
	if slept != speakerBuffer {
		t.Errorf("Expected to wait %v before closing, got %v", speakerBuffer, slept)
	}
}
