//go:build !((linux && cgo) || windows || darwin)

package render

import "fmt"

// OpenSpeaker always fails here: audio output on this platform needs a cgo
// build.
func OpenSpeaker() (Sink, error) {
	return nil, fmt.Errorf("%w: this build has no audio backend (rebuild with CGO_ENABLED=1)", ErrOutputUnavailable)
}
