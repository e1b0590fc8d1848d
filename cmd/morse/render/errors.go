package render

import (
	"errors"
	"fmt"
)

// ErrOutputUnavailable is returned when no audio output device can be used.
var ErrOutputUnavailable = errors.New("audio output unavailable")

// FileWriteError reports a failure to produce the WAV file at Path.
type FileWriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}
