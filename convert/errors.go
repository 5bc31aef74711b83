package convert

import (
	"fmt"

	"github.com/fpgatools/go-telescan/telescan"
)

// IncompleteCaptureError indicates that strict mode is enabled and the
// capture does not cover the full configuration space.
type IncompleteCaptureError struct {
	// Got is the capture size in bytes
	Got int
}

func (e *IncompleteCaptureError) Error() string {
	return fmt.Sprintf("incomplete capture: got %d bytes, expected %d",
		e.Got, telescan.ConfigSpaceSize)
}

// WriteError indicates that the output file could not be written.
type WriteError struct {
	// Path is the destination that failed
	Path string

	// Err is the underlying error
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
