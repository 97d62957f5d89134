package overlap

import "errors"

var (
	// ErrEvenWindow indicates a window size that is not a positive odd integer.
	ErrEvenWindow = errors.New("overlap: window size must be a positive odd integer")
	// ErrSampleTooSmall indicates a sample narrower or shorter than the window.
	ErrSampleTooSmall = errors.New("overlap: sample is smaller than the window")
)
