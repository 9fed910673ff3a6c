package webmencoder

import "errors"

var (
	// ErrNotInitialized is returned when encoder methods are called
	// before Begin or after End.
	ErrNotInitialized = errors.New("webmencoder: encoder not initialized")

	// ErrEncodingFailed is returned when streaming to or finalizing
	// ffmpeg fails.
	ErrEncodingFailed = errors.New("webmencoder: encoding failed")
)
