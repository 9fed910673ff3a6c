package mp4encoder

import "errors"

var (
	// ErrNotInitialized is returned when encoder methods are called
	// before Begin or after End.
	ErrNotInitialized = errors.New("mp4encoder: encoder not initialized")

	// ErrEncodingFailed is returned when streaming to or finalizing
	// ffmpeg fails.
	ErrEncodingFailed = errors.New("mp4encoder: encoding failed")

	// ErrNoFrames is returned when finalizing without any encoded
	// frames.
	ErrNoFrames = errors.New("mp4encoder: no frames to encode")

	// ErrAudioUnsupported is returned when an audio track is requested;
	// audio runs go through the WebM encoder.
	ErrAudioUnsupported = errors.New("mp4encoder: audio track not supported in mp4 output")
)
