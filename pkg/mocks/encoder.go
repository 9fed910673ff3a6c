package mocks

import (
	"image"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// MockVideoEncoder is a VideoEncoder that records the frames it is
// given and returns a fixed payload from End.
type MockVideoEncoder struct {
	BeginFunc       func(width, height int, fps float64, opts ports.EncoderOptions) error
	EncodeFrameFunc func(img image.Image, timestampMs int) error
	EndFunc         func() ([]byte, error)

	BeginCalls   int
	Opts         ports.EncoderOptions
	Width        int
	Height       int
	FPS          float64
	TimestampsMs []int
	FrameCount   int
	Ended        bool
}

func (e *MockVideoEncoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.BeginCalls++
	e.Width, e.Height, e.FPS, e.Opts = width, height, fps, opts
	if e.BeginFunc != nil {
		return e.BeginFunc(width, height, fps, opts)
	}
	return nil
}

func (e *MockVideoEncoder) EncodeFrame(img image.Image, timestampMs int) error {
	e.FrameCount++
	e.TimestampsMs = append(e.TimestampsMs, timestampMs)
	if e.EncodeFrameFunc != nil {
		return e.EncodeFrameFunc(img, timestampMs)
	}
	return nil
}

func (e *MockVideoEncoder) End() ([]byte, error) {
	e.Ended = true
	if e.EndFunc != nil {
		return e.EndFunc()
	}
	return []byte("video"), nil
}

var _ ports.VideoEncoder = (*MockVideoEncoder)(nil)
