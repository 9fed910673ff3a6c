package webmencoder

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/msuleman526/tripshow/pkg/adapters/ffmpegpath"
	"github.com/msuleman526/tripshow/pkg/ports"
)

func requireFFmpeg(t *testing.T) {
	t.Helper()
	if !ffmpegpath.IsAvailable() {
		t.Skip("ffmpeg not available")
	}
}

func testFrame(w, h int, shade uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{shade, shade, shade, 255})
		}
	}
	return img
}

func TestEncoder_ProducesWebM(t *testing.T) {
	requireFFmpeg(t)

	enc := New()
	if err := enc.Begin(64, 64, 10, ports.EncoderOptions{Quality: 40}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := enc.EncodeFrame(testFrame(64, 64, uint8(i*20)), i*100); err != nil {
			t.Fatalf("EncodeFrame failed: %v", err)
		}
	}
	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	// WebM is an EBML container.
	if !bytes.HasPrefix(data, []byte{0x1A, 0x45, 0xDF, 0xA3}) {
		t.Error("output does not start with an EBML header")
	}
}

func TestEncoder_BeginFailsOnMissingAudio(t *testing.T) {
	requireFFmpeg(t)

	enc := New()
	err := enc.Begin(64, 64, 10, ports.EncoderOptions{
		AudioPath: filepath.Join(t.TempDir(), "missing.mp3"),
	})
	if err == nil {
		t.Error("expected Begin to fail for missing audio file")
	}
}

func TestEncoder_NotInitialized(t *testing.T) {
	enc := New()
	if err := enc.EncodeFrame(testFrame(8, 8, 0), 0); err != ErrNotInitialized {
		t.Errorf("EncodeFrame error = %v, want ErrNotInitialized", err)
	}
	if _, err := enc.End(); err != ErrNotInitialized {
		t.Errorf("End error = %v, want ErrNotInitialized", err)
	}
}

func TestEncoder_EndRemovesTempOnFailure(t *testing.T) {
	requireFFmpeg(t)

	enc := New()
	if err := enc.Begin(64, 64, 10, ports.EncoderOptions{Quality: 40}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	temp := enc.tempPath
	enc.cmd.Process.Kill()

	if _, err := enc.End(); err == nil {
		t.Fatal("expected End to fail after the encoder died")
	}
	if _, err := os.Stat(temp); !os.IsNotExist(err) {
		t.Errorf("temp output %s was not removed", temp)
	}
}
