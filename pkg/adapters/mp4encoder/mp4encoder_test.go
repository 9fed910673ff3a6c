package mp4encoder

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/msuleman526/tripshow/pkg/adapters/ffmpegpath"
	"github.com/msuleman526/tripshow/pkg/ports"
)

func testFrame(w, h int, shade uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{shade, shade, shade, 255})
		}
	}
	return img
}

func TestSplitAnnexB(t *testing.T) {
	stream := []byte{
		0, 0, 0, 1, 0x67, 0xAA, // SPS (4-byte start code)
		0, 0, 1, 0x68, 0xBB, // PPS (3-byte start code)
		0, 0, 1, 0x65, 0xCC, 0xDD, // IDR slice
	}
	nalus := splitAnnexB(stream)
	if len(nalus) != 3 {
		t.Fatalf("len(nalus) = %d, want 3", len(nalus))
	}
	if nalus[0][0]&0x1F != naluTypeSPS {
		t.Errorf("first NAL type = %d, want SPS", nalus[0][0]&0x1F)
	}
	if nalus[2][0]&0x1F != naluTypeIDR {
		t.Errorf("last NAL type = %d, want IDR", nalus[2][0]&0x1F)
	}
}

func TestSplitAccessUnits(t *testing.T) {
	stream := []byte{
		0, 0, 0, 1, 0x09, 0xF0, // AUD
		0, 0, 1, 0x67, 0xAA, // SPS
		0, 0, 1, 0x68, 0xBB, // PPS
		0, 0, 1, 0x65, 0xCC, // IDR
		0, 0, 0, 1, 0x09, 0xF0, // AUD
		0, 0, 1, 0x41, 0xEE, // non-IDR slice
	}
	units := splitAccessUnits(stream)
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}
	if !units[0].isKeyframe {
		t.Error("first unit should be a keyframe")
	}
	if units[1].isKeyframe {
		t.Error("second unit should not be a keyframe")
	}
}

func TestLengthPrefixedDropsParameterSets(t *testing.T) {
	unit := accessUnit{nalus: [][]byte{
		{0x67, 0xAA},       // SPS
		{0x68, 0xBB},       // PPS
		{0x65, 0xCC, 0xDD}, // IDR
	}}
	out := lengthPrefixed(unit)
	want := []byte{0, 0, 0, 3, 0x65, 0xCC, 0xDD}
	if !bytes.Equal(out, want) {
		t.Errorf("lengthPrefixed = %v, want %v", out, want)
	}
}

func TestEncoder_RejectsAudio(t *testing.T) {
	enc := New()
	err := enc.Begin(64, 64, 10, ports.EncoderOptions{AudioPath: "voice.mp3"})
	if err != ErrAudioUnsupported {
		t.Errorf("Begin error = %v, want ErrAudioUnsupported", err)
	}
}

func TestEncoder_ProducesMP4(t *testing.T) {
	if !ffmpegpath.IsAvailable() {
		t.Skip("ffmpeg not available")
	}

	enc := New()
	if err := enc.Begin(64, 64, 10, ports.EncoderOptions{}); err != nil {
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

	// "ftyp" sits at byte offset 4 of an MP4 file.
	if len(data) < 8 || !bytes.Equal(data[4:8], []byte("ftyp")) {
		t.Error("output is not an MP4 container")
	}
}

func TestEncoder_EndRemovesTempOnFailure(t *testing.T) {
	if !ffmpegpath.IsAvailable() {
		t.Skip("ffmpeg not available")
	}

	enc := New()
	if err := enc.Begin(64, 64, 10, ports.EncoderOptions{}); err != nil {
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
