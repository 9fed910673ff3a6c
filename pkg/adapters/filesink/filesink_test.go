package filesink

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/msuleman526/tripshow/pkg/mocks"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, &mocks.MockFileSystem{}, &mocks.MockRenderer{})
	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveStatsJSON(t *testing.T) {
	fs := &mocks.MockFileSystem{}
	sink := New(testBaseDir, fs, &mocks.MockRenderer{})

	data := []byte(`{"kilometers":212}`)
	if err := sink.SaveStatsJSON(data); err != nil {
		t.Fatalf("SaveStatsJSON failed: %v", err)
	}
	got, ok := fs.Files[filepath.Join(testBaseDir, "stats.json")]
	if !ok {
		t.Fatal("expected stats.json to be written")
	}
	if string(got) != string(data) {
		t.Errorf("expected %q, got %q", data, got)
	}
}

func TestSink_SavePreviewPage(t *testing.T) {
	fs := &mocks.MockFileSystem{}
	sink := New(testBaseDir, fs, &mocks.MockRenderer{})

	img := mocks.SolidImage(4, 4, color.White)
	if err := sink.SavePreviewPage(3, img); err != nil {
		t.Fatalf("SavePreviewPage failed: %v", err)
	}
	path := filepath.Join(testBaseDir, "preview", "page-003.png")
	if _, ok := fs.Files[path]; !ok {
		t.Errorf("expected %s to be written, have %v", path, keys(fs.Files))
	}
}

func TestSink_SaveFrameAndThumbnail(t *testing.T) {
	fs := &mocks.MockFileSystem{}
	sink := New(testBaseDir, fs, &mocks.MockRenderer{})

	img := mocks.SolidImage(4, 4, color.Black)
	if err := sink.SaveFrame(12, img); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}
	if err := sink.SaveThumbnail(img); err != nil {
		t.Fatalf("SaveThumbnail failed: %v", err)
	}

	framePath := filepath.Join(testBaseDir, "frames", "frame-00012.jpg")
	if _, ok := fs.Files[framePath]; !ok {
		t.Errorf("expected %s to be written", framePath)
	}
	thumbPath := filepath.Join(testBaseDir, "thumbnail.jpg")
	if _, ok := fs.Files[thumbPath]; !ok {
		t.Errorf("expected %s to be written", thumbPath)
	}
}

func keys(m map[string][]byte) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}
