package staticmap

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msuleman526/tripshow/pkg/adapters/ggrenderer"
	"github.com/msuleman526/tripshow/pkg/adapters/logger"
	"github.com/msuleman526/tripshow/pkg/ports"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{180, 205, 230, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestProvider_StaticMap(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write(pngBytes(t, 32, 24))
	}))
	defer srv.Close()

	provider := New(srv.URL, "test-key", srv.Client(), ggrenderer.New(), logger.NewNoop())
	points := []ports.MapPoint{{Lat: 46.02, Lng: 7.75}, {Lat: 45.74, Lng: 7.32}}
	img, err := provider.StaticMap(context.Background(), points, 1024, 1024)
	if err != nil {
		t.Fatalf("StaticMap failed: %v", err)
	}

	if img.Bounds().Dx() != 32 {
		t.Errorf("decoded width = %d, want 32", img.Bounds().Dx())
	}
	if got := gotQuery["size"]; len(got) != 1 || got[0] != "1024x1024" {
		t.Errorf("size param = %v", got)
	}
	if got := gotQuery["markers"]; len(got) != 2 {
		t.Errorf("markers = %v, want one per point", got)
	}
	if got := gotQuery["path"]; len(got) != 1 {
		t.Errorf("path = %v, want a single polyline", got)
	}
}

func TestProvider_StaticMapNoPoints(t *testing.T) {
	provider := New("http://example.invalid", "", nil, ggrenderer.New(), logger.NewNoop())
	if _, err := provider.StaticMap(context.Background(), nil, 512, 512); err == nil {
		t.Error("expected error for empty point list")
	}
}

func TestProvider_StaticMapServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	provider := New(srv.URL, "bad-key", srv.Client(), ggrenderer.New(), logger.NewNoop())
	_, err := provider.StaticMap(context.Background(), []ports.MapPoint{{Lat: 1, Lng: 2}}, 512, 512)
	if err == nil {
		t.Error("expected error for non-2xx status")
	}
}
