package httploader

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msuleman526/tripshow/pkg/adapters/ggrenderer"
	"github.com/msuleman526/tripshow/pkg/adapters/logger"
)

func TestLoader_Load(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	loader := New(srv.Client(), ggrenderer.New(), logger.NewNoop())
	img, err := loader.Load(context.Background(), srv.URL+"/photo.jpg")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("decoded bounds = %v, want 20x10", img.Bounds())
	}
}

func TestLoader_LoadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	loader := New(srv.Client(), ggrenderer.New(), logger.NewNoop())
	if _, err := loader.Load(context.Background(), srv.URL+"/gone.jpg"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestLoader_LoadNotAnImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	loader := New(srv.Client(), ggrenderer.New(), logger.NewNoop())
	if _, err := loader.Load(context.Background(), srv.URL+"/page.html"); err == nil {
		t.Error("expected decode error for non-image body")
	}
}

func TestLoader_LoadCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := New(srv.Client(), ggrenderer.New(), logger.NewNoop())
	if _, err := loader.Load(ctx, srv.URL+"/photo.jpg"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
