package mocks

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// MockFileSystem is an in-memory FileSystem.
type MockFileSystem struct {
	mu    sync.Mutex
	Files map[string][]byte

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
}

func (fs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if fs.ReadFileFunc != nil {
		return fs.ReadFileFunc(path)
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, ok := fs.Files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return data, nil
}

func (fs *MockFileSystem) WriteFile(path string, data []byte) error {
	if fs.WriteFileFunc != nil {
		return fs.WriteFileFunc(path, data)
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.Files == nil {
		fs.Files = map[string][]byte{}
	}
	fs.Files[path] = data
	return nil
}

func (fs *MockFileSystem) MkdirAll(path string) error { return nil }

func (fs *MockFileSystem) Exists(path string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	_, ok := fs.Files[path]
	return ok, nil
}

func (fs *MockFileSystem) Remove(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.Files, path)
	return nil
}

// MockDebugSink records every debug payload it receives.
type MockDebugSink struct {
	EnabledValue bool

	StatsJSON    []byte
	PagesJSON    []byte
	TimelineJSON []byte
	PreviewPages map[int]image.Image
	Frames       map[int]image.Image
	Thumbnail    image.Image
}

func (s *MockDebugSink) Enabled() bool { return s.EnabledValue }

func (s *MockDebugSink) SaveStatsJSON(data []byte) error {
	s.StatsJSON = data
	return nil
}

func (s *MockDebugSink) SavePagesJSON(data []byte) error {
	s.PagesJSON = data
	return nil
}

func (s *MockDebugSink) SaveTimelineJSON(data []byte) error {
	s.TimelineJSON = data
	return nil
}

func (s *MockDebugSink) SavePreviewPage(index int, img image.Image) error {
	if s.PreviewPages == nil {
		s.PreviewPages = map[int]image.Image{}
	}
	s.PreviewPages[index] = img
	return nil
}

func (s *MockDebugSink) SaveFrame(index int, img image.Image) error {
	if s.Frames == nil {
		s.Frames = map[int]image.Image{}
	}
	s.Frames[index] = img
	return nil
}

func (s *MockDebugSink) SaveThumbnail(img image.Image) error {
	s.Thumbnail = img
	return nil
}

// MockSharer records share attempts. By default it reports that
// sharing is unavailable, which is the interesting path to test.
type MockSharer struct {
	ShareFileFunc func(ctx context.Context, path, title string) error

	Shared []string
}

func (s *MockSharer) ShareFile(ctx context.Context, path, title string) error {
	s.Shared = append(s.Shared, path)
	if s.ShareFileFunc != nil {
		return s.ShareFileFunc(ctx, path, title)
	}
	return ports.ErrShareUnsupported
}

var (
	_ ports.FileSystem = (*MockFileSystem)(nil)
	_ ports.DebugSink  = (*MockDebugSink)(nil)
	_ ports.Sharer     = (*MockSharer)(nil)
)
