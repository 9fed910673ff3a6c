package linkshare

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msuleman526/tripshow/pkg/adapters/logger"
	"github.com/msuleman526/tripshow/pkg/mocks"
	"github.com/msuleman526/tripshow/pkg/ports"
)

func TestSharer_WritesLinkFile(t *testing.T) {
	fs := &mocks.MockFileSystem{}
	sharer := New(fs, logger.NewNoop())

	err := sharer.ShareFile(context.Background(), "out/Alps_Crossing_Travel_Book.pdf", "Alps Crossing")
	if err != nil {
		t.Fatalf("ShareFile failed: %v", err)
	}

	data, ok := fs.Files["out/Alps_Crossing_Travel_Book.pdf.share.txt"]
	if !ok {
		t.Fatal("expected share link file to be written")
	}
	content := string(data)
	if !strings.Contains(content, "Alps Crossing") {
		t.Errorf("link file missing title: %q", content)
	}
	if !strings.Contains(content, "file://") {
		t.Errorf("link file missing file link: %q", content)
	}
}

func TestUnsupported_AlwaysFails(t *testing.T) {
	err := Unsupported{}.ShareFile(context.Background(), "x.pdf", "x")
	if !errors.Is(err, ports.ErrShareUnsupported) {
		t.Errorf("error = %v, want ErrShareUnsupported", err)
	}
}
