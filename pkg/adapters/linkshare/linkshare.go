// Package linkshare implements sharing as a link flow: the artifact
// path is surfaced as a file link the user can copy, which is also the
// fallback when a platform share sheet is unavailable.
package linkshare

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// Sharer implements ports.Sharer by writing a link file next to the
// artifact and logging the location.
type Sharer struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new Sharer.
func New(fs ports.FileSystem, logger ports.Logger) *Sharer {
	return &Sharer{fs: fs, logger: logger.WithComponent("share")}
}

// ShareFile records a shareable link for the artifact.
func (s *Sharer) ShareFile(ctx context.Context, path, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	link := "file://" + filepath.ToSlash(abs)
	linkPath := path + ".share.txt"
	content := fmt.Sprintf("%s\n%s\n", title, link)
	if err := s.fs.WriteFile(linkPath, []byte(content)); err != nil {
		return fmt.Errorf("write share link: %w", err)
	}
	s.logger.Info("Share link for %s: %s", title, link)
	return nil
}

// Unsupported is a Sharer for platforms with no share mechanism at
// all; it always reports ErrShareUnsupported so callers take the link
// fallback.
type Unsupported struct{}

// ShareFile always fails with ports.ErrShareUnsupported.
func (Unsupported) ShareFile(ctx context.Context, path, title string) error {
	return ports.ErrShareUnsupported
}

var (
	_ ports.Sharer = (*Sharer)(nil)
	_ ports.Sharer = Unsupported{}
)
