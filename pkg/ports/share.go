package ports

import (
	"context"
	"errors"
)

// ErrShareUnsupported is returned by a Sharer that cannot share files on
// the current platform. Callers recover by falling back to a link-based
// flow; it is never a fatal generation error.
var ErrShareUnsupported = errors.New("sharing is not supported on this platform")

// Sharer hands a generated artifact to a platform share mechanism.
type Sharer interface {
	// ShareFile shares the file at path with the given display title.
	ShareFile(ctx context.Context, path, title string) error
}
