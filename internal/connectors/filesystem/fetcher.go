// Package filesystem reads content resources from local files.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher reads bare paths and file:// URIs.
// Relative paths resolve against Root when it is set.
type Fetcher struct {
	Root string
}

// New creates a fetcher resolving relative paths against root.
func New(root string) *Fetcher {
	return &Fetcher{Root: root}
}

// Fetch returns the file contents at location.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := f.Path(location)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Path returns the local path location resolves to.
func (f *Fetcher) Path(location string) string {
	path := ResolvePath(location)
	if f.Root != "" && !filepath.IsAbs(path) {
		return filepath.Join(f.Root, path)
	}
	return path
}
