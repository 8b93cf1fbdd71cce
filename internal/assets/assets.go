package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir is a directory of image assets keyed by slug.
type Dir struct {
	path string
}

// NewDir creates the directory if needed and returns it.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("creating assets directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// HasStadium reports whether a stadium photo exists for the slug.
func (d *Dir) HasStadium(slug string) bool {
	_, err := os.Stat(filepath.Join(d.path, slug+".jpg"))
	return err == nil
}

// Path returns the directory location.
func (d *Dir) Path() string {
	return d.path
}
