package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// Output file names, shared by the data and docs trees.
const (
	ScheduleFile = "schedule.json"
	NeededFile   = "stadiums_needed.json"
	MissingFile  = "stadiums_missing.json"
)

// Store writes scraper output under a data directory and publishes copies
// into a docs directory.
type Store struct {
	dataDir string
	docsDir string
}

// New creates a Store, expanding a leading ~ and creating both directories
// if needed. docsDir may be empty to disable publishing.
func New(dataDir, docsDir string) (*Store, error) {
	var err error
	if dataDir, err = expandHome(dataDir); err != nil {
		return nil, err
	}
	if docsDir, err = expandHome(docsDir); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	if docsDir != "" {
		if err := os.MkdirAll(docsDir, 0755); err != nil {
			return nil, fmt.Errorf("creating docs directory: %w", err)
		}
	}

	return &Store{dataDir: dataDir, docsDir: docsDir}, nil
}

func expandHome(dir string) (string, error) {
	if !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, dir[2:]), nil
}

// WriteJSON writes v to dataDir/name if its canonical serialization differs
// from what is already on disk. It reports whether the file was rewritten.
func (s *Store) WriteJSON(name string, v any) (bool, error) {
	path := filepath.Join(s.dataDir, name)

	data, err := canonicalJSON(v)
	if err != nil {
		return false, fmt.Errorf("encoding %s: %w", name, err)
	}

	if old, err := os.ReadFile(path); err == nil {
		// Compare canonical forms so a hand-edited but equivalent file does
		// not count as a change.
		var prev any
		if json.Unmarshal(old, &prev) == nil {
			if prevData, err := canonicalJSON(prev); err == nil && bytes.Equal(prevData, data) {
				return false, nil
			}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", name, err)
	}
	return true, nil
}

// LoadSchedule reads the previously written schedule, for diffing against
// the current run. A missing file yields a nil slice, not an error.
func (s *Store) LoadSchedule() ([]*schedule.Game, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, ScheduleFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading previous schedule: %w", err)
	}

	var games []*schedule.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parsing previous schedule: %w", err)
	}
	for _, g := range games {
		if g.DateISO == "" {
			continue
		}
		if t, err := time.Parse(schedule.ISOLayout, g.DateISO); err == nil {
			g.Kickoff = t
		}
	}
	return games, nil
}

// Publish copies the named data files into the docs directory, again only
// when the destination differs.
func (s *Store) Publish(names ...string) error {
	if s.docsDir == "" {
		return nil
	}
	for _, name := range names {
		src := filepath.Join(s.dataDir, name)
		data, err := os.ReadFile(src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("reading %s: %w", name, err)
		}

		dst := filepath.Join(s.docsDir, name)
		if old, err := os.ReadFile(dst); err == nil && bytes.Equal(old, data) {
			continue
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("publishing %s: %w", name, err)
		}
	}
	return nil
}

// WriteDocs writes a non-JSON artifact (the .ics calendar) straight into
// the docs directory, only when its content changed. It reports whether the
// file was rewritten.
func (s *Store) WriteDocs(name string, data []byte) (bool, error) {
	if s.docsDir == "" {
		return false, nil
	}
	path := filepath.Join(s.docsDir, name)
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, data) {
		return false, nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", name, err)
	}
	return true, nil
}

// DataPath returns the absolute location of a data file.
func (s *Store) DataPath(name string) string {
	return filepath.Join(s.dataDir, name)
}

// DocsPath returns the absolute location of a published file.
func (s *Store) DocsPath(name string) string {
	return filepath.Join(s.docsDir, name)
}

// canonicalJSON is the single serialization used both for writing and for
// change comparison: two-space indent with a trailing newline.
func canonicalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
