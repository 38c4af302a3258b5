package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Staged is generated content written to a temporary file next to its
// destination and not yet visible there.
type Staged struct {
	path string
	tmp  string
}

// Stage writes data to a temporary file in the directory of path, creating
// the directory when needed. Commit moves it into place; Discard removes it.
func Stage(path string, data []byte) (_ *Staged, err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return &Staged{path: path, tmp: tmp.Name()}, nil
}

// Path is the destination of the staged content.
func (s *Staged) Path() string { return s.path }

// Commit renames the temporary file over the destination.
func (s *Staged) Commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		os.Remove(s.tmp)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Discard removes the temporary file. Discarding after Commit is a no-op.
func (s *Staged) Discard() {
	os.Remove(s.tmp)
}

// WriteFile replaces path with data. Readers see either the old file or the
// complete new one.
func WriteFile(path string, data []byte) error {
	staged, err := Stage(path, data)
	if err != nil {
		return err
	}
	return staged.Commit()
}
