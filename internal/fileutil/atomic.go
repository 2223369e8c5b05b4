// Package fileutil provides file system utilities.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExist is returned by CreateFileAtomic when the target already exists.
var ErrExist = os.ErrExist

// CreateFileAtomic writes data to a new file. The content is staged in a
// temporary file in the same directory, synced, and then hard linked into
// place. Linking never replaces an existing name, so readers see either no
// file or the complete file, and an existing file is never clobbered.
//
// When filename already exists the returned error satisfies
// errors.Is(err, ErrExist) and the temporary file is removed.
func CreateFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, "."+base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// The staged file is always removed: on success the link holds the data.
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
		}
		os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Link(tmpPath, filename); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", filename, ErrExist)
		}
		return fmt.Errorf("failed to link temp file: %w", err)
	}

	return nil
}
