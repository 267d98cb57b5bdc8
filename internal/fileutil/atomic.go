// Package fileutil provides filesystem helpers for robust file operations.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadOnlyPerm is owner-read with no other access.
const ReadOnlyPerm os.FileMode = 0o400

var (
	// ErrEmptyPath indicates an empty file path was provided.
	ErrEmptyPath = errors.New("path is empty")

	// ErrExists indicates the destination already exists.
	ErrExists = errors.New("destination already exists")
)

// linkFn places the temp file at its destination, replaced in tests.
//
//nolint:gochecknoglobals // Swappable for tests
var linkFn = os.Link

// IsRegularFile reports whether path names an existing regular file,
// following symlinks.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// WriteExclusive writes data to a new file at path. The content is written
// to a temp file in the same directory, fsynced, then hard-linked into
// place, so path either does not exist or holds the complete data. An
// existing path is never replaced; ErrExists is returned instead.
//
// On filesystems without hard links (vfat, exFAT, some FUSE and SMB mounts)
// the file is created with O_EXCL and written in place. A failed write
// there removes the partial file.
func WriteExclusive(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmpFile, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	closed := false
	defer func() {
		if !closed {
			_ = tmpFile.Close()
		}
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("setting temp file permissions: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	closed = true

	if err := linkFn(tmpPath, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		if err := createExclusive(path, data, perm); err != nil {
			return err
		}
	}

	// Best effort directory sync for link durability.
	if dirFile, err := os.Open(dir); err == nil { //nolint:gosec // G304: dir is derived from validated path
		_ = dirFile.Sync()
		_ = dirFile.Close()
	}

	return nil
}

// createExclusive writes data to a file that must not exist yet.
func createExclusive(path string, data []byte, perm os.FileMode) error {
	// #nosec G304 -- path is chosen by the invoking user
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("creating file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("writing file: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("syncing file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// MakeReadOnly restricts path to owner-read only.
func MakeReadOnly(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	return os.Chmod(path, ReadOnlyPerm)
}
