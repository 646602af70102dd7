// Package adapter contains the file system and external tool adapters for patchall.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/patchall/internal/model"
)

const tempPattern = ".patchall-*"

// preservedModeBits are copied from the original file onto its replacement.
const preservedModeBits = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// FileSystemAdapter abstracts the file operations the domain layer relies on
// so the patching logic can be tested without touching the disk.
type FileSystemAdapter interface {
	// Walk traverses root depth-first without following symlinks. Every entry,
	// including root itself, is reported to fn. Returning fs.SkipDir from fn
	// for a directory skips its contents.
	Walk(root m.Path, fn WalkFunc) error

	// ReadPrefix reads exactly n bytes from the start of the file.
	ReadPrefix(path m.Path, n int) ([]byte, error)

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// Exists reports whether path resolves to an existing file.
	Exists(path m.Path) bool

	// ReplaceAtomic writes new content for path into a temporary file in the
	// same directory, copies the original permission bits onto it and renames
	// it over path. The temporary file is removed on any failure.
	ReplaceAtomic(path m.Path, write func(w io.Writer) error) error
}

// WalkFunc receives every entry found by Walk. When err is non-nil the
// candidate only carries the path that failed.
type WalkFunc func(candidate m.Candidate, err error) error

// LocalFileSystemAdapter implements FileSystemAdapter on the local disk.
type LocalFileSystemAdapter struct{}

// NewLocalFileSystemAdapter constructs a LocalFileSystemAdapter.
func NewLocalFileSystemAdapter() *LocalFileSystemAdapter {
	return &LocalFileSystemAdapter{}
}

// Walk traverses root with filepath.WalkDir.
func (a *LocalFileSystemAdapter) Walk(root m.Path, fn WalkFunc) error {
	return filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(m.Candidate{Path: m.Path(path)}, err)
		}

		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// removed between listing and stat
				return nil
			}

			return fn(m.Candidate{Path: m.Path(path), Mode: d.Type()}, err)
		}

		return fn(m.Candidate{
			Path: m.Path(path),
			Mode: info.Mode(),
			Size: info.Size(),
		}, nil)
	})
}

// ReadPrefix reads the first n bytes of path and closes it immediately.
func (a *LocalFileSystemAdapter) ReadPrefix(path m.Path, n int) ([]byte, error) {
	file, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf := make([]byte, n)
	if _, err := io.ReadFull(file, buf); err != nil {
		return nil, fmt.Errorf("read first %d bytes of %s: %w", n, path, err)
	}

	return buf, nil
}

// Open opens path for reading.
func (a *LocalFileSystemAdapter) Open(path m.Path) (io.ReadCloser, error) {
	return os.Open(string(path))
}

// Exists follows symlinks, so a dangling link does not exist.
func (a *LocalFileSystemAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// ReplaceAtomic replaces path with content produced by write.
func (a *LocalFileSystemAdapter) ReplaceAtomic(path m.Path, write func(w io.Writer) error) (err error) {
	target := string(path)

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), tempPattern)
	if err != nil {
		return fmt.Errorf("create temporary file next to %s: %w", target, err)
	}

	tmpName := tmp.Name()
	closed := false

	defer func() {
		if err == nil {
			return
		}

		if !closed {
			_ = tmp.Close()
		}

		_ = os.Remove(tmpName)
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("write %s: %w", tmpName, err)
	}

	if err = tmp.Chmod(info.Mode() & preservedModeBits); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}

	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpName, target, err)
	}

	return nil
}
