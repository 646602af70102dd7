package model

import (
	"io/fs"
	"path"
)

// Path represents a file system path.
type Path string

// Base returns the final element of the path, see path.Base.
func (p Path) Base() string {
	return path.Base(string(p))
}

// Candidate is a single entry produced by the directory walk.
// It carries the stat data the classifier needs without touching the file again.
type Candidate struct {
	Path Path
	Mode fs.FileMode
	Size int64
}

// IsDir reports whether the entry is a directory.
func (c Candidate) IsDir() bool {
	return c.Mode.IsDir()
}

// IsRegular reports whether the entry is a regular file (not a symlink, device or pipe).
func (c Candidate) IsRegular() bool {
	return c.Mode.IsRegular()
}

// IsExecutable reports whether any of the owner, group or other execute bits are set.
func (c Candidate) IsExecutable() bool {
	return c.Mode.Perm()&0o111 != 0
}
