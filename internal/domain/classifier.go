package domain

import (
	"bytes"

	"github.com/mouse-blink/patchall/internal/adapter"
	m "github.com/mouse-blink/patchall/internal/model"
)

const magicLen = 4

var (
	elfMagic     = []byte{0x7F, 'E', 'L', 'F'}
	shebangMagic = []byte("#!")
)

// Classifier tags walk candidates by their leading bytes.
type Classifier interface {
	Classify(candidate m.Candidate) (m.FileKind, error)
}

type classifier struct {
	fs adapter.FileSystemAdapter
}

// NewClassifier creates a Classifier reading file prefixes through fs.
func NewClassifier(fs adapter.FileSystemAdapter) Classifier {
	return &classifier{fs: fs}
}

// Classify only opens the file when the stat data says it is a regular
// executable of at least four bytes.
func (c *classifier) Classify(candidate m.Candidate) (m.FileKind, error) {
	if !candidate.IsRegular() || !candidate.IsExecutable() || candidate.Size < magicLen {
		return m.KindUninteresting, nil
	}

	prefix, err := c.fs.ReadPrefix(candidate.Path, magicLen)
	if err != nil {
		return m.KindUninteresting, m.NewFailure(m.FailureClassification, candidate.Path, err)
	}

	return KindOf(prefix), nil
}

// KindOf classifies a magic prefix.
func KindOf(prefix []byte) m.FileKind {
	switch {
	case bytes.HasPrefix(prefix, elfMagic):
		return m.KindElfBinary
	case bytes.HasPrefix(prefix, shebangMagic):
		return m.KindShebangScript
	default:
		return m.KindUninteresting
	}
}
