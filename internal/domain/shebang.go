package domain

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/mouse-blink/patchall/internal/adapter"
	"github.com/mouse-blink/patchall/internal/logging"
	m "github.com/mouse-blink/patchall/internal/model"
)

const (
	shebangPrefix = "#!"
	envPath       = "/usr/bin/env"
)

// Interpreters that are always present and never rewritten.
var keptInterpreters = map[string]struct{}{
	"/bin/sh": {},
	envPath:   {},
}

// Only interpreters under these prefixes are rewritten. Matching is a plain
// string prefix, so "/binx/tool" matches "/bin".
var systemPrefixes = []string{"/bin", "/lib", "/lib64", "/sbin", "/usr"}

// ShebangRewriter moves script interpreters behind /usr/bin/env.
type ShebangRewriter interface {
	Patch(path m.Path, dryRun bool) m.Outcome
}

type shebangRewriter struct {
	fs     adapter.FileSystemAdapter
	logger *logging.Logger
}

// NewShebangRewriter creates a ShebangRewriter.
func NewShebangRewriter(fs adapter.FileSystemAdapter, logger *logging.Logger) ShebangRewriter {
	return &shebangRewriter{fs: fs, logger: logger}
}

// ParseShebang splits a "#!" line into interpreter and arguments.
// The line must not contain its terminator.
func ParseShebang(line string) (m.ShebangLine, bool) {
	if !strings.HasPrefix(line, shebangPrefix) {
		return m.ShebangLine{}, false
	}

	fields := strings.Fields(line[len(shebangPrefix):])
	if len(fields) == 0 {
		return m.ShebangLine{}, false
	}

	return m.ShebangLine{Interpreter: fields[0], Args: fields[1:]}, true
}

// EnvShebang returns the /usr/bin/env form of s, or false when s is left as is.
func EnvShebang(s m.ShebangLine) (m.ShebangLine, bool) {
	if _, ok := keptInterpreters[s.Interpreter]; ok {
		return m.ShebangLine{}, false
	}

	if !hasSystemPrefix(s.Interpreter) {
		return m.ShebangLine{}, false
	}

	name := path.Base(s.Interpreter)
	switch name {
	case "", ".", "..", "/":
		return m.ShebangLine{}, false
	}

	args := make([]string, 0, len(s.Args)+1)
	args = append(args, name)
	args = append(args, s.Args...)

	return m.ShebangLine{Interpreter: envPath, Args: args}, true
}

func hasSystemPrefix(interpreter string) bool {
	for _, prefix := range systemPrefixes {
		if strings.HasPrefix(interpreter, prefix) {
			return true
		}
	}

	return false
}

func (r *shebangRewriter) Patch(path m.Path, dryRun bool) m.Outcome {
	outcome := m.Outcome{Path: path, Kind: m.KindShebangScript, Action: m.NoAction(), DryRun: dryRun}

	file, err := r.fs.Open(path)
	if err != nil {
		outcome.Err = m.NewFailure(m.FailureShebangRewrite, path, err)
		return outcome
	}
	defer file.Close()

	lines := newLineReader(file)

	line, err := lines.ReadLine()
	if errors.Is(err, io.EOF) {
		r.logger.Debugf("skip %s: no line terminator", path)
		return outcome
	}

	if err != nil {
		outcome.Err = m.NewFailure(m.FailureShebangRewrite, path, fmt.Errorf("read first line: %w", err))
		return outcome
	}

	header := line[:len(line)-1]
	if !utf8.Valid(header) {
		r.logger.Debugf("skip %s: first line is not valid UTF-8", path)
		return outcome
	}

	current, ok := ParseShebang(string(header))
	if !ok {
		r.logger.Debugf("skip %s: no interpreter", path)
		return outcome
	}

	replacement, ok := EnvShebang(current)
	if !ok {
		r.logger.Debugf("skip %s: interpreter %s kept", path, current.Interpreter)
		return outcome
	}

	outcome.Action = m.PatchAction{
		Type: m.ActionRewriteShebang,
		Old:  current.String(),
		New:  replacement.String(),
	}

	if dryRun {
		return outcome
	}

	err = r.fs.ReplaceAtomic(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, shebangPrefix+replacement.String()+"\n"); err != nil {
			return err
		}

		_, err := io.Copy(w, lines.Rest())

		return err
	})
	if err != nil {
		outcome.Err = m.NewFailure(m.FailureShebangRewrite, path, err)
		return outcome
	}

	outcome.Applied = true

	return outcome
}
