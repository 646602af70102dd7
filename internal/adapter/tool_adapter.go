package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/patchall/internal/logging"
	m "github.com/mouse-blink/patchall/internal/model"
)

// Default tool names, resolved through PATH.
const (
	DefaultLddTool      = "ldd"
	DefaultPatchelfTool = "patchelf"
)

// ErrToolFailed matches every *ToolError.
var ErrToolFailed = errors.New("external tool failed")

// ToolError describes a failed external tool invocation.
type ToolError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrToolFailed) true for any ToolError.
func (e *ToolError) Is(target error) bool {
	return target == ErrToolFailed
}

// ToolAdapter runs the external programs patchall depends on.
type ToolAdapter interface {
	// SelfExecutable returns the canonical path of the running executable.
	SelfExecutable() (m.Path, error)

	// ListDependencies runs the dependency lister against path and returns its stdout.
	ListDependencies(path m.Path) ([]byte, error)

	// SetInterpreter rewrites the ELF interpreter of path to loader.
	SetInterpreter(path m.Path, loader m.Path) error
}

// LocalToolAdapter implements ToolAdapter with ldd and patchelf.
type LocalToolAdapter struct {
	ldd      string
	patchelf string
	logger   *logging.Logger
}

// NewLocalToolAdapter creates a ToolAdapter invoking the given programs.
// Empty names fall back to DefaultLddTool and DefaultPatchelfTool.
func NewLocalToolAdapter(ldd, patchelf string, logger *logging.Logger) *LocalToolAdapter {
	if ldd == "" {
		ldd = DefaultLddTool
	}

	if patchelf == "" {
		patchelf = DefaultPatchelfTool
	}

	return &LocalToolAdapter{ldd: ldd, patchelf: patchelf, logger: logger}
}

// SelfExecutable resolves os.Executable through any symlinks.
func (a *LocalToolAdapter) SelfExecutable() (m.Path, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate own executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", exe, err)
	}

	return m.Path(resolved), nil
}

// ListDependencies runs `ldd <path>`.
func (a *LocalToolAdapter) ListDependencies(path m.Path) ([]byte, error) {
	return a.run(a.ldd, string(path))
}

// SetInterpreter runs `patchelf --set-interpreter <loader> <path>`.
func (a *LocalToolAdapter) SetInterpreter(path m.Path, loader m.Path) error {
	_, err := a.run(a.patchelf, "--set-interpreter", string(loader), string(path))
	return err
}

func (a *LocalToolAdapter) run(tool string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	a.logger.Debugf("exec %s %s", tool, strings.Join(args, " "))

	cmd := exec.Command(tool, args...) //nolint:gosec // tool paths come from the command line
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), &ToolError{
			Tool:   tool,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}
