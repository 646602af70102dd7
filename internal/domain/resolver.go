package domain

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/mouse-blink/patchall/internal/adapter"
	"github.com/mouse-blink/patchall/internal/logging"
	m "github.com/mouse-blink/patchall/internal/model"
)

// LoaderName is the file name of the x86-64 dynamic loader.
const LoaderName = "ld-linux-x86-64.so.2"

const dependencyArrow = "=>"

// ErrLoaderNotFound is returned when dependency output names no loader.
var ErrLoaderNotFound = errors.New("no " + LoaderName + " entry in dependency output")

// ResolutionError means the loader for the running executable could not be
// determined. It is the only error that aborts a sweep.
type ResolutionError struct {
	Executable m.Path
	Err        error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to determine path to dynamic loader from %s: %v. "+
		"Note: patchall must be dynamically linked for it to work since it checks its own "+
		"dynamic loader to determine the path to the dynamic loader", e.Executable, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ParseLoader extracts the loader path from dependency lister output.
// The first line containing "=>" whose left-hand side has the file name
// LoaderName wins; the left-hand side is returned trimmed.
func ParseLoader(output []byte) (m.Path, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		idx := strings.Index(line, dependencyArrow)
		if idx < 0 {
			continue
		}

		lib := strings.TrimSpace(line[:idx])
		if lib == "" || path.Base(lib) != LoaderName {
			continue
		}

		return m.Path(lib), nil
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read dependency output: %w", err)
	}

	return "", ErrLoaderNotFound
}

// LoaderResolver finds the dynamic loader recorded for executables.
type LoaderResolver interface {
	// ResolveSelf returns the loader of the running executable.
	ResolveSelf() (m.Path, error)
	// Resolve returns the loader recorded for path.
	Resolve(path m.Path) (m.Path, error)
}

type loaderResolver struct {
	tools  adapter.ToolAdapter
	logger *logging.Logger
}

// NewLoaderResolver creates a LoaderResolver backed by the dependency lister.
func NewLoaderResolver(tools adapter.ToolAdapter, logger *logging.Logger) LoaderResolver {
	return &loaderResolver{tools: tools, logger: logger}
}

func (r *loaderResolver) ResolveSelf() (m.Path, error) {
	self, err := r.tools.SelfExecutable()
	if err != nil {
		return "", &ResolutionError{Err: err}
	}

	loader, err := r.Resolve(self)
	if err != nil {
		return "", &ResolutionError{Executable: self, Err: err}
	}

	r.logger.Debugf("loader of %s is %s", self, loader)

	return loader, nil
}

func (r *loaderResolver) Resolve(path m.Path) (m.Path, error) {
	output, err := r.tools.ListDependencies(path)
	if err != nil {
		return "", fmt.Errorf("list dependencies of %s: %w", path, err)
	}

	loader, err := ParseLoader(output)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return loader, nil
}
