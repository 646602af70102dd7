package cmd

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/pflag"
)

// globListValue is a repeatable flag compiling each value as a glob with '/'
// as separator, so a bad pattern fails argument parsing.
type globListValue struct {
	patterns []string
	globs    []glob.Glob
}

var _ pflag.Value = (*globListValue)(nil)

func newGlobListValue() *globListValue {
	return &globListValue{}
}

func (g *globListValue) String() string {
	if g == nil {
		return "[]"
	}

	return "[" + strings.Join(g.patterns, ",") + "]"
}

func (g *globListValue) Set(pattern string) error {
	compiled, err := glob.Compile(pattern, '/')
	if err != nil {
		return fmt.Errorf("invalid glob %q: %w", pattern, err)
	}

	g.patterns = append(g.patterns, pattern)
	g.globs = append(g.globs, compiled)

	return nil
}

func (g *globListValue) Type() string {
	return "glob"
}

// Globs returns the compiled patterns in flag order.
func (g *globListValue) Globs() []glob.Glob {
	if g == nil {
		return nil
	}

	return g.globs
}
