package domain

import (
	"github.com/mouse-blink/patchall/internal/adapter"
	"github.com/mouse-blink/patchall/internal/logging"
	m "github.com/mouse-blink/patchall/internal/model"
)

// ElfPatcher repoints ELF binaries whose recorded loader is missing.
type ElfPatcher interface {
	Patch(path m.Path, loader m.Path, dryRun bool) m.Outcome
}

type elfPatcher struct {
	resolver LoaderResolver
	fs       adapter.FileSystemAdapter
	tools    adapter.ToolAdapter
	logger   *logging.Logger
}

// NewElfPatcher creates an ElfPatcher.
func NewElfPatcher(resolver LoaderResolver, fs adapter.FileSystemAdapter, tools adapter.ToolAdapter, logger *logging.Logger) ElfPatcher {
	return &elfPatcher{resolver: resolver, fs: fs, tools: tools, logger: logger}
}

// Patch leaves the binary alone when its current loader exists on disk,
// even if that loader differs from the resolved one.
func (p *elfPatcher) Patch(path m.Path, loader m.Path, dryRun bool) m.Outcome {
	outcome := m.Outcome{Path: path, Kind: m.KindElfBinary, Action: m.NoAction(), DryRun: dryRun}

	current, err := p.resolver.Resolve(path)
	if err != nil {
		outcome.Err = m.NewFailure(m.FailureElfPatch, path, err)
		return outcome
	}

	if p.fs.Exists(current) {
		p.logger.Debugf("skip %s: interpreter %s exists", path, current)
		return outcome
	}

	outcome.Action = m.PatchAction{
		Type: m.ActionRewriteElfInterpreter,
		Old:  string(current),
		New:  string(loader),
	}

	if dryRun {
		return outcome
	}

	if err := p.tools.SetInterpreter(path, loader); err != nil {
		outcome.Err = m.NewFailure(m.FailureElfPatch, path, err)
		return outcome
	}

	outcome.Applied = true

	return outcome
}
