package domain

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gobwas/glob"
	"github.com/mouse-blink/patchall/internal/adapter"
	adaptermocks "github.com/mouse-blink/patchall/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/patchall/internal/controller/mocks"
	"github.com/mouse-blink/patchall/internal/logging"
	m "github.com/mouse-blink/patchall/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sweepTree lays out a small tree mixing every kind of entry.
func sweepTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "share", "cache"), 0o755))

	writeFile(t, filepath.Join(root, "bin", "tool"), append([]byte{0x7F, 'E', 'L', 'F'}, make([]byte, 16)...), 0o755)
	writeFile(t, filepath.Join(root, "bin", "run"), []byte("#!/usr/bin/python3\nprint(1)\n"), 0o755)
	writeFile(t, filepath.Join(root, "bin", "sh-script"), []byte("#!/bin/sh\necho hi\n"), 0o755)
	writeFile(t, filepath.Join(root, "share", "readme"), []byte("#!/usr/bin/python3\n"), 0o644)
	writeFile(t, filepath.Join(root, "share", "cache", "run"), []byte("#!/usr/bin/python3\n"), 0o755)

	return root
}

type recordedOutcomes struct {
	outcomes []m.Outcome
}

func (r *recordedOutcomes) byPath() map[string]m.Outcome {
	out := make(map[string]m.Outcome, len(r.outcomes))
	for _, o := range r.outcomes {
		out[string(o.Path)] = o
	}

	return out
}

func expectUI(ui *controllermocks.MockUI, loader m.Path, dryRun bool, rec *recordedOutcomes) {
	ui.EXPECT().Start().Return(nil)
	ui.EXPECT().DisplayLoader(loader, dryRun).Return()
	ui.EXPECT().DisplayOutcome(mock.Anything).Run(func(o m.Outcome) {
		rec.outcomes = append(rec.outcomes, o)
	}).Return()
	ui.EXPECT().DisplaySummary(mock.Anything).Return()
	ui.EXPECT().Close().Return()
}

func TestWorkflow_Sweep(t *testing.T) {
	t.Run("patches elf and scripts", func(t *testing.T) {
		root := sweepTree(t)
		tool := m.Path(filepath.Join(root, "bin", "tool"))

		tools := adaptermocks.NewMockToolAdapter(t)
		tools.On("SelfExecutable").Return(m.Path("/opt/patchall"), nil)
		tools.On("ListDependencies", m.Path("/opt/patchall")).Return([]byte(storeLddOutput), nil)
		tools.On("ListDependencies", tool).Return([]byte("\t/nonexistent/lib64/ld-linux-x86-64.so.2 => /nonexistent (0x1)\n"), nil)
		tools.On("SetInterpreter", tool, m.Path("/store/glibc-2.38/lib/ld-linux-x86-64.so.2")).Return(nil)

		ui := controllermocks.NewMockUI(t)
		rec := &recordedOutcomes{}
		expectUI(ui, "/store/glibc-2.38/lib/ld-linux-x86-64.so.2", false, rec)

		wf := NewWorkflow(adapter.NewLocalFileSystemAdapter(), tools, ui, logging.Discard())
		summary, err := wf.Sweep(SweepArgs{Roots: []m.Path{m.Path(root)}})
		require.NoError(t, err)

		assert.Equal(t, 5, summary.Scanned)
		assert.Equal(t, 1, summary.Elf)
		assert.Equal(t, 3, summary.Shebang)
		assert.Equal(t, 3, summary.Patched)
		assert.Equal(t, 0, summary.Failed)
		assert.False(t, summary.End.Before(summary.Start))

		outcomes := rec.byPath()
		assert.True(t, outcomes[string(tool)].Applied)
		assert.Equal(t, "/nonexistent/lib64/ld-linux-x86-64.so.2", outcomes[string(tool)].Action.Old)
		assert.True(t, outcomes[filepath.Join(root, "bin", "sh-script")].Action.IsNone())
		assert.Equal(t, m.KindUninteresting, outcomes[filepath.Join(root, "share", "readme")].Kind)

		assert.Equal(t, "#!/usr/bin/env python3\nprint(1)\n", readFile(t, filepath.Join(root, "bin", "run")))
		assert.Equal(t, "#!/bin/sh\necho hi\n", readFile(t, filepath.Join(root, "bin", "sh-script")))
	})

	t.Run("dry run touches nothing", func(t *testing.T) {
		root := sweepTree(t)
		tool := m.Path(filepath.Join(root, "bin", "tool"))

		tools := adaptermocks.NewMockToolAdapter(t)
		tools.On("ListDependencies", tool).Return([]byte("\t/nonexistent/ld-linux-x86-64.so.2 => /nonexistent (0x1)\n"), nil)

		loader := m.Path(filepath.Join(root, "bin", "tool"))

		ui := controllermocks.NewMockUI(t)
		rec := &recordedOutcomes{}
		expectUI(ui, loader, true, rec)

		wf := NewWorkflow(adapter.NewLocalFileSystemAdapter(), tools, ui, logging.Discard())
		summary, err := wf.Sweep(SweepArgs{Roots: []m.Path{m.Path(root)}, DryRun: true, Loader: loader})
		require.NoError(t, err)

		assert.Equal(t, 3, summary.Patched)
		assert.Equal(t, "#!/usr/bin/python3\nprint(1)\n", readFile(t, filepath.Join(root, "bin", "run")))

		for _, o := range rec.outcomes {
			assert.False(t, o.Applied, o.Path)
		}

		tools.AssertNotCalled(t, "SetInterpreter")
		tools.AssertNotCalled(t, "SelfExecutable")
	})

	t.Run("exclude patterns skip files and directories", func(t *testing.T) {
		root := sweepTree(t)
		tool := m.Path(filepath.Join(root, "bin", "tool"))

		tools := adaptermocks.NewMockToolAdapter(t)
		tools.On("ListDependencies", tool).Return([]byte("\t/lib64/ld-linux-x86-64.so.2 => /x (0x1)\n"), nil).Maybe()

		ui := controllermocks.NewMockUI(t)
		rec := &recordedOutcomes{}
		expectUI(ui, tool, true, rec)

		wf := NewWorkflow(adapter.NewLocalFileSystemAdapter(), tools, ui, logging.Discard())
		summary, err := wf.Sweep(SweepArgs{
			Roots:   []m.Path{m.Path(root)},
			DryRun:  true,
			Loader:  tool,
			Exclude: []glob.Glob{glob.MustCompile("cache", '/'), glob.MustCompile("sh-*", '/')},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Excluded)
		paths := make([]string, 0, len(rec.outcomes))
		for _, o := range rec.outcomes {
			paths = append(paths, string(o.Path))
		}
		sort.Strings(paths)

		assert.Equal(t, []string{
			filepath.Join(root, "bin", "run"),
			filepath.Join(root, "bin", "tool"),
			filepath.Join(root, "share", "readme"),
		}, paths)
	})

	t.Run("per file errors are counted and the sweep continues", func(t *testing.T) {
		root := sweepTree(t)
		tool := m.Path(filepath.Join(root, "bin", "tool"))
		missing := m.Path(filepath.Join(root, "missing"))

		tools := adaptermocks.NewMockToolAdapter(t)
		tools.On("ListDependencies", tool).Return(nil, &adapter.ToolError{Tool: "ldd", Err: errors.New("exit status 1")})

		ui := controllermocks.NewMockUI(t)
		rec := &recordedOutcomes{}
		expectUI(ui, tool, false, rec)

		wf := NewWorkflow(adapter.NewLocalFileSystemAdapter(), tools, ui, logging.Discard())
		summary, err := wf.Sweep(SweepArgs{Roots: []m.Path{missing, m.Path(root)}, Loader: tool})
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Failed)

		outcomes := rec.byPath()

		var failure *m.Failure
		require.ErrorAs(t, outcomes[string(missing)].Err, &failure)
		assert.Equal(t, m.FailureTraversal, failure.Kind)

		require.ErrorAs(t, outcomes[string(tool)].Err, &failure)
		assert.Equal(t, m.FailureElfPatch, failure.Kind)

		assert.True(t, outcomes[filepath.Join(root, "bin", "run")].Applied)
	})
}

func TestWorkflow_Sweep_LoaderFailureIsFatal(t *testing.T) {
	root := sweepTree(t)

	tools := adaptermocks.NewMockToolAdapter(t)
	tools.On("SelfExecutable").Return(m.Path("/opt/patchall"), nil)
	tools.On("ListDependencies", m.Path("/opt/patchall")).Return([]byte("\tnot a dynamic executable\n"), nil)

	ui := controllermocks.NewMockUI(t)

	wf := NewWorkflow(adapter.NewLocalFileSystemAdapter(), tools, ui, logging.Discard())
	_, err := wf.Sweep(SweepArgs{Roots: []m.Path{m.Path(root)}})

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "#!/usr/bin/python3\nprint(1)\n", readFile(t, filepath.Join(root, "bin", "run")))
	ui.AssertNotCalled(t, "Start")
}

func TestWorkflow_Sweep_MissingLoaderOverride(t *testing.T) {
	tools := adaptermocks.NewMockToolAdapter(t)
	ui := controllermocks.NewMockUI(t)

	wf := NewWorkflow(adapter.NewLocalFileSystemAdapter(), tools, ui, logging.Discard())
	_, err := wf.Sweep(SweepArgs{Roots: []m.Path{m.Path(t.TempDir())}, Loader: "/nonexistent/ld.so"})

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsExcluded(t *testing.T) {
	patterns := []glob.Glob{glob.MustCompile("*.bak", '/'), glob.MustCompile("/opt/**/cache", '/')}

	assert.True(t, isExcluded(patterns, "/usr/bin/tool.bak"))
	assert.True(t, isExcluded(patterns, "/opt/a/b/cache"))
	assert.False(t, isExcluded(patterns, "/usr/bin/tool"))
	assert.False(t, isExcluded(nil, "/usr/bin/tool.bak"))
}
