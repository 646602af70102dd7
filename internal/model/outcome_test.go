package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Add(t *testing.T) {
	var s Summary

	s.Add(Outcome{Path: "a", Kind: KindUninteresting})
	s.Add(Outcome{Path: "b", Kind: KindElfBinary, Action: PatchAction{Type: ActionRewriteElfInterpreter, Old: "/lib64/ld", New: "/store/ld"}})
	s.Add(Outcome{Path: "c", Kind: KindShebangScript, Action: NoAction()})
	s.Add(Outcome{Path: "d", Kind: KindShebangScript, Err: errors.New("boom")})
	s.Add(Outcome{Path: "e", Kind: KindShebangScript, Action: PatchAction{Type: ActionRewriteShebang, New: "/usr/bin/env python3"}, DryRun: true})

	assert.Equal(t, 5, s.Scanned)
	assert.Equal(t, 1, s.Elf)
	assert.Equal(t, 3, s.Shebang)
	assert.Equal(t, 2, s.Patched)
	assert.Equal(t, 1, s.Failed)
}

func TestSummary_String(t *testing.T) {
	s := Summary{Scanned: 1, Excluded: 2, Patched: 0, Failed: 3}
	assert.Equal(t, "1 file scanned, 2 excluded, 0 patched, 3 errors", s.String())

	s = Summary{Scanned: 4, Failed: 1}
	assert.Equal(t, "4 files scanned, 0 excluded, 0 patched, 1 error", s.String())
}

func TestSummary_Duration(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Summary{Start: start, End: start.Add(3 * time.Second)}
	assert.Equal(t, 3*time.Second, s.Duration())

	s = Summary{Start: start}
	assert.Equal(t, time.Duration(0), s.Duration())
}

func TestFailure_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(NewFailure(FailureShebangRewrite, "/opt/x", cause))

	require.ErrorIs(t, err, cause)

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, FailureShebangRewrite, failure.Kind)
	assert.Equal(t, `shebang-rewrite "/opt/x": permission denied`, err.Error())
}

func TestPatchAction_Describe(t *testing.T) {
	elf := PatchAction{Type: ActionRewriteElfInterpreter, Old: "/lib64/ld-linux-x86-64.so.2", New: "/store/ld-linux-x86-64.so.2"}
	assert.Equal(t,
		`Patching "/bin/tool" to use "/store/ld-linux-x86-64.so.2" instead of "/lib64/ld-linux-x86-64.so.2"`,
		elf.Describe("/bin/tool"))

	sh := PatchAction{Type: ActionRewriteShebang, Old: "/usr/bin/python3 -u", New: "/usr/bin/env python3 -u"}
	assert.Equal(t, `Patching shebang of "/bin/run" to /usr/bin/env python3 -u`, sh.Describe("/bin/run"))

	assert.Empty(t, NoAction().Describe("/bin/run"))
	assert.True(t, PatchAction{}.IsNone())
}

func TestCandidate(t *testing.T) {
	c := Candidate{Path: "/x", Mode: 0o755, Size: 10}
	assert.True(t, c.IsRegular())
	assert.True(t, c.IsExecutable())
	assert.False(t, c.IsDir())

	c.Mode = 0o644
	assert.False(t, c.IsExecutable())

	c.Mode = 0o010
	assert.True(t, c.IsExecutable())
}

func TestPath_Base(t *testing.T) {
	assert.Equal(t, "python3", Path("/usr/bin/python3").Base())
	assert.Equal(t, "/", Path("/").Base())
	assert.Equal(t, ".", Path("").Base())
}
