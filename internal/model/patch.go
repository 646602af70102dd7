package model

import (
	"fmt"
	"strings"
)

// FileKind classifies a candidate by its leading bytes.
type FileKind string

const (
	// KindUninteresting is anything that is neither an executable ELF nor a script.
	KindUninteresting FileKind = "uninteresting"

	// KindElfBinary is an executable starting with the ELF magic 0x7F 'E' 'L' 'F'.
	KindElfBinary FileKind = "elf"

	// KindShebangScript is an executable starting with "#!".
	KindShebangScript FileKind = "shebang"
)

// ShebangLine is the parsed form of a script's "#!" line.
type ShebangLine struct {
	Interpreter string
	Args        []string
}

// String renders the line back without the leading "#!".
func (s ShebangLine) String() string {
	return strings.Join(append([]string{s.Interpreter}, s.Args...), " ")
}

// ActionType describes what a patcher decided to do with a file.
type ActionType string

const (
	// ActionNone means the file was left untouched.
	ActionNone ActionType = "none"

	// ActionRewriteElfInterpreter replaces the loader recorded in an ELF binary.
	ActionRewriteElfInterpreter ActionType = "rewrite-elf-interpreter"

	// ActionRewriteShebang replaces the interpreter line of a script.
	ActionRewriteShebang ActionType = "rewrite-shebang"
)

// PatchAction is the decision taken for one file. Old and New hold the
// interpreter before and after the rewrite.
type PatchAction struct {
	Type ActionType
	Old  string
	New  string
}

// NoAction is the zero decision.
func NoAction() PatchAction {
	return PatchAction{Type: ActionNone}
}

// IsNone reports whether the action leaves the file alone.
func (a PatchAction) IsNone() bool {
	return a.Type == "" || a.Type == ActionNone
}

// Describe renders the human readable report line for the action on path.
func (a PatchAction) Describe(path Path) string {
	switch a.Type {
	case ActionRewriteElfInterpreter:
		return fmt.Sprintf("Patching %q to use %q instead of %q", path, a.New, a.Old)
	case ActionRewriteShebang:
		return fmt.Sprintf("Patching shebang of %q to %s", path, a.New)
	case ActionNone:
		return ""
	default:
		return ""
	}
}
