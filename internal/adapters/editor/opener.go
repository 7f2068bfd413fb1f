package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when no editor is configured or installed
var ErrNoEditor = errors.New("no editor found: set $KEYFRAMER_EDITOR or $EDITOR")

// Opener implements ports.EditorOpener
type Opener struct {
	// lookPath is exec.LookPath, replaced in tests
	lookPath func(string) (string, error)
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath}
}

// Command returns an exec.Cmd attached to the terminal that opens path
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.editorArgs()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// editorArgs returns the editor command split into program and flags.
// Environment settings win over installed editors; "code --wait" style
// values are kept as separate arguments.
func (o *Opener) editorArgs() []string {
	for _, env := range []string{"KEYFRAMER_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	for _, name := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := o.lookPath(name); err == nil {
			return []string{path}
		}
	}

	return nil
}
