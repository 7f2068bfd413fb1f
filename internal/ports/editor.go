package ports

import "os/exec"

// EditorOpener defines the interface for opening a keyframe file in an
// external text editor
type EditorOpener interface {
	// Command returns an exec.Cmd that edits path in the foreground, for
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
