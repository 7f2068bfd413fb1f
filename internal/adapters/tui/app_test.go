package tui

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyframer/internal/adapters/filesystem"
	"keyframer/internal/adapters/tui/views"
	"keyframer/internal/application/commands"
	"keyframer/internal/config"
)

type failingOpener struct{}

func (failingOpener) Command(path string) (*exec.Cmd, error) {
	return nil, errors.New("no editor found")
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.ProjectFile = filepath.Join(t.TempDir(), "anim.json")
	cfg.Autosave = false

	app := NewApp(commands.NewSampleTimeline(), filesystem.NewStore(), nil, failingOpener{}, cfg)
	t.Cleanup(app.Close)
	return app
}

func TestApp_HelpSwitching(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, ViewEditor, app.State())

	app.Update(views.SwitchToHelpMsg{})
	assert.Equal(t, ViewHelp, app.State())
	assert.Contains(t, app.View(), "Modes")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, ViewEditor, app.State())
}

func TestApp_KeysGoToActiveView(t *testing.T) {
	app := newTestApp(t)
	tl := app.Editor().Timeline()
	require.NoError(t, tl.SetTime(0.5))

	app.Update(views.SwitchToHelpMsg{})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Equal(t, 2, tl.Len(), "help view must not edit the timeline")

	app.Update(views.SwitchToEditorMsg{})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Equal(t, 3, tl.Len())
}

func TestApp_OpenEditorFailureReported(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(views.OpenEditorMsg{Path: app.Editor().Path()})
	require.NotNil(t, cmd)
	app.Update(cmd())

	editor := app.Editor()
	assert.True(t, editor.MessageErr)
	assert.Equal(t, "no editor found", editor.Message)
	assert.Equal(t, 3, len(editor.Timeline().Tracks()))
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, app.Editor().Width)
}

func TestApp_NoClipboard(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, "Clipboard not available", app.Editor().Message)
}
