package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"keyframer/internal/adapters/tui/views"
	"keyframer/internal/config"
	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewEditor ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	opener ports.EditorOpener

	state  ViewState
	editor *views.EditorModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application editing tl
func NewApp(tl *domain.Timeline, store ports.TimelineStore, clip ports.Clipboard, ed ports.EditorOpener, cfg config.Config) *App {
	return &App{
		opener: ed,
		state:  ViewEditor,
		editor: views.NewEditorModel(tl, store, clip, cfg),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Editor returns the editor view model
func (a *App) Editor() *views.EditorModel {
	return a.editor
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToEditorMsg:
		a.state = ViewEditor
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewEditor
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		_, cmd := a.editor.Update(views.ReloadMsg{Path: msg.path, Err: msg.err})
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewEditor:
		_, cmd = a.editor.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	path string
	err  error
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.opener == nil {
		return nil
	}

	cmd, err := a.opener.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.editor.View()
	}
}

// Close releases the editor's subscriptions on the timeline
func (a *App) Close() {
	a.editor.Close()
}
