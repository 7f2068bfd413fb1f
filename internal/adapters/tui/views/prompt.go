package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"keyframer/internal/adapters/tui/styles"
)

// PromptKind identifies what a submitted prompt value is used for
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptAddTrack
	PromptValue
	PromptTime
	PromptExport
	PromptImport
)

// PromptKeyMap defines key bindings for the prompt
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// PromptKeys are the default prompt key bindings
var PromptKeys = PromptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// Prompt is a single-line input shown under the editor panes
type Prompt struct {
	Kind  PromptKind
	Label string
	Input textinput.Model
}

// NewPrompt creates an inactive prompt
func NewPrompt() *Prompt {
	input := textinput.New()
	input.CharLimit = 256
	return &Prompt{Input: input}
}

// Open activates the prompt for kind, pre-filled with value
func (p *Prompt) Open(kind PromptKind, label, placeholder, value string) tea.Cmd {
	p.Kind = kind
	p.Label = label
	p.Input.Placeholder = placeholder
	p.Input.SetValue(value)
	p.Input.CursorEnd()
	p.Input.Focus()
	return textinput.Blink
}

// Close deactivates the prompt
func (p *Prompt) Close() {
	p.Kind = PromptNone
	p.Input.Blur()
	p.Input.SetValue("")
}

// Active reports whether the prompt has focus
func (p *Prompt) Active() bool {
	return p.Kind != PromptNone
}

// Value returns the trimmed input
func (p *Prompt) Value() string {
	return strings.TrimSpace(p.Input.Value())
}

// Update feeds a message to the input. submitted is true when the user
// pressed enter; the prompt stays open so the caller can read Kind and Value.
func (p *Prompt) Update(msg tea.Msg) (submitted bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, PromptKeys.Submit):
			return true, nil
		case key.Matches(keyMsg, PromptKeys.Cancel):
			p.Close()
			return false, nil
		}
	}

	p.Input, cmd = p.Input.Update(msg)
	return false, cmd
}

// View renders the label, input box and key help
func (p *Prompt) View() string {
	if !p.Active() {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(p.Label))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(p.Input.View()))
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(PromptKeys.Submit, PromptKeys.Cancel))
	return b.String()
}
