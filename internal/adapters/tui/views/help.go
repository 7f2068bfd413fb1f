package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"keyframer/internal/adapters/tui/styles"
	"keyframer/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToEditorMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Keyframer Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Keyframe timeline editor"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Timeline"))
	b.WriteString("\n")
	b.WriteString(helpBinding(EditorKeys.Left, EditorKeys.Right))
	b.WriteString(helpBinding(EditorKeys.PrevKey, EditorKeys.NextKey))
	b.WriteString(helpBinding(EditorKeys.GotoTime))
	b.WriteString(helpBinding(EditorKeys.AddKey))
	b.WriteString(helpBinding(EditorKeys.RemoveKey))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Keyframe"))
	b.WriteString("\n")
	b.WriteString(helpBinding(EditorKeys.Up, EditorKeys.Down))
	b.WriteString(helpBinding(EditorKeys.NudgeUp, EditorKeys.NudgeDown))
	b.WriteString(helpBinding(EditorKeys.EditValue))
	b.WriteString(helpBinding(EditorKeys.CycleMode))
	b.WriteString(helpBinding(EditorKeys.AddTrack))
	b.WriteString(helpBinding(EditorKeys.RemoveTrack))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Files"))
	b.WriteString("\n")
	b.WriteString(helpBinding(EditorKeys.Save))
	b.WriteString(helpBinding(EditorKeys.Autosave))
	b.WriteString(helpBinding(EditorKeys.Export))
	b.WriteString(helpBinding(EditorKeys.ExportAll))
	b.WriteString(helpBinding(EditorKeys.Import))
	b.WriteString(helpBinding(EditorKeys.OpenEditor))
	b.WriteString(helpBinding(EditorKeys.Yank))
	b.WriteString(helpBinding(EditorKeys.YankHeader))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Modes"))
	b.WriteString("\n")
	var modes []string
	for _, mode := range domain.Modes() {
		modes = append(modes, RenderMode(mode))
	}
	b.WriteString("  " + strings.Join(modes, styles.HelpSeparator.String()))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

// helpBinding renders one help line for related bindings, e.g. "h/← / l/→"
func helpBinding(bindings ...key.Binding) string {
	var keys, descs []string
	for _, b := range bindings {
		keys = append(keys, b.Help().Key)
		descs = append(descs, b.Help().Desc)
	}
	return helpLine(strings.Join(keys, " / "), strings.Join(descs, ", "))
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
