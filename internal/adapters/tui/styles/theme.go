package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Mode colors
	ModeStepColor         = lipgloss.Color("#9CA3AF") // Light gray
	ModeLinearColor       = lipgloss.Color("#60A5FA") // Blue
	ModeQuadraticInColor  = lipgloss.Color("#F97316") // Orange
	ModeQuadraticOutColor = lipgloss.Color("#EC4899") // Pink
	ModeSmoothstepColor   = lipgloss.Color("#34D399") // Teal

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Panes
	Pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	PaneTitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Timeline
	SliderTrack = lipgloss.NewStyle().Foreground(Muted)

	SliderKeyframe = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	SliderCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	KeyframeTime = lipgloss.NewStyle().
			Padding(0, 1)

	KeyframeCurrent = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	// Node rows
	NodeRow = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusOff = lipgloss.NewStyle().
			Background(Muted).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ModeColor returns the color for an interpolation mode name
func ModeColor(mode string) lipgloss.Color {
	switch mode {
	case "Step":
		return ModeStepColor
	case "Linear":
		return ModeLinearColor
	case "QuadraticIn":
		return ModeQuadraticInColor
	case "QuadraticOut":
		return ModeQuadraticOutColor
	case "Smoothstep":
		return ModeSmoothstepColor
	default:
		return Primary
	}
}
