package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"keyframer/internal/adapters/tui/styles"
	"keyframer/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s",
		styles.InputLabel.Render(label+":"),
		value,
	)
}

// RenderMode renders a mode name in its color
func RenderMode(m domain.Mode) string {
	name := m.String()
	return lipgloss.NewStyle().Foreground(styles.ModeColor(name)).Render(name)
}

// sliderPosition maps t onto a column of a slider width cells wide
func sliderPosition(t, lo, hi float64, width int) int {
	if width <= 1 || hi <= lo {
		return 0
	}
	frac := (t - lo) / (hi - lo)
	frac = math.Max(0, math.Min(1, frac))
	return int(math.Round(frac * float64(width-1)))
}

// RenderSlider draws the scrub range with a marker per keyframe and the
// cursor at the scrub position.
func RenderSlider(tl *domain.Timeline, lo, hi float64, width int) string {
	if width < 2 {
		width = 2
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = styles.SliderTrack.Render("─")
	}
	for _, k := range tl.Keyframes() {
		if k.Time() < lo || k.Time() > hi {
			continue
		}
		cells[sliderPosition(k.Time(), lo, hi, width)] = styles.SliderKeyframe.Render("◆")
	}
	cells[sliderPosition(tl.Time(), lo, hi, width)] = styles.SliderCursor.Render("┃")

	return fmt.Sprintf("%s %s %s",
		styles.MutedText.Render(domain.FormatNumber(lo)),
		strings.Join(cells, ""),
		styles.MutedText.Render(domain.FormatNumber(hi)),
	)
}

// RenderKeyframeList lists the keyframe times, highlighting the one at the
// scrub position.
func RenderKeyframeList(tl *domain.Timeline) string {
	keyframes := tl.Keyframes()
	if len(keyframes) == 0 {
		return styles.MutedText.Render("no keyframes")
	}

	var parts []string
	for _, k := range keyframes {
		label := fmt.Sprintf("%.2fs", k.Time())
		if k.Time() == tl.Time() {
			parts = append(parts, styles.KeyframeCurrent.Render(label))
		} else {
			parts = append(parts, styles.KeyframeTime.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// RenderNodeRow renders one node of the keyframe editor
func RenderNodeRow(n domain.Node, width int, selected bool) string {
	value := fmt.Sprintf("%8s", domain.FormatNumber(n.Value))
	text := fmt.Sprintf("%-*s %s  %-12s", width, n.Track, value, n.Mode)
	if selected {
		return styles.NodeSelected.Render(text)
	}
	return fmt.Sprintf("%-*s %s  %s", width, n.Track, value, RenderMode(n.Mode))
}
