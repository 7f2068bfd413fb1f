package views

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"keyframer/internal/adapters/tui/styles"
	"keyframer/internal/application"
	"keyframer/internal/application/commands"
	"keyframer/internal/config"
	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

// EditorKeyMap defines key bindings for the editor view
type EditorKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	PrevKey     key.Binding
	NextKey     key.Binding
	Up          key.Binding
	Down        key.Binding
	AddKey      key.Binding
	RemoveKey   key.Binding
	AddTrack    key.Binding
	RemoveTrack key.Binding
	NudgeUp     key.Binding
	NudgeDown   key.Binding
	CycleMode   key.Binding
	EditValue   key.Binding
	GotoTime    key.Binding
	Autosave    key.Binding
	Save        key.Binding
	Export      key.Binding
	ExportAll   key.Binding
	Import      key.Binding
	OpenEditor  key.Binding
	Yank        key.Binding
	YankHeader  key.Binding
	Help        key.Binding
	Quit        key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

var EditorKeys = EditorKeyMap{
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scrub back"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scrub forward"),
	),
	PrevKey: key.NewBinding(
		key.WithKeys("H", "shift+left"),
		key.WithHelp("H", "previous keyframe"),
	),
	NextKey: key.NewBinding(
		key.WithKeys("L", "shift+right"),
		key.WithHelp("L", "next keyframe"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	AddKey: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add keyframe"),
	),
	RemoveKey: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove keyframe"),
	),
	AddTrack: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "add track"),
	),
	RemoveTrack: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "remove track"),
	),
	NudgeUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "value up"),
	),
	NudgeDown: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "value down"),
	),
	CycleMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "cycle mode"),
	),
	EditValue: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit value"),
	),
	GotoTime: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "go to time"),
	),
	Autosave: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle autosave"),
	),
	Save: key.NewBinding(
		key.WithKeys("w", "ctrl+s"),
		key.WithHelp("w", "save"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	ExportAll: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "export all"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import"),
	),
	OpenEditor: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in $EDITOR"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy keyframe"),
	),
	YankHeader: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy header"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "cancel"),
	),
}

// saver orders background writes so an older snapshot never lands after a
// newer one.
type saver struct {
	mu      sync.Mutex
	written uint64
}

// EditorModel is the model for the timeline and keyframe editor
type EditorModel struct {
	ViewState

	tl    *domain.Timeline
	store ports.TimelineStore
	clip  ports.Clipboard
	cfg   config.Config

	path     string
	autosave bool

	cursor       int
	prompt       *Prompt
	confirmTrack string

	// Subscriptions: the timeline, and the keyframe at the scrub position
	tlHandle domain.Handle
	bound    *domain.Keyframe
	kfHandle domain.Handle
	updating bool

	dirty bool
	gen   uint64
	saver *saver
}

// NewEditorModel creates a new editor bound to tl
func NewEditorModel(tl *domain.Timeline, store ports.TimelineStore, clip ports.Clipboard, cfg config.Config) *EditorModel {
	m := &EditorModel{
		tl:       tl,
		store:    store,
		clip:     clip,
		cfg:      cfg,
		path:     application.EnsureJSONExt(cfg.ProjectFile),
		autosave: cfg.Autosave,
		prompt:   NewPrompt(),
		saver:    &saver{},
	}
	m.tlHandle = tl.OnChange(m.onTimelineChange)
	m.rebind()
	return m
}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Close drops the model's subscriptions
func (m *EditorModel) Close() {
	m.tl.Off(m.tlHandle)
	if m.bound != nil {
		m.bound.Off(m.kfHandle)
		m.bound = nil
	}
}

// Timeline returns the edited timeline
func (m *EditorModel) Timeline() *domain.Timeline {
	return m.tl
}

// Path returns the project file
func (m *EditorModel) Path() string {
	return m.path
}

// Autosave reports whether changes are written to the project file
func (m *EditorModel) Autosave() bool {
	return m.autosave
}

// Cursor returns the selected track row
func (m *EditorModel) Cursor() int {
	return m.cursor
}

// PromptActive reports whether the input prompt has focus
func (m *EditorModel) PromptActive() bool {
	return m.prompt.Active()
}

// onTimelineChange refreshes the view state after any model change. The
// guard drops notifications raised while it is already running.
func (m *EditorModel) onTimelineChange() {
	if m.updating {
		return
	}
	m.updating = true
	defer func() { m.updating = false }()

	m.rebind()
	m.clampCursor()
	m.dirty = true
}

// rebind moves the keyframe subscription to the keyframe at the scrub
// position. Node edits only notify the keyframe, so they reach the editor
// through this subscription.
func (m *EditorModel) rebind() {
	k, _ := m.tl.Keyframe()
	if k == m.bound {
		return
	}
	if m.bound != nil {
		m.bound.Off(m.kfHandle)
		m.bound = nil
	}
	if k != nil {
		m.kfHandle = k.OnChange(m.onTimelineChange)
		m.bound = k
	}
}

func (m *EditorModel) clampCursor() {
	n := len(m.tl.Tracks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case savedMsg:
		switch {
		case msg.err != nil:
			m.SetError(msg.err)
		case !msg.auto:
			m.SetMessage(msg.message, false)
		}
		return m, nil

	case ReloadMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.importFile(msg.Path)

	case tea.KeyMsg:
		switch {
		case m.prompt.Active():
			cmd = m.handlePrompt(msg)
		case m.confirmTrack != "":
			m.handleConfirm(msg)
		default:
			m.ClearMessage()
			cmd = m.handleKey(msg)
		}

	default:
		if m.prompt.Active() {
			_, cmd = m.prompt.Update(msg)
		}
	}

	return m, tea.Batch(cmd, m.flush())
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()

	switch {
	case key.Matches(msg, EditorKeys.Quit):
		return tea.Quit

	case key.Matches(msg, EditorKeys.Left):
		m.scrub(-m.cfg.Slider.Step)

	case key.Matches(msg, EditorKeys.Right):
		m.scrub(m.cfg.Slider.Step)

	case key.Matches(msg, EditorKeys.PrevKey):
		if k, ok := m.tl.PreviousKeyframe(); ok {
			m.setTime(k.Time())
		}

	case key.Matches(msg, EditorKeys.NextKey):
		if k, ok := m.tl.NextKeyframe(); ok {
			m.setTime(k.Time())
		}

	case key.Matches(msg, EditorKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, EditorKeys.Down):
		if m.cursor < len(m.tl.Tracks())-1 {
			m.cursor++
		}

	case key.Matches(msg, EditorKeys.AddKey):
		res, err := commands.NewAddKeyframeCommand(m.tl, nil).Execute(ctx)
		m.report(res, err)

	case key.Matches(msg, EditorKeys.RemoveKey):
		res, err := commands.NewRemoveKeyframeCommand(m.tl, nil).Execute(ctx)
		m.report(res, err)

	case key.Matches(msg, EditorKeys.AddTrack):
		return m.prompt.Open(PromptAddTrack, "Add Track", "track name", "")

	case key.Matches(msg, EditorKeys.RemoveTrack):
		if track, ok := m.selectedTrack(); ok {
			m.confirmTrack = track
			m.SetMessage(fmt.Sprintf("Remove track %s from every keyframe? (y/n)", track), false)
		}

	case key.Matches(msg, EditorKeys.NudgeUp):
		m.nudge(m.cfg.NudgeStep)

	case key.Matches(msg, EditorKeys.NudgeDown):
		m.nudge(-m.cfg.NudgeStep)

	case key.Matches(msg, EditorKeys.CycleMode):
		if node, ok := m.selectedNode(); ok {
			mode := node.Mode.Next()
			m.setNode(node.Track, nil, &mode)
		}

	case key.Matches(msg, EditorKeys.EditValue):
		if node, ok := m.selectedNode(); ok {
			label := fmt.Sprintf("Value of %s @ %s", node.Track, domain.FormatNumber(m.tl.Time()))
			return m.prompt.Open(PromptValue, label, "number", domain.FormatNumber(node.Value))
		}

	case key.Matches(msg, EditorKeys.GotoTime):
		return m.prompt.Open(PromptTime, "Go to Time", "seconds", domain.FormatNumber(m.tl.Time()))

	case key.Matches(msg, EditorKeys.Autosave):
		m.autosave = !m.autosave
		if m.autosave {
			m.dirty = true
			m.SetMessage("Autosave on", false)
		} else {
			m.SetMessage("Autosave off", false)
		}

	case key.Matches(msg, EditorKeys.Save):
		return m.saveCmd(false)

	case key.Matches(msg, EditorKeys.Export):
		base := strings.TrimSuffix(m.path, filepath.Ext(m.path))
		return m.prompt.Open(PromptExport, "Export To (.json, .xlsx or .h)", "path", base+".h")

	case key.Matches(msg, EditorKeys.ExportAll):
		return m.exportAllCmd()

	case key.Matches(msg, EditorKeys.Import):
		return m.prompt.Open(PromptImport, "Import From", "path", m.path)

	case key.Matches(msg, EditorKeys.OpenEditor):
		path := m.path
		return tea.Sequence(m.saveCmd(false), func() tea.Msg {
			return OpenEditorMsg{Path: path}
		})

	case key.Matches(msg, EditorKeys.Yank):
		m.yankKeyframe()

	case key.Matches(msg, EditorKeys.YankHeader):
		m.yankHeader()

	case key.Matches(msg, EditorKeys.Help):
		return func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return nil
}

func (m *EditorModel) handlePrompt(msg tea.KeyMsg) tea.Cmd {
	submitted, cmd := m.prompt.Update(msg)
	if !submitted {
		return cmd
	}

	ctx := context.Background()
	value := m.prompt.Value()

	switch m.prompt.Kind {
	case PromptAddTrack:
		res, err := commands.NewAddTrackCommand(m.tl, value).Execute(ctx)
		if err != nil {
			m.SetError(err)
			return nil
		}
		m.SetMessage(res.Message, false)
		m.cursor = len(m.tl.Tracks()) - 1

	case PromptValue:
		v, err := application.ParseValue(value)
		if err != nil {
			m.SetError(err)
			return nil
		}
		node, ok := m.selectedNode()
		if !ok {
			m.prompt.Close()
			return nil
		}
		if err := m.setNode(node.Track, &v, nil); err != nil {
			return nil
		}

	case PromptTime:
		t, err := application.ParseTime("time", value)
		if err != nil {
			m.SetError(err)
			return nil
		}
		m.setTime(t)

	case PromptExport:
		format, err := application.FormatForPath(value)
		if err != nil {
			m.SetError(err)
			return nil
		}
		m.prompt.Close()
		return m.exportCmd(format, value)

	case PromptImport:
		if !m.importFile(value) {
			return nil
		}
	}

	m.prompt.Close()
	return nil
}

func (m *EditorModel) handleConfirm(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, EditorKeys.Confirm):
		res, err := commands.NewRemoveTrackCommand(m.tl, m.confirmTrack).Execute(context.Background())
		m.confirmTrack = ""
		if err != nil {
			m.SetError(err)
			return
		}
		m.SetMessage(res.Message, false)
	case key.Matches(msg, EditorKeys.Cancel):
		m.confirmTrack = ""
		m.ClearMessage()
	}
}

// report shows the outcome of a keyframe command
func (m *EditorModel) report(res *commands.KeyframeResult, err error) {
	if err != nil {
		m.SetError(err)
		return
	}
	m.SetMessage(res.Message, false)
}

// scrub moves the scrub position by delta within the slider range
func (m *EditorModel) scrub(delta float64) {
	t := m.tl.Time() + delta
	t = math.Max(m.cfg.Slider.Min, math.Min(m.cfg.Slider.Max, t))
	m.setTime(t)
}

func (m *EditorModel) setTime(t float64) {
	if _, err := commands.NewSetTimeCommand(m.tl, t).Execute(context.Background()); err != nil {
		m.SetError(err)
	}
}

func (m *EditorModel) nudge(delta float64) {
	node, ok := m.selectedNode()
	if !ok {
		return
	}
	v := math.Round((node.Value+delta)*10) / 10
	m.setNode(node.Track, &v, nil)
}

func (m *EditorModel) setNode(track string, value *float64, mode *domain.Mode) error {
	_, err := commands.NewSetNodeCommand(m.tl, nil, track, value, mode).Execute(context.Background())
	if err != nil {
		m.SetError(err)
	}
	return err
}

func (m *EditorModel) importFile(path string) bool {
	res, err := commands.NewImportCommand(m.store, m.tl, path).Execute(context.Background())
	if err != nil {
		m.SetError(err)
		return false
	}
	m.SetMessage(res.Message, false)
	return true
}

func (m *EditorModel) selectedTrack() (string, bool) {
	tracks := m.tl.Tracks()
	if m.cursor < 0 || m.cursor >= len(tracks) {
		return "", false
	}
	return tracks[m.cursor], true
}

// selectedNode returns the selected track's node on the keyframe at the
// scrub position.
func (m *EditorModel) selectedNode() (domain.Node, bool) {
	track, ok := m.selectedTrack()
	if !ok {
		return domain.Node{}, false
	}
	k, ok := m.tl.Keyframe()
	if !ok {
		m.SetMessage(fmt.Sprintf("No keyframe at %s (press a to add one)", domain.FormatNumber(m.tl.Time())), true)
		return domain.Node{}, false
	}
	return k.Node(track)
}

func (m *EditorModel) yankKeyframe() {
	k, ok := m.tl.Keyframe()
	if !ok {
		m.SetMessage(fmt.Sprintf("No keyframe at %s", domain.FormatNumber(m.tl.Time())), true)
		return
	}
	data, err := json.MarshalIndent(k.Serialize(), "", "    ")
	if err != nil {
		m.SetError(err)
		return
	}
	m.copy(string(data), fmt.Sprintf("Copied keyframe %s", domain.FormatNumber(k.Time())))
}

func (m *EditorModel) yankHeader() {
	var b strings.Builder
	if err := m.tl.EncodeHeader(&b); err != nil {
		m.SetError(err)
		return
	}
	m.copy(b.String(), "Copied header")
}

func (m *EditorModel) copy(text, message string) {
	if m.clip == nil {
		m.SetMessage("Clipboard not available", true)
		return
	}
	if err := m.clip.WriteAll(text); err != nil {
		m.SetError(err)
		return
	}
	m.SetMessage(message, false)
}

// flush schedules an autosave when the model changed since the last one
func (m *EditorModel) flush() tea.Cmd {
	if !m.dirty {
		return nil
	}
	m.dirty = false
	if !m.autosave {
		return nil
	}
	return m.saveCmd(true)
}

// saveCmd writes the padded JSON export of a snapshot in the background
func (m *EditorModel) saveCmd(auto bool) tea.Cmd {
	snapshot := m.tl.Clone()
	path := m.path
	pad := m.cfg.PadCount
	store := m.store
	s := m.saver
	m.gen++
	gen := m.gen

	return func() tea.Msg {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen <= s.written {
			return nil
		}
		if err := store.ExportJSON(snapshot, path, domain.WithPadAtLeast(pad)); err != nil {
			return savedMsg{path: path, err: err, auto: auto}
		}
		s.written = gen
		return savedMsg{path: path, message: "Saved " + path, auto: auto}
	}
}

func (m *EditorModel) exportCmd(format application.ExportFormat, path string) tea.Cmd {
	snapshot := m.tl.Clone()
	store := m.store

	return func() tea.Msg {
		res, err := commands.NewExportCommand(store, snapshot, format, path, nil).Execute(context.Background())
		if err != nil {
			return savedMsg{path: path, err: err}
		}
		return savedMsg{path: path, message: res.Message}
	}
}

func (m *EditorModel) exportAllCmd() tea.Cmd {
	snapshot := m.tl.Clone()
	store := m.store
	dir := filepath.Dir(m.path)
	base := strings.TrimSuffix(filepath.Base(m.path), filepath.Ext(m.path))
	pad := m.cfg.PadCount

	return func() tea.Msg {
		res, err := commands.NewExportAllCommand(store, snapshot, dir, base, &pad).Execute(context.Background())
		if err != nil {
			return savedMsg{path: dir, err: err}
		}
		return savedMsg{path: dir, message: res.Message}
	}
}

// View renders the editor
func (m *EditorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Keyframer"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.path))
	b.WriteString("\n\n")

	b.WriteString(m.renderTimelinePane())
	b.WriteString("\n")
	b.WriteString(m.renderKeyframePane())
	b.WriteString("\n")

	if m.prompt.Active() {
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *EditorModel) sliderWidth() int {
	if m.Width <= 0 {
		return 50
	}
	return max(10, m.Width-24)
}

func (m *EditorModel) renderTimelinePane() string {
	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Timeline"))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("Time", domain.FormatNumber(m.tl.Time())))
	b.WriteString("\n")
	b.WriteString(RenderSlider(m.tl, m.cfg.Slider.Min, m.cfg.Slider.Max, m.sliderWidth()))
	b.WriteString("\n")
	b.WriteString(RenderKeyframeList(m.tl))
	return styles.Pane.Render(b.String())
}

func (m *EditorModel) renderKeyframePane() string {
	var b strings.Builder

	k, ok := m.tl.Keyframe()
	if ok {
		b.WriteString(styles.PaneTitle.Render(fmt.Sprintf("Keyframe %s", domain.FormatNumber(k.Time()))))
	} else {
		b.WriteString(styles.PaneTitle.Render("Keyframe"))
	}
	b.WriteString("\n")

	tracks := m.tl.Tracks()
	switch {
	case len(tracks) == 0:
		b.WriteString(styles.MutedText.Render("No tracks (press t to add one)"))
	case !ok:
		b.WriteString(styles.MutedText.Render(
			fmt.Sprintf("No keyframe at %s (press a to add one)", domain.FormatNumber(m.tl.Time()))))
	default:
		width := 0
		for _, track := range tracks {
			width = max(width, len(track))
		}
		for i, track := range tracks {
			node, _ := k.Node(track)
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(RenderNodeRow(node, width, i == m.cursor))
		}
	}

	return styles.Pane.Render(b.String())
}

func (m *EditorModel) renderStatusBar() string {
	indicator := styles.StatusOff.Render("autosave off")
	if m.autosave {
		indicator = styles.StatusKey.Render("autosave")
	}
	text := fmt.Sprintf("%d tracks • %d keyframes", len(m.tl.Tracks()), m.tl.Len())
	return indicator + styles.StatusBar.Render(text)
}

func (m *EditorModel) renderHelpLine() string {
	if m.confirmTrack != "" {
		return RenderHelpLine(EditorKeys.Confirm, EditorKeys.Cancel)
	}
	return RenderHelpLine(
		EditorKeys.Left,
		EditorKeys.Up,
		EditorKeys.AddKey,
		EditorKeys.NudgeUp,
		EditorKeys.CycleMode,
		EditorKeys.Help,
		EditorKeys.Quit,
	)
}
