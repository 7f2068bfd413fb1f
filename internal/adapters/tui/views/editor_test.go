package views

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyframer/internal/adapters/filesystem"
	"keyframer/internal/application/commands"
	"keyframer/internal/config"
	"keyframer/internal/domain"
)

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func (c *fakeClipboard) ReadAll() (string, error) {
	return c.text, nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *EditorModel, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func typeText(t *testing.T, m *EditorModel, text string) {
	t.Helper()
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newTestEditor(t *testing.T) (*EditorModel, *fakeClipboard, string) {
	t.Helper()
	cfg := config.Default()
	cfg.ProjectFile = filepath.Join(t.TempDir(), "anim")
	cfg.Autosave = false

	clip := &fakeClipboard{}
	tl := commands.NewSampleTimeline()
	m := NewEditorModel(tl, filesystem.NewStore(), clip, cfg)
	t.Cleanup(m.Close)
	return m, clip, m.Path()
}

func TestEditor_ProjectPathGetsJSONExtension(t *testing.T) {
	m, _, path := newTestEditor(t)
	assert.Equal(t, ".json", filepath.Ext(path))
	assert.Equal(t, path, m.Path())
}

func TestEditor_ScrubAndJump(t *testing.T) {
	m, _, _ := newTestEditor(t)
	tl := m.Timeline()

	press(t, m, runes("l"), runes("l"), runes("l"))
	assert.Equal(t, 0.03, tl.Time())

	press(t, m, runes("L"))
	assert.Equal(t, 1.0, tl.Time())

	press(t, m, runes("H"))
	assert.Equal(t, 0.0, tl.Time())

	// Clamped at the slider minimum
	press(t, m, runes("h"))
	assert.Equal(t, 0.0, tl.Time())
}

func TestEditor_AddRemoveKeyframe(t *testing.T) {
	m, _, _ := newTestEditor(t)
	tl := m.Timeline()
	require.NoError(t, tl.SetTime(0.5))

	press(t, m, runes("a"))
	assert.Equal(t, 3, tl.Len())
	assert.Contains(t, m.Message, "Added keyframe at 0.5")

	press(t, m, runes("x"))
	assert.Equal(t, 2, tl.Len())
	assert.Contains(t, m.Message, "Removed keyframe at 0.5")
}

func TestEditor_NudgeAndCycleMode(t *testing.T) {
	m, _, _ := newTestEditor(t)
	tl := m.Timeline()

	press(t, m, runes("j"), runes("+"), runes("+"), runes("+"), runes("-"))
	k, ok := tl.Keyframe(0)
	require.True(t, ok)
	node, _ := k.Node("color_G")
	assert.Equal(t, 0.2, node.Value)

	press(t, m, runes("m"), runes("m"))
	node, _ = k.Node("color_G")
	assert.Equal(t, domain.ModeQuadraticIn, node.Mode)
}

func TestEditor_NudgeWithoutKeyframe(t *testing.T) {
	m, _, _ := newTestEditor(t)
	require.NoError(t, m.Timeline().SetTime(0.5))

	press(t, m, runes("+"))
	assert.True(t, m.MessageErr)
	assert.Contains(t, m.Message, "No keyframe at 0.5")
}

func TestEditor_EditValuePrompt(t *testing.T) {
	m, _, _ := newTestEditor(t)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.PromptActive())

	// Replace the pre-filled value
	press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(t, m, "0.75")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.PromptActive())
	k, _ := m.Timeline().Keyframe(0)
	node, _ := k.Node("color_R")
	assert.Equal(t, 0.75, node.Value)
}

func TestEditor_EditValueRejectsGarbage(t *testing.T) {
	m, _, _ := newTestEditor(t)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(t, m, "abc")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.PromptActive(), "prompt stays open on error")
	assert.True(t, m.MessageErr)

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.PromptActive())
}

func TestEditor_AddTrackPrompt(t *testing.T) {
	m, _, _ := newTestEditor(t)

	press(t, m, runes("t"))
	typeText(t, m, "alpha")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	tl := m.Timeline()
	assert.True(t, tl.HasTrack("alpha"))
	assert.Equal(t, 3, m.Cursor())
	for _, k := range tl.Keyframes() {
		_, ok := k.Node("alpha")
		assert.True(t, ok, "keyframe %v missing alpha", k.Time())
	}
}

func TestEditor_RemoveTrackConfirm(t *testing.T) {
	m, _, _ := newTestEditor(t)
	tl := m.Timeline()

	press(t, m, runes("j"), runes("D"))
	assert.Contains(t, m.Message, "Remove track color_G")

	press(t, m, runes("n"))
	assert.True(t, tl.HasTrack("color_G"))

	press(t, m, runes("D"), runes("y"))
	assert.False(t, tl.HasTrack("color_G"))
	assert.Equal(t, []string{"color_R", "color_B"}, tl.Tracks())
}

func TestEditor_RemoveLastTrackClampsCursor(t *testing.T) {
	m, _, _ := newTestEditor(t)

	press(t, m, runes("j"), runes("j"), runes("D"), runes("y"))
	assert.Equal(t, 1, m.Cursor())
}

func TestEditor_GotoTime(t *testing.T) {
	m, _, _ := newTestEditor(t)

	press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(t, m, "2.346")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 2.35, m.Timeline().Time())
}

func TestEditor_Yank(t *testing.T) {
	m, clip, _ := newTestEditor(t)

	press(t, m, runes("y"))
	var rec domain.KeyframeRecord
	require.NoError(t, json.Unmarshal([]byte(clip.text), &rec))
	assert.Equal(t, 0.0, rec.Time)
	assert.Len(t, rec.Nodes, 3)

	press(t, m, runes("Y"))
	assert.Contains(t, clip.text, "constexpr Keyframe<float> color_R[] = {")
}

func TestEditor_AutosaveWritesPaddedJSON(t *testing.T) {
	m, _, path := newTestEditor(t)

	cmd := press(t, m, runes("s"))
	assert.True(t, m.Autosave())
	require.NotNil(t, cmd)

	// Execute the batched commands the way the runtime would
	drain(t, m, cmd)

	fs, err := filesystem.NewStore().LoadFrames(path, domain.FrameOptions{})
	require.NoError(t, err)
	assert.Len(t, fs.Tracks["color_R"], config.DefaultPadCount)
}

func TestEditor_AutosaveFollowsNodeEdits(t *testing.T) {
	m, _, path := newTestEditor(t)
	drain(t, m, press(t, m, runes("s")))
	require.NoError(t, os.Remove(path))

	// A node edit only notifies the keyframe; the editor must still save
	drain(t, m, press(t, m, runes("+")))

	tl, err := filesystem.NewStore().Load(path)
	require.NoError(t, err)
	k, _ := tl.Keyframe(0)
	node, _ := k.Node("color_R")
	assert.Equal(t, 0.1, node.Value)
}

func TestEditor_NoAutosaveWhenOff(t *testing.T) {
	m, _, path := newTestEditor(t)

	drain(t, m, press(t, m, runes("a")))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestEditor_ImportFailureKeepsTimeline(t *testing.T) {
	m, _, _ := newTestEditor(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"tracks": ["a", "a"]}`), 0644))

	m.Update(ReloadMsg{Path: bad})
	assert.True(t, m.MessageErr)
	assert.Contains(t, m.Message, "duplicate track")
	assert.Equal(t, 3, len(m.Timeline().Tracks()))
}

func TestEditor_View(t *testing.T) {
	m, _, _ := newTestEditor(t)
	m.SetSize(100, 40)

	view := m.View()
	assert.Contains(t, view, "Keyframer")
	assert.Contains(t, view, "0.00s")
	assert.Contains(t, view, "1.00s")
	assert.Contains(t, view, "color_R")
	assert.Contains(t, view, "3 tracks • 2 keyframes")

	require.NoError(t, m.Timeline().SetTime(0.5))
	assert.Contains(t, m.View(), "No keyframe at 0.5")
}

func TestEditor_HelpKey(t *testing.T) {
	m, _, _ := newTestEditor(t)

	cmd := press(t, m, runes("?"))
	require.NotNil(t, cmd)
	msgs := collect(cmd)
	assert.Contains(t, msgs, tea.Msg(SwitchToHelpMsg{}))
}

// drain runs cmd and feeds every resulting message back into the model
func drain(t *testing.T, m *EditorModel, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
}

// collect runs cmd, expanding batches, and returns the produced messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestEditor_AutosaveKeepsKeyframesBeyondPadCount(t *testing.T) {
	cfg := config.Default()
	cfg.ProjectFile = filepath.Join(t.TempDir(), "anim.json")
	cfg.Autosave = false
	cfg.PadCount = 2

	m := NewEditorModel(commands.NewSampleTimeline(), filesystem.NewStore(), &fakeClipboard{}, cfg)
	t.Cleanup(m.Close)
	require.NoError(t, m.Timeline().SetTime(2))

	drain(t, m, press(t, m, runes("s")))
	drain(t, m, press(t, m, runes("a")))

	tl, err := filesystem.NewStore().Load(m.Path())
	require.NoError(t, err)
	assert.Equal(t, 3, tl.Len())
}
