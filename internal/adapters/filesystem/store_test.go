package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"keyframer/internal/domain"
)

func newColorTimeline(t *testing.T) *domain.Timeline {
	t.Helper()
	tl := domain.NewTimeline()
	for _, track := range []string{"color_R", "color_G", "color_B"} {
		if err := tl.AddTrack(track); err != nil {
			t.Fatalf("AddTrack failed: %v", err)
		}
	}
	_, _ = tl.AddKeyframe(0)
	k, _ := tl.AddKeyframe(1)
	_ = k.Set("color_R", domain.WithValue(1), domain.WithMode(domain.ModeLinear))
	return tl
}

func TestStore_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.json")
	store := NewStore()
	tl := newColorTimeline(t)

	if err := store.ExportJSON(tl, path); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Len() != 2 || len(got.Tracks()) != 3 {
		t.Errorf("unexpected timeline %s", got)
	}
}

func TestStore_ExportJSONLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "anim.json")
	store := NewStore()

	if err := store.ExportJSON(newColorTimeline(t), path, domain.WithPadCount(255)); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	// Second write replaces the first
	if err := store.ExportJSON(newColorTimeline(t), path); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "anim.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only anim.json, got %v", names)
	}
}

func TestStore_ExportKeepsFileMode(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	fresh := filepath.Join(dir, "fresh.json")
	if err := store.ExportJSON(newColorTimeline(t), fresh); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	info, err := os.Stat(fresh)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("new file mode = %v, expected 0644", info.Mode().Perm())
	}

	private := filepath.Join(dir, "private.json")
	if err := os.WriteFile(private, []byte("{}"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.Chmod(private, 0600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}
	if err := store.ExportJSON(newColorTimeline(t), private); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	info, err = os.Stat(private)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("replaced file mode = %v, expected 0600", info.Mode().Perm())
	}
}

func TestStore_ExportJSONNegativePad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.json")

	err := NewStore().ExportJSON(newColorTimeline(t), path, domain.WithPadCount(-1))
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file was written despite failure")
	}
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	_, err := store.Load(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, domain.ErrIO) {
		t.Errorf("missing file: expected io error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"tracks": ["x", "x"]}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err = store.Load(bad)
	var fe *domain.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("bad file: expected FormatError, got %v", err)
	}
	if fe.Path != bad {
		t.Errorf("expected path %s in error, got %q", bad, fe.Path)
	}
	if !strings.Contains(err.Error(), "invalid keyframe file "+bad) {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestStore_ExportHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.h")

	if err := NewStore().ExportHeader(newColorTimeline(t), path); err != nil {
		t.Fatalf("ExportHeader failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), domain.HeaderNotice) {
		t.Errorf("header missing notice:\n%s", data)
	}
	if !strings.Contains(string(data), "constexpr Keyframe<float> color_B[] = {") {
		t.Errorf("header missing color_B array:\n%s", data)
	}
}

func TestStore_ExportExcel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.xlsx")
	tl := newColorTimeline(t)
	k, _ := tl.Keyframe(1)
	_ = k.Set("color_B", domain.WithValue(0.25))

	if err := NewStore().ExportExcel(tl, path); err != nil {
		t.Fatalf("ExportExcel failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{cell: "A1", want: ""},
		{cell: "B1", want: "0"},
		{cell: "C1", want: "1"},
		{cell: "A2", want: "color_R"},
		{cell: "C2", want: "1"},
		{cell: "A4", want: "color_B"},
		{cell: "B4", want: "0"},
		{cell: "C4", want: "0.25"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(SheetName, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, expected %q", tt.cell, got, tt.want)
		}
	}
}

func TestStore_LoadFrames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.json")
	store := NewStore()

	if err := store.ExportJSON(newColorTimeline(t), path, domain.WithPadCount(255)); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	fs, err := store.LoadFrames(path, domain.FrameOptions{Tracks: []string{"color_R"}})
	if err != nil {
		t.Fatalf("LoadFrames failed: %v", err)
	}
	if got := len(fs.Tracks["color_R"]); got != domain.DefaultMaxFrames {
		t.Errorf("expected %d frames, got %d", domain.DefaultMaxFrames, got)
	}
	if _, ok := fs.Tracks["color_G"]; ok {
		t.Error("filtered track was loaded")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/anim.json"); got != filepath.Join(home, "anim.json") {
		t.Errorf("ExpandPath = %s", got)
	}
	if got := ExpandPath("/tmp/anim.json"); got != "/tmp/anim.json" {
		t.Errorf("absolute path changed: %s", got)
	}
}
