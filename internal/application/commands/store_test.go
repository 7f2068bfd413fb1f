package commands

import (
	"bytes"
	"strings"
	"sync"

	"keyframer/internal/domain"
)

// memStore is an in-memory TimelineStore keyed by path
type memStore struct {
	mu    sync.Mutex
	files map[string][]byte
	fail  map[string]error
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string][]byte), fail: make(map[string]error)}
}

func (s *memStore) put(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail[path]; err != nil {
		return err
	}
	s.files[path] = data
	return nil
}

func (s *memStore) get(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, &domain.IOError{Op: "open", Path: path, Err: errMissing}
	}
	return data, nil
}

func (s *memStore) Load(path string) (*domain.Timeline, error) {
	data, err := s.get(path)
	if err != nil {
		return nil, err
	}
	return domain.DecodeTimeline(bytes.NewReader(data))
}

func (s *memStore) ExportJSON(tl *domain.Timeline, path string, opts ...domain.ExportOption) error {
	var buf bytes.Buffer
	if err := tl.EncodeJSON(&buf, opts...); err != nil {
		return err
	}
	return s.put(path, buf.Bytes())
}

func (s *memStore) ExportExcel(tl *domain.Timeline, path string) error {
	g := tl.Grid()
	var b strings.Builder
	for _, row := range g.Rows {
		b.WriteString(row.Track + "\n")
	}
	return s.put(path, []byte(b.String()))
}

func (s *memStore) ExportHeader(tl *domain.Timeline, path string) error {
	var b strings.Builder
	if err := tl.EncodeHeader(&b); err != nil {
		return err
	}
	return s.put(path, []byte(b.String()))
}

func (s *memStore) LoadFrames(path string, opts domain.FrameOptions) (*domain.FrameSet, error) {
	data, err := s.get(path)
	if err != nil {
		return nil, err
	}
	return domain.DecodeFrames(bytes.NewReader(data), opts)
}

type storeError string

func (e storeError) Error() string { return string(e) }

const errMissing = storeError("no such file")

func newColorTimeline() *domain.Timeline {
	tl := domain.NewTimeline()
	for _, track := range []string{"color_R", "color_G", "color_B"} {
		_ = tl.AddTrack(track)
	}
	_, _ = tl.AddKeyframe(0)
	k, _ := tl.AddKeyframe(1)
	_ = k.Set("color_R", domain.WithValue(1), domain.WithMode(domain.ModeLinear))
	return tl
}

func ptr[T any](v T) *T {
	return &v
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
