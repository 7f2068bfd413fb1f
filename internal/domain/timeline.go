package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Timeline is an ordered set of tracks and the keyframes that carry them.
// Every keyframe holds exactly one node per track, and no two keyframes
// share a rounded time.
type Timeline struct {
	Emitter

	time      float64
	tracks    []string
	keyframes []*Keyframe
}

// NewTimeline creates an empty timeline at time 0
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Time returns the scrub position
func (tl *Timeline) Time() float64 {
	return tl.time
}

// SetTime validates, rounds and stores the scrub position. It does not need
// to match a keyframe.
func (tl *Timeline) SetTime(t float64) error {
	rounded, err := checkTime("time", t)
	if err != nil {
		return err
	}
	tl.time = rounded
	tl.emit()
	return nil
}

// Step moves the scrub position by delta, clamping at zero
func (tl *Timeline) Step(delta float64) error {
	return tl.SetTime(max(0, tl.time+delta))
}

// Tracks returns the track names in insertion order
func (tl *Timeline) Tracks() []string {
	return slices.Clone(tl.tracks)
}

// HasTrack reports whether name is a track of this timeline
func (tl *Timeline) HasTrack(name string) bool {
	return slices.Contains(tl.tracks, name)
}

// AddTrack appends a track and a default node on every keyframe. Adding an
// existing track is a no-op.
func (tl *Timeline) AddTrack(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "track", Message: "track name is required"}
	}
	if tl.HasTrack(name) {
		return nil
	}

	for _, k := range tl.keyframes {
		if k.indexOf(name) >= 0 {
			return &ConflictError{Kind: "track", Name: name}
		}
	}

	tl.tracks = append(tl.tracks, name)
	for _, k := range tl.keyframes {
		k.addNode(name)
	}
	tl.emitTrackChange()
	return nil
}

// RemoveTrack removes a track and its node from every keyframe. Removing an
// unknown track is a no-op.
func (tl *Timeline) RemoveTrack(name string) error {
	i := slices.Index(tl.tracks, name)
	if i < 0 {
		return nil
	}

	for _, k := range tl.keyframes {
		if k.indexOf(name) < 0 {
			return &NotFoundError{Kind: "track", Name: name}
		}
	}

	tl.tracks = slices.Delete(tl.tracks, i, i+1)
	for _, k := range tl.keyframes {
		k.removeNode(k.indexOf(name))
	}
	tl.emitTrackChange()
	return nil
}

// emitTrackChange notifies every keyframe and then the timeline. It runs
// only after all keyframes carry the new track set.
func (tl *Timeline) emitTrackChange() {
	for _, k := range slices.Clone(tl.keyframes) {
		k.emit()
	}
	tl.emit()
}

// resolve turns an optional time argument into a lookup key, defaulting to
// the scrub position.
func (tl *Timeline) resolve(at []float64) float64 {
	if len(at) == 0 {
		return tl.time
	}
	return RoundTime(at[0])
}

// Keyframes returns the keyframes in ascending time order
func (tl *Timeline) Keyframes() []*Keyframe {
	sorted := slices.Clone(tl.keyframes)
	slices.SortFunc(sorted, func(a, b *Keyframe) int {
		return cmp.Compare(a.time, b.time)
	})
	return sorted
}

// Len returns the number of keyframes
func (tl *Timeline) Len() int {
	return len(tl.keyframes)
}

// Keyframe returns the keyframe at the given time, or at the scrub position
// when no time is passed. Absence is reported through ok, not an error.
func (tl *Timeline) Keyframe(at ...float64) (*Keyframe, bool) {
	key := tl.resolve(at)
	for _, k := range tl.keyframes {
		if k.time == key {
			return k, true
		}
	}
	return nil, false
}

// PreviousKeyframe returns the keyframe with the greatest time strictly
// before the given time (default: scrub position).
func (tl *Timeline) PreviousKeyframe(at ...float64) (*Keyframe, bool) {
	key := tl.resolve(at)
	var prev *Keyframe
	for _, k := range tl.Keyframes() {
		if k.time >= key {
			break
		}
		prev = k
	}
	return prev, prev != nil
}

// NextKeyframe returns the keyframe with the smallest time strictly after
// the given time (default: scrub position).
func (tl *Timeline) NextKeyframe(at ...float64) (*Keyframe, bool) {
	key := tl.resolve(at)
	for _, k := range tl.Keyframes() {
		if k.time > key {
			return k, true
		}
	}
	return nil, false
}

// AddKeyframe inserts a keyframe at the given time (default: scrub
// position). The new keyframe holds the values of the previous keyframe, or
// defaults when there is none. If a keyframe already exists at that time it
// is returned unchanged and no notification is sent.
func (tl *Timeline) AddKeyframe(at ...float64) (*Keyframe, error) {
	key := tl.resolve(at)
	if len(at) > 0 {
		var err error
		if key, err = checkTime("time", at[0]); err != nil {
			return nil, err
		}
	}
	if k, ok := tl.Keyframe(key); ok {
		return k, nil
	}

	k, err := NewKeyframe(key, tl.tracks)
	if err != nil {
		return nil, err
	}
	if prev, ok := tl.PreviousKeyframe(key); ok {
		if err := k.CopyFrom(key, prev); err != nil {
			return nil, err
		}
	}

	tl.adopt(k)
	tl.keyframes = append(tl.keyframes, k)
	tl.emit()
	return k, nil
}

// RemoveKeyframe deletes the keyframe at the given time (default: scrub
// position). Removing a missing keyframe is a no-op.
func (tl *Timeline) RemoveKeyframe(at ...float64) {
	key := tl.resolve(at)
	i := slices.IndexFunc(tl.keyframes, func(k *Keyframe) bool { return k.time == key })
	if i < 0 {
		return
	}
	tl.keyframes[i].claim = nil
	tl.keyframes = slices.Delete(tl.keyframes, i, i+1)
	tl.emit()
}

// MoveKeyframe re-times the keyframe at from to to
func (tl *Timeline) MoveKeyframe(from, to float64) error {
	k, ok := tl.Keyframe(from)
	if !ok {
		return &NotFoundError{Kind: "keyframe", Name: FormatNumber(RoundTime(from))}
	}
	rounded, err := checkTime("time", to)
	if err != nil {
		return err
	}
	if rounded == k.time {
		return nil
	}
	if err := k.SetTime(rounded); err != nil {
		return err
	}
	tl.emit()
	return nil
}

// adopt makes the timeline the owner of k
func (tl *Timeline) adopt(k *Keyframe) {
	k.claim = tl.claimTime
}

func (tl *Timeline) claimTime(k *Keyframe, t float64) error {
	for _, other := range tl.keyframes {
		if other != k && other.time == t {
			return &ConflictError{Kind: "keyframe", Name: FormatNumber(t)}
		}
	}
	return nil
}

// Replace swaps in the state of other and emits a single change. other is
// left empty so that no keyframe is owned twice.
func (tl *Timeline) Replace(other *Timeline) {
	for _, k := range tl.keyframes {
		k.claim = nil
	}

	tl.time = other.time
	tl.tracks = other.tracks
	tl.keyframes = other.keyframes
	for _, k := range tl.keyframes {
		tl.adopt(k)
	}

	other.time = 0
	other.tracks = nil
	other.keyframes = nil
	tl.emit()
}

// Clone returns a deep copy of the timeline without subscribers
func (tl *Timeline) Clone() *Timeline {
	c := &Timeline{time: tl.time, tracks: slices.Clone(tl.tracks)}
	for _, k := range tl.keyframes {
		kc := k.clone()
		c.adopt(kc)
		c.keyframes = append(c.keyframes, kc)
	}
	return c
}

// String summarizes the timeline for logs and status lines
func (tl *Timeline) String() string {
	return fmt.Sprintf("timeline(time=%s, tracks=%d, keyframes=%d)",
		FormatNumber(tl.time), len(tl.tracks), len(tl.keyframes))
}
