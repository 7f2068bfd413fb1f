package domain

import (
	"fmt"
	"io"
	"slices"
)

// DefaultMaxFrames is the per-track capacity of the engine's frame buffers
const DefaultMaxFrames = 255

// Frame is one row of a per-track playback array
type Frame struct {
	Time  float64
	Value float64
	Mode  Mode
}

// FrameSet is an exported document regrouped by track, as the playback
// engine consumes it.
type FrameSet struct {
	Time   float64
	Tracks map[string][]Frame
}

// FrameOptions controls DecodeFrames
type FrameOptions struct {
	// Tracks restricts loading to these names; nodes of other tracks are
	// skipped. Nil loads every track.
	Tracks []string
	// Max caps the frames kept per track; extras are skipped. Zero means
	// DefaultMaxFrames.
	Max int
}

// DecodeFrames reads an exported JSON document into per-track frame arrays
// in document order. Padding entries are kept as they appear.
func DecodeFrames(r io.Reader, opts FrameOptions) (*FrameSet, error) {
	raw, err := decodeRaw(r)
	if err != nil {
		return nil, err
	}

	limit := opts.Max
	if limit <= 0 {
		limit = DefaultMaxFrames
	}

	fs := &FrameSet{Tracks: make(map[string][]Frame)}
	if raw.Time != nil {
		fs.Time = *raw.Time
	}

	for i, rk := range raw.Keyframes {
		if rk.Time == nil {
			return nil, formatErrorf("keyframe %d: missing time", i)
		}
		for j, rn := range rk.Nodes {
			if rn.Track == nil || rn.Value == nil || rn.Mode == nil {
				return nil, formatErrorf("keyframe %d node %d: incomplete node", i, j)
			}
			if opts.Tracks != nil && !slices.Contains(opts.Tracks, *rn.Track) {
				continue
			}
			mode, err := ModeFromCode(*rn.Mode)
			if err != nil {
				return nil, &FormatError{Reason: fmt.Sprintf("keyframe %d node %d", i, j), Err: err}
			}
			frames := fs.Tracks[*rn.Track]
			if len(frames) >= limit {
				continue
			}
			fs.Tracks[*rn.Track] = append(frames, Frame{Time: *rk.Time, Value: *rn.Value, Mode: mode})
		}
	}

	return fs, nil
}
