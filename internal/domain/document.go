package domain

import (
	"encoding/json"
	"fmt"
	"io"
)

// NodeRecord is the serialized form of a Node; Mode encodes as its integer code
type NodeRecord struct {
	Track string  `json:"track"`
	Value float64 `json:"value"`
	Mode  Mode    `json:"mode"`
}

// KeyframeRecord is the serialized form of a Keyframe
type KeyframeRecord struct {
	Time  float64      `json:"time"`
	Nodes []NodeRecord `json:"nodes"`
}

// Document is the JSON file layout shared by export and import
type Document struct {
	Time      float64          `json:"time"`
	Tracks    []string         `json:"tracks"`
	Keyframes []KeyframeRecord `json:"keyframes"`
}

// ExportOption configures Document and EncodeJSON
type ExportOption func(*exportOptions)

type exportOptions struct {
	padCount *int
	keepAll  bool
}

// WithPadCount makes the export contain exactly n keyframe entries: the last
// keyframe is repeated to fill, and extra keyframes are truncated.
func WithPadCount(n int) ExportOption {
	return func(o *exportOptions) { o.padCount = &n }
}

// WithPadAtLeast pads like WithPadCount but never truncates: a timeline
// with more than n keyframes exports all of them. Project saves use it.
func WithPadAtLeast(n int) ExportOption {
	return func(o *exportOptions) {
		o.padCount = &n
		o.keepAll = true
	}
}

// Document builds the serialized form in ascending time order
func (tl *Timeline) Document(opts ...ExportOption) (Document, error) {
	var o exportOptions
	for _, opt := range opts {
		opt(&o)
	}

	doc := Document{
		Time:      tl.time,
		Tracks:    append([]string{}, tl.tracks...),
		Keyframes: []KeyframeRecord{},
	}
	keyframes := tl.Keyframes()

	if o.padCount == nil {
		for _, k := range keyframes {
			doc.Keyframes = append(doc.Keyframes, k.Serialize())
		}
		return doc, nil
	}

	n := *o.padCount
	if n < 0 {
		return Document{}, &ValidationError{
			Field:   "padCount",
			Message: fmt.Sprintf("cannot be negative: %d", n),
		}
	}
	if len(keyframes) == 0 {
		return doc, nil
	}
	if o.keepAll {
		n = max(n, len(keyframes))
	}
	for i := range n {
		doc.Keyframes = append(doc.Keyframes, keyframes[min(len(keyframes)-1, i)].Serialize())
	}
	return doc, nil
}

// EncodeJSON writes the timeline as an indented JSON document
func (tl *Timeline) EncodeJSON(w io.Writer, opts ...ExportOption) error {
	doc, err := tl.Document(opts...)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(doc)
}

// The raw* types mirror Document with pointers so missing fields can be told
// apart from zero values.
type rawNode struct {
	Track *string  `json:"track"`
	Value *float64 `json:"value"`
	Mode  *int     `json:"mode"`
}

type rawKeyframe struct {
	Time  *float64  `json:"time"`
	Nodes []rawNode `json:"nodes"`
}

type rawDocument struct {
	Time      *float64      `json:"time"`
	Tracks    []string      `json:"tracks"`
	Keyframes []rawKeyframe `json:"keyframes"`
}

func decodeRaw(r io.Reader) (*rawDocument, error) {
	var raw rawDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &FormatError{Reason: "malformed JSON", Err: err}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, formatErrorf("trailing data after the JSON document")
	}
	return &raw, nil
}

// DecodeTimeline parses a JSON document into a new Timeline. Missing time
// and tracks default to 0 and none. Keyframes whose rounded time repeats an
// earlier keyframe are dropped; the first occurrence wins.
func DecodeTimeline(r io.Reader) (*Timeline, error) {
	raw, err := decodeRaw(r)
	if err != nil {
		return nil, err
	}

	tl := NewTimeline()
	if raw.Time != nil {
		t, err := checkTime("time", *raw.Time)
		if err != nil {
			return nil, &FormatError{Reason: "timeline time", Err: err}
		}
		tl.time = t
	}

	for _, track := range raw.Tracks {
		if track == "" {
			return nil, formatErrorf("empty track name")
		}
		if tl.HasTrack(track) {
			return nil, formatErrorf("duplicate track %q", track)
		}
		tl.tracks = append(tl.tracks, track)
	}

	for i, rk := range raw.Keyframes {
		k, err := decodeKeyframe(i, rk, tl.tracks)
		if err != nil {
			return nil, err
		}
		if _, dup := tl.Keyframe(k.time); dup {
			continue
		}
		tl.adopt(k)
		tl.keyframes = append(tl.keyframes, k)
	}

	return tl, nil
}

func decodeKeyframe(i int, rk rawKeyframe, tracks []string) (*Keyframe, error) {
	if rk.Time == nil {
		return nil, formatErrorf("keyframe %d: missing time", i)
	}
	k, err := NewKeyframe(*rk.Time, tracks)
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("keyframe %d", i), Err: err}
	}

	for j, rn := range rk.Nodes {
		switch {
		case rn.Track == nil:
			return nil, formatErrorf("keyframe %d node %d: missing track", i, j)
		case rn.Value == nil:
			return nil, formatErrorf("keyframe %d node %d: missing value", i, j)
		case rn.Mode == nil:
			return nil, formatErrorf("keyframe %d node %d: missing mode", i, j)
		}

		mode, err := ModeFromCode(*rn.Mode)
		if err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("keyframe %d node %d", i, j), Err: err}
		}
		if err := k.Set(*rn.Track, WithValue(*rn.Value), WithMode(mode)); err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("keyframe %d node %d", i, j), Err: err}
		}
	}
	return k, nil
}
