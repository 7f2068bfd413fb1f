package domain

import (
	"fmt"
	"slices"
)

// Node is the value and interpolation mode of one track at one keyframe
type Node struct {
	Track string
	Value float64
	Mode  Mode
}

// NodeOption sets an optional field in Keyframe.Set and Keyframe.AddNode
type NodeOption func(*nodeUpdate)

type nodeUpdate struct {
	value *float64
	mode  *Mode
}

// WithValue sets the node value
func WithValue(v float64) NodeOption {
	return func(u *nodeUpdate) { u.value = &v }
}

// WithMode sets the node interpolation mode
func WithMode(m Mode) NodeOption {
	return func(u *nodeUpdate) { u.mode = &m }
}

func collectUpdate(opts []NodeOption) (nodeUpdate, error) {
	var u nodeUpdate
	for _, opt := range opts {
		opt(&u)
	}
	if u.value != nil {
		if err := checkValue(*u.value); err != nil {
			return u, err
		}
	}
	if u.mode != nil && !u.mode.Valid() {
		return u, &ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("unknown mode code %d", int(*u.mode)),
		}
	}
	return u, nil
}

// Keyframe is a point in time carrying one node per track
type Keyframe struct {
	Emitter

	time  float64
	nodes []Node

	// claim is installed by the owning Timeline and vetoes a time already
	// held by a sibling keyframe.
	claim func(k *Keyframe, t float64) error
}

// NewKeyframe creates a keyframe at t with default nodes (0, Step) for tracks
func NewKeyframe(t float64, tracks []string) (*Keyframe, error) {
	rounded, err := checkTime("time", t)
	if err != nil {
		return nil, err
	}

	k := &Keyframe{time: rounded, nodes: make([]Node, 0, len(tracks))}
	for _, track := range tracks {
		if k.indexOf(track) >= 0 {
			return nil, &ConflictError{Kind: "track", Name: track}
		}
		k.nodes = append(k.nodes, Node{Track: track, Mode: ModeStep})
	}
	return k, nil
}

// Time returns the keyframe time, rounded to two decimals
func (k *Keyframe) Time() float64 {
	return k.time
}

// Nodes returns a copy of the nodes in their current order
func (k *Keyframe) Nodes() []Node {
	return slices.Clone(k.nodes)
}

// Node looks up the node for track
func (k *Keyframe) Node(track string) (Node, bool) {
	i := k.indexOf(track)
	if i < 0 {
		return Node{}, false
	}
	return k.nodes[i], true
}

// Tracks returns the track names in node order
func (k *Keyframe) Tracks() []string {
	tracks := make([]string, len(k.nodes))
	for i, n := range k.nodes {
		tracks[i] = n.Track
	}
	return tracks
}

func (k *Keyframe) indexOf(track string) int {
	return slices.IndexFunc(k.nodes, func(n Node) bool { return n.Track == track })
}

// SetTime validates, rounds and stores t
func (k *Keyframe) SetTime(t float64) error {
	rounded, err := k.checkClaim(t)
	if err != nil {
		return err
	}
	k.time = rounded
	k.emit()
	return nil
}

func (k *Keyframe) checkClaim(t float64) (float64, error) {
	rounded, err := checkTime("time", t)
	if err != nil {
		return 0, err
	}
	if k.claim != nil && rounded != k.time {
		if err := k.claim(k, rounded); err != nil {
			return 0, err
		}
	}
	return rounded, nil
}

// Set updates the node for track. Without options nothing changes and no
// notification is sent.
func (k *Keyframe) Set(track string, opts ...NodeOption) error {
	i := k.indexOf(track)
	if i < 0 {
		return &NotFoundError{Kind: "track", Name: track}
	}

	u, err := collectUpdate(opts)
	if err != nil {
		return err
	}
	if u.value == nil && u.mode == nil {
		return nil
	}

	if u.value != nil {
		k.nodes[i].Value = *u.value
	}
	if u.mode != nil {
		k.nodes[i].Mode = *u.mode
	}
	k.emit()
	return nil
}

// CopyFrom moves this keyframe to t and replaces its nodes with copies of
// other's nodes.
func (k *Keyframe) CopyFrom(t float64, other *Keyframe) error {
	rounded, err := k.checkClaim(t)
	if err != nil {
		return err
	}
	k.time = rounded
	k.nodes = slices.Clone(other.nodes)
	k.emit()
	return nil
}

// AddNode appends a node for track, defaulting to value 0 and Step mode
func (k *Keyframe) AddNode(track string, opts ...NodeOption) error {
	if k.indexOf(track) >= 0 {
		return &ConflictError{Kind: "track", Name: track}
	}

	u, err := collectUpdate(opts)
	if err != nil {
		return err
	}

	node := Node{Track: track, Mode: ModeStep}
	if u.value != nil {
		node.Value = *u.value
	}
	if u.mode != nil {
		node.Mode = *u.mode
	}
	k.nodes = append(k.nodes, node)
	k.emit()
	return nil
}

// addNode appends a default node without notifying; the caller emits once
// the whole timeline is consistent.
func (k *Keyframe) addNode(track string) {
	k.nodes = append(k.nodes, Node{Track: track, Mode: ModeStep})
}

// RemoveNode deletes the node for track
func (k *Keyframe) RemoveNode(track string) error {
	i := k.indexOf(track)
	if i < 0 {
		return &NotFoundError{Kind: "track", Name: track}
	}
	k.removeNode(i)
	k.emit()
	return nil
}

func (k *Keyframe) removeNode(i int) {
	k.nodes = slices.Delete(k.nodes, i, i+1)
}

// Serialize returns the keyframe in its document form
func (k *Keyframe) Serialize() KeyframeRecord {
	rec := KeyframeRecord{Time: k.time, Nodes: make([]NodeRecord, len(k.nodes))}
	for i, n := range k.nodes {
		rec.Nodes[i] = NodeRecord{Track: n.Track, Value: n.Value, Mode: n.Mode}
	}
	return rec
}

func (k *Keyframe) clone() *Keyframe {
	return &Keyframe{time: k.time, nodes: slices.Clone(k.nodes)}
}
