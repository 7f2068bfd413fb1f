package domain

import (
	"fmt"
	"io"
	"strings"
)

// HeaderNotice is the first line of every generated header
const HeaderNotice = "// This header is generated by the keyframe editor."

// EncodeHeader writes one constexpr Keyframe<float> array per track, each
// row being {time, value, mode} in ascending time order.
func (tl *Timeline) EncodeHeader(w io.Writer) error {
	var b strings.Builder
	b.WriteString(HeaderNotice)
	b.WriteString("\n\n")

	keyframes := tl.Keyframes()
	for _, track := range tl.tracks {
		fmt.Fprintf(&b, "constexpr Keyframe<float> %s[] = {\n", track)
		for _, k := range keyframes {
			node, ok := k.Node(track)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "    { %s, %s, %s },\n",
				FormatNumber(k.time), FormatNumber(node.Value), node.Mode)
		}
		b.WriteString("};\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Grid is the spreadsheet layout: one row per track, one column per
// keyframe time.
type Grid struct {
	Times []float64
	Rows  []GridRow
}

// GridRow holds a track's values; a nil cell has no node at that time
type GridRow struct {
	Track string
	Cells []*float64
}

// Grid builds the spreadsheet layout in track order and ascending time
func (tl *Timeline) Grid() Grid {
	keyframes := tl.Keyframes()
	g := Grid{Times: make([]float64, len(keyframes))}
	for i, k := range keyframes {
		g.Times[i] = k.time
	}

	for _, track := range tl.tracks {
		row := GridRow{Track: track, Cells: make([]*float64, len(keyframes))}
		for i, k := range keyframes {
			if node, ok := k.Node(track); ok {
				v := node.Value
				row.Cells[i] = &v
			}
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}
