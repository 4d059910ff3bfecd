package ui

import (
	"fmt"

	"lifefade/internal/core"
)

// LineKind distinguishes group headers from parameter rows.
type LineKind int

const (
	LineHeader LineKind = iota
	LineParam
)

// Line is one row of the statistics panel.
type Line struct {
	Kind  LineKind
	Text  string
	Value string
}

// Lines flattens a snapshot into panel rows. Empty groups are skipped.
func Lines(snapshot core.ParameterSnapshot) []Line {
	var out []Line
	for _, group := range snapshot.Groups {
		if len(group.Params) == 0 {
			continue
		}
		out = append(out, Line{Kind: LineHeader, Text: group.Name})
		for _, p := range group.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			out = append(out, Line{Kind: LineParam, Text: label, Value: p.Value})
		}
	}
	return out
}

// StatusLine renders the compact summary shown in the window title.
func StatusLine(snapshot core.ParameterSnapshot, fps float64) string {
	gen, ok := snapshot.Lookup("generation")
	if !ok {
		return fmt.Sprintf("%.0f fps", fps)
	}
	live, _ := snapshot.Lookup("live")
	return fmt.Sprintf("%.0f fps | gen %s | live %s", fps, gen.Value, live.Value)
}
