package ui

import (
	"testing"

	"lifefade/internal/core"

	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			{Key: "size", Label: "Size", Value: "16x12"},
			{Key: "workers", Value: "4"},
		}},
		{Name: "Empty"},
		{Name: "Generation", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "7"},
			{Key: "live", Label: "Live", Value: "31"},
		}},
	}}
}

func TestLinesFlattensGroups(t *testing.T) {
	lines := Lines(sampleSnapshot())
	assert.Equal(t, []Line{
		{Kind: LineHeader, Text: "Grid"},
		{Kind: LineParam, Text: "Size", Value: "16x12"},
		{Kind: LineParam, Text: "workers", Value: "4"},
		{Kind: LineHeader, Text: "Generation"},
		{Kind: LineParam, Text: "Generation", Value: "7"},
		{Kind: LineParam, Text: "Live", Value: "31"},
	}, lines)
	assert.Empty(t, Lines(core.ParameterSnapshot{}))
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "60 fps | gen 7 | live 31", StatusLine(sampleSnapshot(), 59.7))
	assert.Equal(t, "30 fps", StatusLine(core.ParameterSnapshot{}, 30))
}
