package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestRefAtCursor(t *testing.T) {
	tests := []struct {
		name string
		line string
		char uint32
		want string
	}{
		{"on leaf segment", "  accent = palette.love", 20, "palette.love"},
		{"on root with path", "  accent = palette.love", 13, "palette"},
		{"nested path", "  surface = palette.highlight.low", 31, "palette.highlight.low"},
		{"middle segment", "  surface = palette.highlight.low", 22, "palette.highlight"},
		{"inside function args", "  dim = darken(palette.love, 0.2)", 24, "palette.love"},
		{"not a reference", "  love = \"#eb6f92\"", 4, ""},
		{"unknown root", "  x = swatches.accent", 8, ""},
		{"past end of line", "short", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refAtCursor(tt.line, tt.char))
		})
	}
}

func TestDefinition(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)

	// Cursor on "love" in "palette.love" (line 15).
	loc := definition(result, sampleDoc, "file:///test.hcl", protocol.Position{Line: 15, Character: 21})
	require.NotNil(t, loc)
	assert.Equal(t, protocol.DocumentUri("file:///test.hcl"), loc.URI)
	assert.Equal(t, uint32(5), loc.Range.Start.Line)

	// Nested reference resolves to the nested definition (line 17).
	loc = definition(result, sampleDoc, "file:///test.hcl", protocol.Position{Line: 17, Character: 31})
	require.NotNil(t, loc)
	assert.Equal(t, uint32(10), loc.Range.Start.Line)
}

func TestDefinitionNotFound(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)

	// Cursor on a literal, not a reference.
	assert.Nil(t, definition(result, sampleDoc, "u", protocol.Position{Line: 5, Character: 11}))

	// Nil result.
	assert.Nil(t, definition(nil, sampleDoc, "u", protocol.Position{Line: 15, Character: 21}))

	// Line past end of document.
	assert.Nil(t, definition(result, sampleDoc, "u", protocol.Position{Line: 99, Character: 0}))
}
