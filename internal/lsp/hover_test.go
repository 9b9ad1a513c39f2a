package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 5},
		End:   protocol.Position{Line: 1, Character: 10},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"inside", protocol.Position{Line: 1, Character: 7}, true},
		{"at start", protocol.Position{Line: 1, Character: 5}, true},
		{"at end is exclusive", protocol.Position{Line: 1, Character: 10}, false},
		{"before", protocol.Position{Line: 1, Character: 4}, false},
		{"wrong line", protocol.Position{Line: 2, Character: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, posInRange(tt.pos, r))
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "palette {\n  love = \"#eb6f92\"\n}"

	got := extractText(content, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 9},
		End:   protocol.Position{Line: 1, Character: 19},
	})
	assert.Equal(t, `"#eb6f92"`, got)

	// Out-of-bounds positions clamp instead of panicking.
	got = extractText(content, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 100},
		End:   protocol.Position{Line: 1, Character: 200},
	})
	assert.Equal(t, "", got)

	got = extractText(content, protocol.Range{
		Start: protocol.Position{Line: 10, Character: 0},
		End:   protocol.Position{Line: 10, Character: 5},
	})
	assert.Equal(t, "", got)
}

func TestHoverOnLiteral(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)

	// Cursor on the "#eb6f92" literal (line 5).
	h := hover(result, sampleDoc, protocol.Position{Line: 5, Character: 11})
	require.NotNil(t, h)

	md := h.Contents.(protocol.MarkupContent)
	assert.Equal(t, protocol.MarkupKindMarkdown, md.Kind)
	assert.Contains(t, md.Value, "#eb6f92")
	assert.Contains(t, md.Value, "rgb(")
	assert.Contains(t, md.Value, "hsl(")
	assert.Contains(t, md.Value, "oklab(")
}

func TestHoverOnReference(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)

	// Cursor on "palette.love" in the swatches block (line 15).
	h := hover(result, sampleDoc, protocol.Position{Line: 15, Character: 15})
	require.NotNil(t, h)

	md := h.Contents.(protocol.MarkupContent)
	assert.Contains(t, md.Value, "**palette.love**")
	assert.Contains(t, md.Value, "#eb6f92")
}

func TestHoverOffColor(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)

	assert.Nil(t, hover(result, sampleDoc, protocol.Position{Line: 0, Character: 0}))
	assert.Nil(t, hover(nil, sampleDoc, protocol.Position{Line: 5, Character: 11}))
}
