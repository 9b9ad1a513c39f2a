package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/chromatic"
)

func TestColorToLSP(t *testing.T) {
	c := chromatic.MustParse("#eb6f92")
	lc := colorToLSP(c)

	assert.InDelta(t, 0.922, lc.Red, 0.01)
	assert.InDelta(t, 0.435, lc.Green, 0.01)
	assert.InDelta(t, 0.573, lc.Blue, 0.01)
	assert.InDelta(t, 1.0, lc.Alpha, 0.001)
}

func TestColorFromLSPClamps(t *testing.T) {
	c := colorFromLSP(protocol.Color{Red: 1.5, Green: -0.2, Blue: 0.5, Alpha: 1})
	assert.InDelta(t, 1.0, c.R, 0.001)
	assert.InDelta(t, 0.0, c.G, 0.001)
}

func TestDocumentColors(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)
	infos := documentColors(result)

	require.Len(t, infos, len(result.Colors))
	assert.InDelta(t, 0.922, infos[0].Color.Red, 0.01)
}

func TestDocumentColorsNilResult(t *testing.T) {
	assert.Empty(t, documentColors(nil))
}

func presentationRange(line, startChar, endChar uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: startChar},
		End:   protocol.Position{Line: line, Character: endChar},
	}
}

func TestColorPresentationHexLiteral(t *testing.T) {
	content := `palette {
  love = "#eb6f92"
}`

	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		Range: presentationRange(1, 9, 19), // the quoted "#eb6f92"
	}

	presentations := colorPresentation(content, params)
	require.Len(t, presentations, 3)

	assert.Equal(t, "#ff0000", presentations[0].Label)
	require.NotNil(t, presentations[0].TextEdit)
	assert.Equal(t, `"#ff0000"`, presentations[0].TextEdit.NewText)

	assert.Equal(t, "rgb(255,0,0)", presentations[1].Label)
	assert.Equal(t, "hsl(0.0,100.0%,50.0%)", presentations[2].Label)
}

func TestColorPresentationReference(t *testing.T) {
	content := `swatches {
  accent = palette.love
}`

	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Alpha: 1},
		Range: presentationRange(1, 11, 23),
	}

	assert.Empty(t, colorPresentation(content, params))
}

func TestColorPresentationFunctionCall(t *testing.T) {
	content := `swatches {
  dimmed = darken(palette.love, 0.2)
}`

	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Alpha: 1},
		Range: presentationRange(1, 11, 36),
	}

	assert.Empty(t, colorPresentation(content, params))
}
