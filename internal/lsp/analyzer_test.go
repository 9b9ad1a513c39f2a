package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `meta {
  name = "Duskfall"
}

palette {
  love = "#eb6f92"
  gold = "hsl(35, 88%, 72%)"

  highlight {
    color = "#2a283e"
    low   = "#21202e"
  }
}

swatches {
  accent  = palette.love
  dimmed  = darken(palette.love, 0.2)
  surface = palette.highlight.low
}
`

func TestAnalyzeValidDocument(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)
	require.NotNil(t, result)

	assert.Empty(t, result.Diagnostics)
	require.NotNil(t, result.Palette)

	love, err := result.Palette.Lookup([]string{"love"})
	require.NoError(t, err)
	assert.Equal(t, "#eb6f92", love.HexString())

	low, err := result.Palette.Lookup([]string{"highlight", "low"})
	require.NoError(t, err)
	assert.Equal(t, "#21202e", low.HexString())
}

func TestAnalyzeSymbols(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)

	for _, symbol := range []string{
		"palette.love",
		"palette.gold",
		"palette.highlight.low",
	} {
		assert.Contains(t, result.Symbols, symbol)
	}

	// The group's own "color" attribute is not a referenceable symbol.
	assert.NotContains(t, result.Symbols, "palette.highlight.color")

	// Symbol ranges are zero-based.
	love := result.Symbols["palette.love"]
	assert.Equal(t, uint32(5), love.Start.Line)
	assert.Equal(t, uint32(2), love.Start.Character)
}

func TestAnalyzeColorLocations(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)

	// Four palette entries plus three swatches.
	require.Len(t, result.Colors, 7)

	var refs, literals int
	for _, cl := range result.Colors {
		if cl.IsRef {
			refs++
		} else {
			literals++
		}
	}
	assert.Equal(t, 3, refs)
	assert.Equal(t, 4, literals)
}

func TestAnalyzeSyntaxError(t *testing.T) {
	result := Analyze("test.hcl", "palette {\n  love = \n")
	assert.NotEmpty(t, result.Diagnostics)
	assert.Nil(t, result.Palette)
}

func TestAnalyzeMissingPaletteBlock(t *testing.T) {
	result := Analyze("test.hcl", `meta { name = "x" }`)

	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message, "missing required palette block")
}

func TestAnalyzeInvalidColor(t *testing.T) {
	doc := `palette {
  good = "#ff0000"
  bad  = "notacolor"
}
`
	result := Analyze("test.hcl", doc)

	// The broken entry reports, the good one still resolves.
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message, "palette.bad")
	assert.Len(t, result.Colors, 1)
}

func TestAnalyzeUnknownReference(t *testing.T) {
	doc := `palette {
  base = "#ffffff"
}

swatches {
  broken = palette.missing
}
`
	result := Analyze("test.hcl", doc)

	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message, "swatches.broken")
}

func TestAnalyzeGroupWithoutColorReference(t *testing.T) {
	doc := `palette {
  grays {
    light = "#cccccc"
  }
}

swatches {
  bad = palette.grays
}
`
	result := Analyze("test.hcl", doc)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message, "color")
}

func TestAnalyzeForwardReference(t *testing.T) {
	doc := `palette {
  base    = "#191724"
  derived = lighten(palette.base, 0.1)
}
`
	result := Analyze("test.hcl", doc)
	assert.Empty(t, result.Diagnostics)

	_, err := result.Palette.Lookup([]string{"derived"})
	assert.NoError(t, err)
}
