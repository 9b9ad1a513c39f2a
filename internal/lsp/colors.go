package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/chromatic"
)

// colorToLSP converts a chromatic.Color to a protocol.Color. Both use
// float32 channels in [0, 1], so this is a straight field copy.
func colorToLSP(c chromatic.Color) protocol.Color {
	return protocol.Color{
		Red:   c.R,
		Green: c.G,
		Blue:  c.B,
		Alpha: c.A,
	}
}

// colorFromLSP converts a protocol.Color from the client picker back
// into a chromatic.Color, clamping through the constructor.
func colorFromLSP(c protocol.Color) chromatic.Color {
	return chromatic.RGBA(c.Red, c.Green, c.Blue, c.Alpha)
}

// documentColors converts the analysis result's color locations into
// LSP ColorInformation items, which clients render as inline swatches.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces presentation options for the color picker:
// the picked color spelled as hex, rgb() and hsl(), each with a TextEdit
// replacing the old value. Palette references and function calls return
// no presentations, so picking a color never destroys a reference.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)

	quoted := strings.HasPrefix(text, "\"")
	inner := text
	if quoted {
		inner = strings.Trim(text, "\"")
	}
	if strings.HasPrefix(inner, "palette.") || strings.Contains(inner, "(") {
		return []protocol.ColorPresentation{}
	}
	if !quoted && !strings.HasPrefix(inner, "#") {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)

	labels := []string{c.HexString(), c.RGBString(), c.HSLString()}
	presentations := make([]protocol.ColorPresentation, 0, len(labels))
	for _, label := range labels {
		newText := label
		if quoted {
			newText = "\"" + label + "\""
		}
		presentations = append(presentations, protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		})
	}
	return presentations
}

func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	result := s.getResult(string(params.TextDocument.URI))
	return documentColors(result), nil
}

func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
