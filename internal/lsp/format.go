package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/chromatic/internal/palette"
)

// fullDocumentEdit wraps replacement text in a single TextEdit spanning
// the whole document.
func fullDocumentEdit(content, formatted string) []protocol.TextEdit {
	if formatted == content {
		return nil
	}

	lines := strings.Split(content, "\n")
	end := protocol.Position{
		Line:      uint32(len(lines) - 1),
		Character: uint32(len(lines[len(lines)-1])),
	}

	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   end,
		},
		NewText: formatted,
	}}
}

// textDocumentFormatting formats the whole document with the canonical
// palette style. FormatSource tolerates invalid HCL, so formatting
// works mid-edit.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	return fullDocumentEdit(content, palette.FormatSource(content)), nil
}
