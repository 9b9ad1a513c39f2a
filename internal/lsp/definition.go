package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// refAtCursor extracts the palette reference path up to the cursor
// position. With the cursor on "highlight" in "palette.highlight.low"
// it returns "palette.highlight"; on "low" it returns the full path.
// Returns "" when the cursor is not on a palette reference.
func refAtCursor(line string, character uint32) string {
	col := int(character)
	if col >= len(line) {
		return ""
	}

	end := col
	for end < len(line) && isIdentChar(line[end]) {
		end++
	}
	start := col
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}

	word := line[start:end]
	parts := strings.Split(word, ".")
	if len(parts) == 0 || !refRoots[parts[0]] {
		return ""
	}

	// Cursor on the root itself only counts when a path follows.
	if len(parts) == 1 {
		if end < len(line) && line[end] == '.' {
			return parts[0]
		}
		return ""
	}

	// Keep the segments up to and including the one under the cursor.
	cursorInWord := col - start
	var kept []string
	pos := 0
	for _, part := range parts {
		if pos <= cursorInWord {
			kept = append(kept, part)
		}
		pos += len(part) + 1 // +1 for the dot
	}

	return strings.Join(kept, ".")
}

func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '.'
}

// definition resolves a palette reference under the cursor to the
// location where that entry is defined. Returns nil when the cursor is
// not on a reference or the symbol does not exist.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	ref := refAtCursor(lines[pos.Line], pos.Character)
	if ref == "" {
		return nil
	}

	symRange, ok := result.Symbols[ref]
	if !ok {
		return nil
	}

	return &protocol.Location{
		URI:   protocol.DocumentUri(uri),
		Range: symRange,
	}
}

func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return definition(result, content, uri, params.Position), nil
}
