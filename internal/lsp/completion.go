package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/chromatic/internal/palette"
)

// blockContext is the kind of block the cursor is in.
type blockContext int

const (
	contextRoot blockContext = iota
	contextMeta
	contextPalette
	contextSwatches
)

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"meta", "palette", "swatches"}

// paletteFunction describes one color function for completion.
type paletteFunction struct {
	name    string
	detail  string
	snippet string
}

var paletteFunctions = []paletteFunction{
	{"mix", "mix(a, b, t) — blend two colors in Oklab", "mix(${1:a}, ${2:b}, ${3:0.5})"},
	{"lighten", "lighten(color, amount)", "lighten(${1:color}, ${2:0.1})"},
	{"darken", "darken(color, amount)", "darken(${1:color}, ${2:0.1})"},
	{"saturate", "saturate(color, amount)", "saturate(${1:color}, ${2:0.1})"},
	{"desaturate", "desaturate(color, amount)", "desaturate(${1:color}, ${2:0.1})"},
	{"shade", "shade(color, lightness) — absolute Oklab lightness", "shade(${1:color}, ${2:0.5})"},
	{"alpha", "alpha(color, value)", "alpha(${1:color}, ${2:0.5})"},
	{"complement", "complement(color) — opposite hue", "complement(${1:color})"},
}

// complete produces completion items for the cursor position. The core
// logic is decoupled from the protocol handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	before := line[:charPos]

	if items := tryPaletteCompletion(result, before); items != nil {
		return items
	}

	if isValuePosition(before) {
		return valueCompletions()
	}

	if determineBlockContext(lines, int(pos.Line)) == contextRoot {
		return topLevelCompletions()
	}

	return nil
}

// tryPaletteCompletion offers the children of the palette node named by
// the dotted path before the cursor: "palette." lists the roots,
// "palette.highlight." lists that group's entries, and a partial final
// segment is left for the client to filter.
func tryPaletteCompletion(result *AnalysisResult, before string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	idx := strings.LastIndex(before, "palette.")
	if idx == -1 {
		return nil
	}
	path := before[idx+len("palette."):]

	var segments []string
	if trimmed, ok := strings.CutSuffix(path, "."); ok {
		segments = strings.Split(trimmed, ".")
	} else if strings.Contains(path, ".") {
		parts := strings.Split(path, ".")
		segments = parts[:len(parts)-1]
	}

	node := result.Palette
	for _, seg := range segments {
		child, ok := node.Children[seg]
		if !ok {
			return nil
		}
		node = child
	}
	if node.Children == nil {
		return nil
	}

	return nodeCompletionItems(node)
}

// nodeCompletionItems converts a node's children into completion items:
// leaves show their hex value, groups complete as modules.
func nodeCompletionItems(node *palette.Node) []protocol.CompletionItem {
	colorKind := protocol.CompletionItemKindColor
	groupKind := protocol.CompletionItemKindModule

	var items []protocol.CompletionItem
	for name, child := range node.Children {
		item := protocol.CompletionItem{
			Label: name,
			Kind:  &colorKind,
		}
		if child.Color != nil {
			item.Detail = strPtr(child.Color.HexString())
		} else if child.Children != nil {
			item.Kind = &groupKind
			item.Detail = strPtr("color group")
		}
		items = append(items, item)
	}
	return items
}

// isValuePosition reports whether the cursor sits after an "=" with
// nothing meaningful typed yet.
func isValuePosition(before string) bool {
	trimmed := strings.TrimSpace(before)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	return strings.TrimSpace(trimmed[eqIdx+1:]) == ""
}

// valueCompletions offers the color functions as snippets plus a
// palette reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	fnKind := protocol.CompletionItemKindFunction

	items := make([]protocol.CompletionItem, 0, len(paletteFunctions)+1)
	for _, fn := range paletteFunctions {
		snippet := fn.snippet
		items = append(items, protocol.CompletionItem{
			Label:            fn.name,
			Kind:             &fnKind,
			Detail:           strPtr(fn.detail),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	varKind := protocol.CompletionItemKindVariable
	paletteRef := "palette."
	items = append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       &varKind,
		Detail:     strPtr("palette reference"),
		InsertText: &paletteRef,
	})

	return items
}

// determineBlockContext scans from the top of the file down to the
// cursor line, tracking brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		if opens := strings.Count(line, "{"); opens > 0 {
			name := ""
			if parts := strings.Fields(line); len(parts) >= 1 {
				name = parts[0]
			}
			for n := 0; n < opens; n++ {
				stack = append(stack, name)
			}
		}
		for n := strings.Count(line, "}"); n > 0; n-- {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	switch stack[len(stack)-1] {
	case "meta":
		return contextMeta
	case "swatches":
		return contextSwatches
	default:
		// palette and its nested groups
		return contextPalette
	}
}

// topLevelCompletions offers the top-level block names as snippets.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	return complete(result, content, params.Position), nil
}
