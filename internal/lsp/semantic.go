package lsp

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/chromatic"
)

// Token types advertised in the semantic tokens legend.
var semanticTokenTypes = []string{
	"keyword",   // 0: block names (meta, palette, swatches)
	"property",  // 1: attribute names and traversal segments
	"namespace", // 2: the "palette" scope root
	"string",    // 3: color literals
	"function",  // 4: mix(), lighten(), ...
	"number",    // 5: numeric literals
}

var semanticTokenModifiers = []string{
	"declaration", // bit 0: defining a new entry
}

var tokenTypeIndices map[string]uint32

func init() {
	tokenTypeIndices = make(map[string]uint32, len(semanticTokenTypes))
	for i, t := range semanticTokenTypes {
		tokenTypeIndices[t] = uint32(i)
	}
}

type semanticToken struct {
	line      uint32
	startChar uint32
	length    uint32
	tokenType uint32
	modifiers uint32
}

// encodeTokens converts tokens to the LSP wire format: five integers
// per token, with line and start column delta-encoded against the
// previous token.
func encodeTokens(tokens []semanticToken) []uint32 {
	if len(tokens) == 0 {
		return []uint32{}
	}

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].line != tokens[j].line {
			return tokens[i].line < tokens[j].line
		}
		return tokens[i].startChar < tokens[j].startChar
	})

	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevChar uint32

	for _, tok := range tokens {
		deltaLine := tok.line - prevLine
		deltaStart := tok.startChar
		if deltaLine == 0 {
			deltaStart = tok.startChar - prevChar
		}

		data = append(data, deltaLine, deltaStart, tok.length, tok.tokenType, tok.modifiers)

		prevLine = tok.line
		prevChar = tok.startChar
	}

	return data
}

// semanticTokensFull tokenizes the whole document. A document that does
// not parse yields no tokens rather than an error, so highlighting
// simply pauses while the user types.
func semanticTokensFull(content string) []uint32 {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return []uint32{}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	return encodeTokens(tokensFromBody(body, nil))
}

func tokensFromBody(body *hclsyntax.Body, tokens []semanticToken) []semanticToken {
	for _, block := range body.Blocks {
		tokens = append(tokens, semanticToken{
			line:      uint32(block.DefRange().Start.Line - 1),
			startChar: uint32(block.DefRange().Start.Column - 1),
			length:    uint32(len(block.Type)),
			tokenType: tokenTypeIndices["keyword"],
		})
		tokens = tokensFromBody(block.Body, tokens)
	}

	for name, attr := range body.Attributes {
		tokens = append(tokens, semanticToken{
			line:      uint32(attr.SrcRange.Start.Line - 1),
			startChar: uint32(attr.SrcRange.Start.Column - 1),
			length:    uint32(len(name)),
			tokenType: tokenTypeIndices["property"],
			modifiers: 1, // declaration bit
		})
		tokens = tokensFromExpr(attr.Expr, tokens)
	}

	return tokens
}

func tokensFromExpr(expr hclsyntax.Expression, tokens []semanticToken) []semanticToken {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		tokens = tokensFromLiteral(e, tokens)
	case *hclsyntax.TemplateExpr:
		// Quoted strings parse as single-part templates.
		for _, part := range e.Parts {
			tokens = tokensFromExpr(part, tokens)
		}
	case *hclsyntax.ScopeTraversalExpr:
		tokens = tokensFromTraversal(e, tokens)
	case *hclsyntax.FunctionCallExpr:
		tokens = append(tokens, semanticToken{
			line:      uint32(e.NameRange.Start.Line - 1),
			startChar: uint32(e.NameRange.Start.Column - 1),
			length:    uint32(len(e.Name)),
			tokenType: tokenTypeIndices["function"],
		})
		for _, arg := range e.Args {
			tokens = tokensFromExpr(arg, tokens)
		}
	case *hclsyntax.RelativeTraversalExpr:
		tokens = tokensFromExpr(e.Source, tokens)
	}
	return tokens
}

// tokensFromLiteral highlights color strings and numbers. A string
// counts as a color when chromatic.Parse accepts it, which covers hex,
// functional notation and named colors alike.
func tokensFromLiteral(expr *hclsyntax.LiteralValueExpr, tokens []semanticToken) []semanticToken {
	val := expr.Val
	switch {
	case val.Type() == cty.String:
		if _, err := chromatic.Parse(val.AsString()); err != nil {
			return tokens
		}
		tokens = append(tokens, semanticToken{
			line:      uint32(expr.SrcRange.Start.Line - 1),
			startChar: uint32(expr.SrcRange.Start.Column - 1),
			length:    uint32(expr.SrcRange.End.Column - expr.SrcRange.Start.Column),
			tokenType: tokenTypeIndices["string"],
		})
	case val.Type() == cty.Number:
		tokens = append(tokens, semanticToken{
			line:      uint32(expr.SrcRange.Start.Line - 1),
			startChar: uint32(expr.SrcRange.Start.Column - 1),
			length:    uint32(expr.SrcRange.End.Column - expr.SrcRange.Start.Column),
			tokenType: tokenTypeIndices["number"],
		})
	}
	return tokens
}

func tokensFromTraversal(expr *hclsyntax.ScopeTraversalExpr, tokens []semanticToken) []semanticToken {
	if len(expr.Traversal) == 0 {
		return tokens
	}

	first, ok := expr.Traversal[0].(hcl.TraverseRoot)
	if !ok || !refRoots[first.Name] {
		return tokens
	}

	tokens = append(tokens, semanticToken{
		line:      uint32(first.SrcRange.Start.Line - 1),
		startChar: uint32(first.SrcRange.Start.Column - 1),
		length:    uint32(len(first.Name)),
		tokenType: tokenTypeIndices["namespace"],
	})

	for i := 1; i < len(expr.Traversal); i++ {
		if seg, ok := expr.Traversal[i].(hcl.TraverseAttr); ok {
			tokens = append(tokens, semanticToken{
				line:      uint32(seg.SrcRange.Start.Line - 1),
				startChar: uint32(seg.SrcRange.Start.Column - 1),
				length:    uint32(len(seg.Name)),
				tokenType: tokenTypeIndices["property"],
			})
		}
	}

	return tokens
}

func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}
