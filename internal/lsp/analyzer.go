package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/chromatic"
	"github.com/jsvensson/chromatic/internal/palette"
)

var (
	diagError   = protocol.DiagnosticSeverityError
	diagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "chromatic"

// refRoots names the scope roots that palette expressions may
// traverse into.
var refRoots = map[string]bool{
	"palette": true,
}

// AnalysisResult holds everything produced by analyzing one palette
// document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *palette.Node
	Symbols     map[string]protocol.Range // "palette.love", "palette.highlight.low" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a source position.
type ColorLocation struct {
	Range protocol.Range
	Color chromatic.Color
	IsRef bool // palette reference or function call rather than a literal
}

// hclPosToLSP converts an HCL position (1-based) to an LSP position
// (0-based).
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses palette HCL from memory and produces diagnostics, a
// symbol table and resolved color locations. Semantic errors are
// collected per attribute rather than short-circuiting, so one bad
// entry does not hide the rest of the document.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{Filename: filename}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var paletteBody, swatchesBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			paletteBody = block.Body
		case "swatches":
			swatchesBody = block.Body
		}
	}

	if paletteBody == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	root := &palette.Node{}
	result.analyzePaletteBody(paletteBody, root, root, "palette")
	result.Palette = root

	if swatchesBody != nil {
		ctx := palette.BuildEvalContext(root)
		for _, attr := range sortedAttributes(swatchesBody) {
			result.analyzeAttribute(attr, ctx, "swatches."+attr.Name)
		}
	}

	return result
}

func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}

func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := diagError
	if d.Severity == hcl.DiagWarning {
		sev = diagWarning
	}

	msg := d.Summary
	if d.Detail != "" {
		msg = d.Summary + ": " + d.Detail
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Source:   strPtr(diagSource),
		Message:  msg,
	}
	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}
	return diag
}

func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &diagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// paletteItem orders attributes and nested blocks by source position,
// so later palette entries can reference earlier ones.
type paletteItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func (r *AnalysisResult) analyzePaletteBody(body *hclsyntax.Body, root, node *palette.Node, prefix string) {
	var items []paletteItem
	for _, attr := range body.Attributes {
		items = append(items, paletteItem{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, paletteItem{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].pos.Line != items[j].pos.Line {
			return items[i].pos.Line < items[j].pos.Line
		}
		return items[i].pos.Column < items[j].pos.Column
	})

	for _, item := range items {
		// Rebuild the eval context so each entry sees everything
		// defined above it.
		ctx := palette.BuildEvalContext(root)

		if item.attr != nil {
			name := item.attr.Name
			symbol := prefix + "." + name

			if name != "color" {
				r.Symbols[symbol] = hclRangeToLSP(item.attr.SrcRange)
			}

			c, ok := r.analyzeAttribute(item.attr, ctx, symbol)
			if !ok {
				continue
			}

			if name == "color" {
				node.Color = &c
				continue
			}
			if node.Children == nil {
				node.Children = make(map[string]*palette.Node)
			}
			node.Children[name] = &palette.Node{Color: &c}
			continue
		}

		if node.Children == nil {
			node.Children = make(map[string]*palette.Node)
		}
		child := &palette.Node{}
		node.Children[item.block.Type] = child
		r.analyzePaletteBody(item.block.Body, root, child, prefix+"."+item.block.Type)
	}
}

// analyzeAttribute resolves one color attribute, recording either a
// diagnostic or a color location. Reports whether resolution succeeded.
func (r *AnalysisResult) analyzeAttribute(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, symbol string) (chromatic.Color, bool) {
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", symbol, diags.Error()))
		return chromatic.Color{}, false
	}

	c, err := palette.ResolveValue(val)
	if err != nil {
		r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", symbol, err.Error()))
		return chromatic.Color{}, false
	}

	r.Colors = append(r.Colors, ColorLocation{
		Range: hclRangeToLSP(attr.Expr.Range()),
		Color: c,
		IsRef: isReferenceExpr(attr.Expr),
	})
	return c, true
}

// isReferenceExpr reports whether an expression derives its color from
// elsewhere (a palette traversal or a function call) instead of
// spelling out a literal.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.RelativeTraversalExpr, *hclsyntax.FunctionCallExpr:
		return true
	}
	return false
}
