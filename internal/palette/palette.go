// Package palette loads HCL palette documents: a tree of named colors
// plus derived swatches computed with the chromatic color functions.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/jsvensson/chromatic"
)

// Node is a palette entry that can be both a color and a group.
// Color is nil for group-only nodes; Children is nil for leaves.
type Node struct {
	Color    *chromatic.Color
	Children map[string]*Node
}

// Lookup resolves a dot-path (as segments) to a color. It fails when
// the path does not exist or names a group without a color attribute.
func (n *Node) Lookup(path []string) (chromatic.Color, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return chromatic.Color{}, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return chromatic.Color{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return chromatic.Color{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// Walk visits every colored node depth-first in sorted order, calling
// fn with the node's path segments.
func (n *Node) Walk(fn func(path []string, c chromatic.Color)) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func(path []string, c chromatic.Color)) {
	if n.Color != nil {
		fn(path, *n.Color)
	}

	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		n.Children[k].walk(append(path, k), fn)
	}
}

// Meta holds palette metadata.
type Meta struct {
	Name   string
	Author string
	URL    string
}

// Palette is a fully-resolved palette document.
type Palette struct {
	Meta     Meta
	Colors   *Node
	Swatches map[string]chromatic.Color
}

// Load reads and resolves an HCL palette file.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return ParseBytes(src, path)
}

// ParseBytes resolves an HCL palette document held in memory.
func ParseBytes(src []byte, filename string) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("internal error: parsed body is not *hclsyntax.Body")
	}

	p := &Palette{
		Colors:   &Node{},
		Swatches: make(map[string]chromatic.Color),
	}

	var paletteBody, swatchesBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch block.Type {
		case "meta":
			if err := parseMeta(block.Body, &p.Meta); err != nil {
				return nil, err
			}
		case "palette":
			paletteBody = block.Body
		case "swatches":
			swatchesBody = block.Body
		}
	}

	if paletteBody == nil {
		return nil, fmt.Errorf("no palette block found")
	}

	// Palette entries are resolved in source order so later entries
	// can reference earlier ones.
	if err := parsePaletteBody(paletteBody, p.Colors, p.Colors, "palette"); err != nil {
		return nil, err
	}

	if swatchesBody != nil {
		ctx := BuildEvalContext(p.Colors)
		for _, attr := range sortedAttributes(swatchesBody) {
			c, err := evalColor(attr.Expr, ctx)
			if err != nil {
				return nil, fmt.Errorf("swatches.%s: %w", attr.Name, err)
			}
			p.Swatches[attr.Name] = c
		}
	}

	return p, nil
}

func parseMeta(body *hclsyntax.Body, meta *Meta) error {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating meta.%s: %s", name, diags.Error())
		}
		switch name {
		case "name":
			meta.Name = val.AsString()
		case "author":
			meta.Author = val.AsString()
		case "url":
			meta.URL = val.AsString()
		}
	}
	return nil
}

// paletteItem orders attributes and blocks by source position.
type paletteItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func parsePaletteBody(body *hclsyntax.Body, root, node *Node, prefix string) error {
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
		// Rebuild the context so this entry sees everything before it.
		ctx := BuildEvalContext(root)

		if item.attr != nil {
			name := item.attr.Name
			c, err := evalColor(item.attr.Expr, ctx)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", prefix, name, err)
			}

			if name == "color" {
				node.Color = &c
				continue
			}
			if node.Children == nil {
				node.Children = make(map[string]*Node)
			}
			node.Children[name] = &Node{Color: &c}
			continue
		}

		if node.Children == nil {
			node.Children = make(map[string]*Node)
		}
		child := &Node{}
		node.Children[item.block.Type] = child
		if err := parsePaletteBody(item.block.Body, root, child, prefix+"."+item.block.Type); err != nil {
			return err
		}
	}

	return nil
}

func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Line < attrs[j].SrcRange.Start.Line
	})
	return attrs
}
