package palette

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/jsvensson/chromatic"
)

// evalColor evaluates an HCL expression and resolves the result to a
// color. String results go through chromatic.Parse, so any syntax the
// library accepts works in a palette document; object results must
// carry a "color" attribute (a group with its own color).
func evalColor(expr hclsyntax.Expression, ctx *hcl.EvalContext) (chromatic.Color, error) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return chromatic.Color{}, fmt.Errorf("evaluating expression: %s", diags.Error())
	}
	return ResolveValue(val)
}

// ResolveValue extracts a color from a cty value: either a color
// string or an object with a "color" key.
func ResolveValue(val cty.Value) (chromatic.Color, error) {
	if val.Type() == cty.String {
		return chromatic.Parse(val.AsString())
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return chromatic.Parse(colorVal.AsString())
			}
		}
		return chromatic.Color{}, fmt.Errorf("group has no 'color' attribute; reference a specific child or add a color attribute")
	}
	return chromatic.Color{}, fmt.Errorf("expected color string or group, got %s", val.Type().FriendlyName())
}

// NodeToCty converts a palette node to a cty value for the HCL
// evaluation context. Leaves become hex strings; groups become
// objects, with "color" as a sibling key when the group has its own
// color.
func NodeToCty(node *Node) cty.Value {
	if node.Children == nil {
		if node.Color != nil {
			return cty.StringVal(node.Color.HexString())
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)

	if node.Color != nil {
		vals["color"] = cty.StringVal(node.Color.HexString())
	}

	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = NodeToCty(node.Children[k])
	}

	return cty.ObjectVal(vals)
}

// BuildEvalContext creates the HCL evaluation context exposing the
// palette tree under "palette" and the color functions.
func BuildEvalContext(root *Node) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": NodeToCty(root),
		},
		Functions: map[string]function.Function{
			"mix":        mixFunc,
			"lighten":    adjustFunc("Lightens a color by shifting its HSL lightness", lighten),
			"darken":     adjustFunc("Darkens a color by shifting its HSL lightness", darken),
			"saturate":   adjustFunc("Increases HSL saturation", saturate),
			"desaturate": adjustFunc("Decreases HSL saturation", desaturate),
			"shade":      adjustFunc("Sets the absolute Oklab lightness, keeping hue and chroma", shade),
			"alpha":      adjustFunc("Sets the alpha channel", withAlpha),
			"complement": complementFunc,
		},
	}
}

// mixFunc blends two colors in Oklab: mix(a, b, t).
var mixFunc = function.New(&function.Spec{
	Description: "Blends two colors in the Oklab space",
	Params: []function.Parameter{
		{Name: "a", Type: cty.String},
		{Name: "b", Type: cty.String},
		{Name: "t", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		c1, err := chromatic.Parse(args[0].AsString())
		if err != nil {
			return cty.NilVal, err
		}
		c2, err := chromatic.Parse(args[1].AsString())
		if err != nil {
			return cty.NilVal, err
		}
		t, _ := args[2].AsBigFloat().Float64()

		return cty.StringVal(c1.InterpolateOklab(c2, float32(t)).HexString()), nil
	},
})

// adjustFunc wraps a single color-and-amount adjustment as an HCL
// function: fn(color, amount).
func adjustFunc(desc string, adjust func(chromatic.Color, float32) chromatic.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := chromatic.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			amt, _ := args[1].AsBigFloat().Float64()

			return cty.StringVal(adjust(c, float32(amt)).HexString()), nil
		},
	})
}

var complementFunc = function.New(&function.Spec{
	Description: "Returns the hue complement (180 degrees across the wheel)",
	Params: []function.Parameter{
		{Name: "color", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		c, err := chromatic.Parse(args[0].AsString())
		if err != nil {
			return cty.NilVal, err
		}
		return cty.StringVal(complement(c).HexString()), nil
	},
})
