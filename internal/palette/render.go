package palette

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/jsvensson/chromatic"
)

// Entry is one named color in the flattened palette output.
type Entry struct {
	Name  string
	Color chromatic.Color
}

// Entries flattens the palette tree (paths joined with "-") followed
// by the swatches, in deterministic order.
func (p *Palette) Entries() []Entry {
	var entries []Entry

	p.Colors.Walk(func(path []string, c chromatic.Color) {
		if len(path) == 0 {
			return
		}
		entries = append(entries, Entry{Name: strings.Join(path, "-"), Color: c})
	})

	names := make([]string, 0, len(p.Swatches))
	for name := range p.Swatches {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Color: p.Swatches[name]})
	}

	return entries
}

var cssTemplate = template.Must(template.New("css").Funcs(renderFuncs).Parse(
	`:root {
{{- range .}}
  --{{.Name}}: {{hex .Color}};
{{- end}}
}
`))

var listTemplate = template.Must(template.New("list").Funcs(renderFuncs).Parse(
	`{{range .}}{{.Name}}	{{hex .Color}}	{{rgb .Color}}	{{hsl .Color}}
{{end}}`))

var renderFuncs = template.FuncMap{
	"hex": func(c chromatic.Color) string { return c.HexString() },
	"rgb": func(c chromatic.Color) string { return c.RGBString() },
	"hsl": func(c chromatic.Color) string { return c.HSLString() },
}

// Render serializes the resolved palette in the given output format:
// "css" (custom properties), "json" (flat name-to-hex object) or
// "list" (tab-separated multi-space readout).
func Render(p *Palette, format string) (string, error) {
	entries := p.Entries()

	switch format {
	case "css":
		var sb strings.Builder
		if err := cssTemplate.Execute(&sb, entries); err != nil {
			return "", fmt.Errorf("rendering css: %w", err)
		}
		return sb.String(), nil

	case "list":
		var sb strings.Builder
		if err := listTemplate.Execute(&sb, entries); err != nil {
			return "", fmt.Errorf("rendering list: %w", err)
		}
		return sb.String(), nil

	case "json":
		// Color marshals itself as its hex string.
		flat := make(map[string]chromatic.Color, len(entries))
		for _, e := range entries {
			flat[e.Name] = e.Color
		}
		data, err := json.MarshalIndent(flat, "", "  ")
		if err != nil {
			return "", fmt.Errorf("rendering json: %w", err)
		}
		return string(data) + "\n", nil

	default:
		return "", fmt.Errorf("unknown output format %q (valid: css, json, list)", format)
	}
}
