package palette

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	repeatedBlankLines   = regexp.MustCompile(`\n{3,}`)
	blankAfterOpenBrace  = regexp.MustCompile(`\{\n\s*\n`)
	blankBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// FormatSource returns palette HCL source in canonical style:
// hclwrite's indentation and alignment rules plus collapsed blank
// lines and a guaranteed trailing newline. It tolerates partial or
// invalid HCL, so it is safe to run on documents mid-edit.
func FormatSource(content string) string {
	out := string(hclwrite.Format([]byte(content)))
	out = repeatedBlankLines.ReplaceAllString(out, "\n\n")
	out = blankAfterOpenBrace.ReplaceAllString(out, "{\n")
	out = blankBeforeCloseBrace.ReplaceAllString(out, "\n${1}")
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
