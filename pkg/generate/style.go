package generate

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

// Styles renders the stylesheet artifact. An empty style list yields a
// placeholder comment so callers always get a writable artifact.
func Styles(doc *ir.Document, componentName string) string {
	if len(doc.Styles) == 0 {
		return fmt.Sprintf("/* Styles for %s component */\n", componentName)
	}

	blocks := make([]string, 0, len(doc.Styles))

	for _, style := range doc.Styles {
		if block := renderStyleBlock(style); block != "" {
			blocks = append(blocks, block)
		}
	}

	return strings.Join(blocks, "\n")
}

func renderStyleBlock(style ir.Style) string {
	if len(style.Declarations) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(style.Selector + " {\n")

	for _, decl := range style.Declarations {
		b.WriteString("  " + decl.Property + ": " + decl.Value + ";\n")
	}

	b.WriteString("}")

	return b.String()
}
