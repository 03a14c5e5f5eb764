package generate

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

const templateIndent = "  "

// voidTags are the markup tags that never carry children and self-close.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Template renders the markup artifact from the element tree. Structural
// directives come first on each tag, then two-way, property, and event
// bindings matched by element id, then plain attributes. Nested children
// indent two spaces per depth. Pure: the document is never mutated.
func Template(doc *ir.Document, componentName string) string {
	_ = componentName

	var lines []string

	for _, el := range doc.Template.Elements {
		lines = append(lines, renderElement(el, doc.Template.Bindings, 0)...)
	}

	return strings.Join(lines, "\n")
}

func renderElement(el *ir.Element, bindings []ir.Binding, depth int) []string {
	pad := strings.Repeat(templateIndent, depth)
	attrs := renderTagAttributes(el, bindings)

	if voidTags[el.Tag] {
		return []string{pad + "<" + el.Tag + attrs + " />"}
	}

	children := renderChildren(el.Children, bindings, depth+1)
	if len(children) == 0 {
		return []string{pad + "<" + el.Tag + attrs + "></" + el.Tag + ">"}
	}

	lines := []string{pad + "<" + el.Tag + attrs + ">"}
	lines = append(lines, children...)
	lines = append(lines, pad+"</"+el.Tag+">")

	return lines
}

func renderChildren(children []ir.Child, bindings []ir.Binding, depth int) []string {
	pad := strings.Repeat(templateIndent, depth)

	var lines []string

	for _, child := range children {
		switch c := child.(type) {
		case ir.Text:
			if c != "" {
				lines = append(lines, pad+string(c))
			}
		case ir.Interpolation:
			lines = append(lines, pad+"{{ "+string(c)+" }}")
		case *ir.Element:
			lines = append(lines, renderElement(c, bindings, depth)...)
		}
	}

	return lines
}

func renderTagAttributes(el *ir.Element, bindings []ir.Binding) string {
	var attrs []string

	if el.Repeat != nil {
		attrs = append(attrs, fmt.Sprintf(`*ngFor="let %s of %s; let %s = index"`,
			el.Repeat.Item, el.Repeat.Array, el.Repeat.Index))
	}

	if el.Condition != "" {
		attrs = append(attrs, fmt.Sprintf(`*ngIf="%s"`, el.Condition))
	}

	if el.TwoWayProperty != "" {
		attrs = append(attrs, fmt.Sprintf(`[(ngModel)]="%s"`, el.TwoWayProperty))
	}

	for _, b := range bindings {
		if !bindingApplies(b, el) {
			continue
		}

		switch b.Kind {
		case ir.BindingProperty:
			attrs = append(attrs, fmt.Sprintf(`[%s]="%s"`, b.Name, b.Handler))
		case ir.BindingEvent:
			attrs = append(attrs, fmt.Sprintf(`(%s)="%s"`, b.Name, b.Handler))
		}
	}

	for _, a := range el.Attributes {
		if a.Value != "" {
			attrs = append(attrs, fmt.Sprintf(`%s="%s"`, a.Name, a.Value))
		} else {
			attrs = append(attrs, a.Name)
		}
	}

	if len(attrs) == 0 {
		return ""
	}

	return " " + strings.Join(attrs, " ")
}

// bindingApplies reports whether a binding attaches to an element. Targeted
// bindings attach by id; untargeted ones attach only to id-less elements,
// kept as a compatibility path for hand-built documents.
func bindingApplies(b ir.Binding, el *ir.Element) bool {
	if el.ID == "" {
		return b.Target == ""
	}

	return b.Target == el.ID
}
