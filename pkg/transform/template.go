package transform

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

// Defaults for map callbacks that omit parameters.
const (
	defaultItemName  = "item"
	defaultIndexName = "index"
)

// fallbackTag is used when a markup element carries no resolvable tag and
// for placeholder elements emitted when a list callback cannot be reduced
// to markup.
const (
	fallbackTag    = "div"
	placeholderTag = "li"
)

// mapCallName is the map-like call property recognized as a list-rendering
// idiom.
const mapCallName = "map"

// TemplateRule lowers the component's returned markup tree into the element
// tree of the document. Every element receives its id at creation time,
// before the event rule runs, so binding attachment is by identity.
type TemplateRule struct {
	mappings *Mappings
	logger   *slog.Logger
}

// NewTemplateRule constructs the rule with the given mapping tables.
func NewTemplateRule(mappings *Mappings, logger *slog.Logger) *TemplateRule {
	return &TemplateRule{mappings: mappings, logger: logger}
}

// Name identifies the rule in pipeline ordering checks.
func (*TemplateRule) Name() string { return "template" }

// Apply locates the returned markup tree and lowers it into one root
// element. A tree with no returned markup leaves the template empty.
func (r *TemplateRule) Apply(root estree.Node, doc *ir.Document) {
	jsx := findReturnedMarkup(root)
	if jsx == nil {
		r.logger.Debug("no returned markup found")

		return
	}

	element := r.lowerElement(jsx, doc)
	if element != nil {
		doc.Template.Elements = append(doc.Template.Elements, element)
	}
}

// findReturnedMarkup returns the first markup element that is the argument
// of a return statement, depth-first.
func findReturnedMarkup(root estree.Node) *estree.JSXElement {
	found := estree.Find(root, func(n estree.Node) bool {
		ret, ok := n.(*estree.ReturnStmt)
		if !ok {
			return false
		}

		_, ok = ret.Argument.(*estree.JSXElement)

		return ok
	})

	ret, ok := found.(*estree.ReturnStmt)
	if !ok {
		return nil
	}

	jsx, _ := ret.Argument.(*estree.JSXElement)

	return jsx
}

// lowerElement converts one markup element and its subtree, depth-first.
func (r *TemplateRule) lowerElement(jsx *estree.JSXElement, doc *ir.Document) *ir.Element {
	tag := jsx.Name
	if tag == "" {
		tag = fallbackTag
	}

	element := doc.NewElement(tag)
	element.Raw = jsx.Attributes

	r.lowerAttributes(jsx, element, doc)

	for _, child := range jsx.Children {
		lowered := r.lowerChild(child, doc)
		if lowered != nil {
			element.Children = append(element.Children, lowered)
		}
	}

	return element
}

// lowerAttributes filters the attribute list: the list-key attribute is
// dropped, the class alias renamed, event-prefixed attributes deferred to
// the event rule, expression values recorded as property bindings, and the
// remainder kept as plain attributes.
func (r *TemplateRule) lowerAttributes(jsx *estree.JSXElement, element *ir.Element, doc *ir.Document) {
	for _, attr := range jsx.Attributes {
		name := attr.Name

		if name == attrListKey {
			continue
		}

		if IsEventAttribute(name) {
			continue
		}

		name = r.mappings.Attribute(name)

		switch value := attr.Value.(type) {
		case *estree.Literal:
			element.Attributes = append(element.Attributes, ir.Attribute{
				Name:  name,
				Value: plainLiteral(value),
			})
		case *estree.JSXExpressionContainer:
			expr := exprText(value.Expression)
			if expr == "" {
				continue
			}

			if element.PropertyBindings == nil {
				element.PropertyBindings = make(map[string]string)
			}

			element.PropertyBindings[name] = expr
			doc.Template.Bindings = append(doc.Template.Bindings, ir.Binding{
				Kind:    ir.BindingProperty,
				Name:    name,
				Handler: expr,
				Target:  element.ID,
			})
		case nil:
			element.Attributes = append(element.Attributes, ir.Attribute{Name: name})
		}
	}
}

// lowerChild converts one markup child: text is trimmed, expression holes
// become interpolation tokens or list-rendered elements, nested markup
// recurses.
func (r *TemplateRule) lowerChild(child estree.Node, doc *ir.Document) ir.Child {
	switch node := child.(type) {
	case *estree.JSXText:
		text := strings.TrimSpace(node.Value)
		if text == "" {
			return nil
		}

		return ir.Text(text)
	case *estree.JSXElement:
		return r.lowerElement(node, doc)
	case *estree.JSXExpressionContainer:
		return r.lowerExpressionChild(node.Expression, doc)
	default:
		return nil
	}
}

// lowerExpressionChild handles {expr} holes: list-rendering calls become
// elements with a repetition directive, guard expressions become elements
// with a conditional directive, anything else an interpolation token.
func (r *TemplateRule) lowerExpressionChild(expr estree.Node, doc *ir.Document) ir.Child {
	if call, ok := expr.(*estree.CallExpr); ok {
		if element := r.lowerMapCall(call, doc); element != nil {
			return element
		}
	}

	if guard, ok := expr.(*estree.BinaryExpr); ok && guard.Operator == "&&" {
		if jsx, ok := guard.Right.(*estree.JSXElement); ok {
			element := r.lowerElement(jsx, doc)
			element.Condition = exprText(guard.Left)

			return element
		}
	}

	if text := exprText(expr); text != "" {
		return ir.Interpolation(text)
	}

	return nil
}

// lowerMapCall detects `array.map((item, index) => <markup>)` and lowers the
// callback markup into an element carrying a repetition directive. Returns
// nil when the call is not a list-rendering idiom.
func (r *TemplateRule) lowerMapCall(call *estree.CallExpr, doc *ir.Document) *ir.Element {
	member, ok := call.Callee.(*estree.MemberExpr)
	if !ok {
		return nil
	}

	property, ok := member.Property.(*estree.Identifier)
	if !ok || property.Name != mapCallName {
		return nil
	}

	arrayName := exprText(member.Object)
	if len(call.Arguments) == 0 {
		return nil
	}

	var params []estree.Node

	var body estree.Node

	switch callback := call.Arguments[0].(type) {
	case *estree.ArrowFunction:
		params, body = callback.Params, callback.Body
	case *estree.FunctionExpr:
		params, body = callback.Params, callback.Body
	default:
		return nil
	}

	repeat := &ir.Repeat{
		Array: arrayName,
		Item:  paramNameAt(params, 0, defaultItemName),
		Index: paramNameAt(params, 1, defaultIndexName),
	}

	jsx := callbackMarkup(body)
	if jsx == nil {
		// The callback body cannot be reduced to markup; emit a minimal
		// placeholder instead of failing.
		r.logger.Debug("irreducible list callback", "array", arrayName)

		placeholder := doc.NewElement(placeholderTag)
		placeholder.Repeat = repeat
		placeholder.Children = append(placeholder.Children, ir.Interpolation(repeat.Item))

		return placeholder
	}

	element := r.lowerElement(jsx, doc)
	element.Repeat = repeat

	return element
}

// callbackMarkup extracts the markup a map callback evaluates to: either the
// body itself or the argument of a return statement inside a block body.
func callbackMarkup(body estree.Node) *estree.JSXElement {
	if jsx, ok := body.(*estree.JSXElement); ok {
		return jsx
	}

	block, ok := body.(*estree.BlockStmt)
	if !ok {
		return nil
	}

	for _, stmt := range block.Body {
		ret, ok := stmt.(*estree.ReturnStmt)
		if !ok {
			continue
		}

		if jsx, ok := ret.Argument.(*estree.JSXElement); ok {
			return jsx
		}
	}

	return nil
}

func paramNameAt(params []estree.Node, idx int, fallback string) string {
	if idx < len(params) {
		if ident, ok := params[idx].(*estree.Identifier); ok && ident.Name != "" {
			return ident.Name
		}
	}

	return fallback
}

// plainLiteral renders a literal attribute value without quoting.
func plainLiteral(lit *estree.Literal) string {
	switch value := lit.Value.(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}
