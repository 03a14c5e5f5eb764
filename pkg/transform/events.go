package transform

import (
	"log/slog"
	"regexp"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

// defaultEventParam names the handler parameter when a callback omits it.
const defaultEventParam = "e"

// EventRule walks the lowered element tree and, using the setter map,
// fuses controlled-input idioms into two-way bindings and rewrites the
// remaining handler expressions into assignment or call form. Every binding
// carries the originating element's id as target.
type EventRule struct {
	mappings *Mappings
	logger   *slog.Logger
}

// NewEventRule constructs the rule with the given mapping tables.
func NewEventRule(mappings *Mappings, logger *slog.Logger) *EventRule {
	return &EventRule{mappings: mappings, logger: logger}
}

// Name identifies the rule in pipeline ordering checks.
func (*EventRule) Name() string { return "event" }

// Apply inspects the raw attributes of every element for value/change pairs
// and event-prefixed handlers.
func (r *EventRule) Apply(_ estree.Node, doc *ir.Document) {
	for _, element := range ir.Flatten(doc.Template.Elements) {
		r.lowerElementEvents(element, doc)
	}
}

func (r *EventRule) lowerElementEvents(element *ir.Element, doc *ir.Document) {
	fusedChange := r.fuseTwoWay(element, doc)

	for _, attr := range element.Raw {
		if !IsEventAttribute(attr.Name) {
			continue
		}

		if fusedChange && attr.Name == attrChange {
			continue
		}

		doc.Template.Bindings = append(doc.Template.Bindings, ir.Binding{
			Kind:    ir.BindingEvent,
			Name:    r.mappings.Event(attr.Name),
			Handler: r.handlerText(attributeExpression(attr), doc.SetterMap),
			Target:  element.ID,
		})
	}
}

// fuseTwoWay fuses a bare-identifier value attribute with a change handler
// calling the matching registered setter into one two-way binding. On
// fusion the value attribute is removed from the element and the change
// attribute is consumed.
func (r *EventRule) fuseTwoWay(element *ir.Element, doc *ir.Document) bool {
	var valueAttr, changeAttr *estree.JSXAttribute

	for _, attr := range element.Raw {
		switch attr.Name {
		case attrValue:
			valueAttr = attr
		case attrChange:
			changeAttr = attr
		}
	}

	if valueAttr == nil || changeAttr == nil {
		return false
	}

	valueIdent, ok := attributeExpression(valueAttr).(*estree.Identifier)
	if !ok {
		return false
	}

	property := valueIdent.Name

	callback, ok := attributeExpression(changeAttr).(*estree.ArrowFunction)
	if !ok || len(callback.Params) != 1 {
		return false
	}

	call, ok := callback.Body.(*estree.CallExpr)
	if !ok {
		return false
	}

	setter, ok := call.Callee.(*estree.Identifier)
	if !ok || doc.SetterMap[setter.Name] != property {
		return false
	}

	doc.Template.Bindings = append(doc.Template.Bindings, ir.Binding{
		Kind:   ir.BindingTwoWay,
		Name:   property,
		Target: element.ID,
	})

	element.TwoWayProperty = property
	removeValueAttribute(element, doc)

	r.logger.Debug("fused two-way binding", "property", property, "element", element.ID)

	return true
}

// removeValueAttribute strips the now-redundant value attribute from the
// element's plain attributes and property bindings.
func removeValueAttribute(element *ir.Element, doc *ir.Document) {
	filtered := element.Attributes[:0]

	for _, attr := range element.Attributes {
		if attr.Name != attrValue {
			filtered = append(filtered, attr)
		}
	}

	element.Attributes = filtered

	delete(element.PropertyBindings, attrValue)

	kept := doc.Template.Bindings[:0]

	for _, binding := range doc.Template.Bindings {
		if binding.Kind == ir.BindingProperty && binding.Name == attrValue && binding.Target == element.ID {
			continue
		}

		kept = append(kept, binding)
	}

	doc.Template.Bindings = kept
}

// handlerText rewrites a handler expression into target handler syntax.
// Priority order: bare identifier, setter call with member argument, setter
// call with plain argument, generic callback reprint with the event token,
// verbatim call reprint. Unrecognized shapes degrade to best-effort text,
// never to an error.
func (r *EventRule) handlerText(expr estree.Node, setterMap map[string]string) string {
	switch node := expr.(type) {
	case nil:
		return ""
	case *estree.Identifier:
		return node.Name + "()"
	case *estree.CallExpr:
		return exprText(node)
	case *estree.ArrowFunction:
		return r.arrowHandlerText(node, setterMap)
	default:
		return exprText(expr)
	}
}

// arrowHandlerText rewrites an inline callback. Calls to a registered
// setter become assignments; anything else is reprinted with the callback
// parameter replaced by the reserved event token.
func (r *EventRule) arrowHandlerText(callback *estree.ArrowFunction, setterMap map[string]string) string {
	paramName := paramNameAt(callback.Params, 0, defaultEventParam)

	if call, ok := callback.Body.(*estree.CallExpr); ok {
		if setter, ok := call.Callee.(*estree.Identifier); ok {
			if property, tracked := setterMap[setter.Name]; tracked {
				return setterAssignment(property, call)
			}
		}
	}

	return replaceIdentifier(exprText(callback.Body), paramName, eventToken)
}

// setterAssignment renders `setX(arg)` as an assignment to the tracked
// property. A member-shaped argument is the synthetic-event payload access;
// anything else is rendered literally.
func setterAssignment(property string, call *estree.CallExpr) string {
	if len(call.Arguments) == 0 {
		return property + " = ''"
	}

	if _, ok := call.Arguments[0].(*estree.MemberExpr); ok {
		return property + " = " + eventToken + ".target.value"
	}

	return property + " = " + exprText(call.Arguments[0])
}

// attributeExpression unwraps an attribute value to its inner expression.
func attributeExpression(attr *estree.JSXAttribute) estree.Node {
	if container, ok := attr.Value.(*estree.JSXExpressionContainer); ok {
		return container.Expression
	}

	return attr.Value
}

// replaceIdentifier substitutes whole-word occurrences of name in text.
func replaceIdentifier(text, name, replacement string) string {
	if name == "" {
		return text
	}

	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)

	return pattern.ReplaceAllString(text, replacement)
}
