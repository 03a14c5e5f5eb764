package transform

import (
	"log/slog"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

// fallbackComponentName is used when the input carries no named component
// function.
const fallbackComponentName = "MyComponent"

// inputDecorator marks a property as externally supplied.
const inputDecorator = "@Input()"

// ComponentRule extracts the component's name, lowers function parameters
// into inbound properties, and lowers top-level local function bindings into
// methods. Properties and methods already present from earlier rules are
// never overwritten.
type ComponentRule struct {
	mappings *Mappings
	logger   *slog.Logger
}

// NewComponentRule constructs the rule with the given mapping tables.
func NewComponentRule(mappings *Mappings, logger *slog.Logger) *ComponentRule {
	return &ComponentRule{mappings: mappings, logger: logger}
}

// Name identifies the rule in pipeline ordering checks.
func (*ComponentRule) Name() string { return "component" }

// Apply locates the component function and lowers its surface into the
// class section of the document.
func (r *ComponentRule) Apply(root estree.Node, doc *ir.Document) {
	fn := findComponentFunction(root)
	if fn == nil {
		doc.Class.Name = fallbackComponentName

		r.logger.Debug("no component function found, using placeholder name")

		return
	}

	doc.Class.Name = fn.Name
	if doc.Class.Name == "" {
		doc.Class.Name = fallbackComponentName
	}

	r.lowerParams(fn, doc)

	if fn.Body != nil {
		r.lowerLocalFunctions(fn.Body, doc)
	}
}

// findComponentFunction returns the first function declaration in the tree,
// depth-first, or nil.
func findComponentFunction(root estree.Node) *estree.FunctionDecl {
	found := estree.Find(root, func(n estree.Node) bool {
		_, ok := n.(*estree.FunctionDecl)

		return ok
	})

	fn, _ := found.(*estree.FunctionDecl)

	return fn
}

// lowerParams turns each identifier parameter into an inbound property.
func (r *ComponentRule) lowerParams(fn *estree.FunctionDecl, doc *ir.Document) {
	for _, param := range fn.Params {
		ident, ok := param.(*estree.Identifier)
		if !ok {
			continue
		}

		if doc.HasProperty(ident.Name) {
			continue
		}

		doc.Class.Properties = append(doc.Class.Properties, ir.Property{
			Name:         ident.Name,
			Type:         "any",
			InitialValue: "''",
			Decorator:    inputDecorator,
		})
	}
}

// lowerLocalFunctions scans the immediate function body, one level deep, for
// named function bindings and lowers each into a method.
func (r *ComponentRule) lowerLocalFunctions(body *estree.BlockStmt, doc *ir.Document) {
	for _, stmt := range body.Body {
		switch node := stmt.(type) {
		case *estree.VariableDecl:
			for _, decl := range node.Declarations {
				r.lowerFunctionBinding(decl, doc)
			}
		case *estree.FunctionDecl:
			if node.Name == "" || doc.HasMethod(node.Name) {
				continue
			}

			var fnBody estree.Node
			if node.Body != nil {
				fnBody = node.Body
			}

			r.appendMethod(doc, node.Name, node.Params, fnBody)
		}
	}
}

// lowerFunctionBinding matches `const name = <arrow or function expression>`.
func (r *ComponentRule) lowerFunctionBinding(decl *estree.VariableDeclarator, doc *ir.Document) {
	ident, ok := decl.ID.(*estree.Identifier)
	if !ok {
		return
	}

	var params []estree.Node

	var fnBody estree.Node

	switch init := decl.Init.(type) {
	case *estree.ArrowFunction:
		params, fnBody = init.Params, init.Body
	case *estree.FunctionExpr:
		params, fnBody = init.Params, init.Body
	default:
		return
	}

	if doc.HasMethod(ident.Name) {
		return
	}

	r.appendMethod(doc, ident.Name, params, fnBody)
}

func (r *ComponentRule) appendMethod(doc *ir.Document, name string, params []estree.Node, body estree.Node) {
	doc.Class.Methods = append(doc.Class.Methods, ir.Method{
		Name:       name,
		Parameters: paramNames(params),
		Body:       blockText(body),
		ReturnType: "void",
	})

	r.logger.Debug("lowered method", "name", name)
}

func paramNames(params []estree.Node) []string {
	names := make([]string, 0, len(params))

	for _, p := range params {
		if ident, ok := p.(*estree.Identifier); ok {
			names = append(names, ident.Name)
		}
	}

	return names
}
