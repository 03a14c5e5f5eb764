package transform

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

// Lifecycle hook names emitted by the state-hook rule.
const (
	hookInit    = "ngOnInit"
	hookDestroy = "ngOnDestroy"
)

// StateHookRule lowers state-hook declarations into class properties and
// records the setter→property correspondence used by later rules. Effect
// hooks lower into lifecycle hooks. Unrecognized declaration shapes are
// skipped without error; the rule is never fatal.
type StateHookRule struct {
	mappings *Mappings
	logger   *slog.Logger
}

// NewStateHookRule constructs the rule with the given mapping tables.
func NewStateHookRule(mappings *Mappings, logger *slog.Logger) *StateHookRule {
	return &StateHookRule{mappings: mappings, logger: logger}
}

// Name identifies the rule in pipeline ordering checks.
func (*StateHookRule) Name() string { return "state-hook" }

// Apply searches the tree depth-first, scope-unbounded, for state and effect
// hook call patterns and lowers each match into the document.
func (r *StateHookRule) Apply(root estree.Node, doc *ir.Document) {
	estree.Walk(root, func(n estree.Node) bool {
		switch node := n.(type) {
		case *estree.VariableDecl:
			for _, decl := range node.Declarations {
				r.lowerStateDecl(decl, doc)
			}
		case *estree.CallExpr:
			r.lowerEffect(node, doc)
		}

		return true
	})
}

// lowerStateDecl matches `const [value, setter] = useState(init)` and emits
// one property plus a setter map entry.
func (r *StateHookRule) lowerStateDecl(decl *estree.VariableDeclarator, doc *ir.Document) {
	pattern, ok := decl.ID.(*estree.ArrayPattern)
	if !ok {
		return
	}

	call, ok := decl.Init.(*estree.CallExpr)
	if !ok {
		return
	}

	callee, ok := call.Callee.(*estree.Identifier)
	if !ok || callee.Name != hookUseState {
		return
	}

	stateName, setterName, ok := destructuredPair(pattern)
	if !ok {
		r.logger.Debug("skipping irregular state destructuring", "elements", len(pattern.Elements))

		return
	}

	var initArg estree.Node
	if len(call.Arguments) > 0 {
		initArg = call.Arguments[0]
	}

	if !doc.HasProperty(stateName) {
		doc.Class.Properties = append(doc.Class.Properties, ir.Property{
			Name:         stateName,
			Type:         inferType(initArg),
			InitialValue: exprText(initArg),
		})
	}

	doc.SetterMap[setterName] = stateName

	r.logger.Debug("lowered state hook", "state", stateName, "setter", setterName)
}

// lowerEffect matches `useEffect(() => { ... })`. The callback body becomes
// the init lifecycle hook; a returned cleanup function additionally becomes
// the destroy hook.
func (r *StateHookRule) lowerEffect(call *estree.CallExpr, doc *ir.Document) {
	callee, ok := call.Callee.(*estree.Identifier)
	if !ok || callee.Name != hookUseEffect || len(call.Arguments) == 0 {
		return
	}

	callback, ok := call.Arguments[0].(*estree.ArrowFunction)
	if !ok {
		return
	}

	initBody, cleanupBody := splitEffectBody(callback.Body)

	if initBody != "" && !doc.HasLifecycleHook(hookInit) {
		doc.Class.LifecycleHooks = append(doc.Class.LifecycleHooks, ir.Method{
			Name:       hookInit,
			Body:       initBody,
			ReturnType: "void",
		})
	}

	if cleanupBody != "" && !doc.HasLifecycleHook(hookDestroy) {
		doc.Class.LifecycleHooks = append(doc.Class.LifecycleHooks, ir.Method{
			Name:       hookDestroy,
			Body:       cleanupBody,
			ReturnType: "void",
		})
	}
}

// splitEffectBody separates an effect callback body into init statements and
// the body of a returned cleanup function, if any.
func splitEffectBody(body estree.Node) (initBody, cleanupBody string) {
	block, ok := body.(*estree.BlockStmt)
	if !ok {
		return stmtText(body), ""
	}

	var initLines []string

	for _, stmt := range block.Body {
		if ret, ok := stmt.(*estree.ReturnStmt); ok {
			if cleanup, ok := ret.Argument.(*estree.ArrowFunction); ok {
				cleanupBody = blockText(cleanup.Body)

				continue
			}
		}

		if text := stmtText(stmt); text != "" {
			initLines = append(initLines, text)
		}
	}

	return strings.Join(initLines, "\n"), cleanupBody
}

// destructuredPair extracts the [value, setter] identifier pair; anything
// other than exactly two identifiers fails the match.
func destructuredPair(pattern *estree.ArrayPattern) (stateName, setterName string, ok bool) {
	if len(pattern.Elements) != 2 {
		return "", "", false
	}

	state, ok := pattern.Elements[0].(*estree.Identifier)
	if !ok {
		return "", "", false
	}

	setter, ok := pattern.Elements[1].(*estree.Identifier)
	if !ok {
		return "", "", false
	}

	return state.Name, setter.Name, true
}

// inferType maps the syntactic shape of an initial value onto a declared
// type. Anything unrecognized falls back to the dynamic type.
func inferType(arg estree.Node) string {
	switch node := arg.(type) {
	case *estree.ArrayExpr:
		return arrayType(node)
	case *estree.Literal:
		switch node.Value.(type) {
		case string:
			return "string"
		case json.Number, float64, int:
			return "number"
		case bool:
			return "boolean"
		default:
			return "any"
		}
	default:
		return "any"
	}
}

// arrayType refines the element type when every element shares a literal
// shape.
func arrayType(arr *estree.ArrayExpr) string {
	if len(arr.Elements) == 0 {
		return "any[]"
	}

	elemType := ""

	for _, el := range arr.Elements {
		lit, ok := el.(*estree.Literal)
		if !ok {
			return "any[]"
		}

		current := inferType(lit)
		if elemType == "" {
			elemType = current
		}

		if current != elemType || current == "any" {
			return "any[]"
		}
	}

	return elemType + "[]"
}
