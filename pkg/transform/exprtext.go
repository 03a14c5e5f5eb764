package transform

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
)

// exprText renders an expression node back into source text. It is the
// conservative renderer shared by the rules: anything outside the supported
// shapes renders as empty text, never as an error.
func exprText(n estree.Node) string {
	switch node := n.(type) {
	case *estree.Identifier:
		return node.Name
	case *estree.Literal:
		return literalText(node)
	case *estree.MemberExpr:
		object := exprText(node.Object)
		property := exprText(node.Property)

		if node.Computed {
			return object + "[" + property + "]"
		}

		if object == "" || property == "" {
			return object + property
		}

		return object + "." + property
	case *estree.CallExpr:
		args := make([]string, 0, len(node.Arguments))
		for _, arg := range node.Arguments {
			args = append(args, exprText(arg))
		}

		return exprText(node.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *estree.BinaryExpr:
		return exprText(node.Left) + " " + node.Operator + " " + exprText(node.Right)
	case *estree.ArrayExpr:
		items := make([]string, 0, len(node.Elements))
		for _, el := range node.Elements {
			items = append(items, exprText(el))
		}

		return "[" + strings.Join(items, ", ") + "]"
	case *estree.SpreadElement:
		return "..." + exprText(node.Argument)
	case *estree.ArrowFunction:
		params := make([]string, 0, len(node.Params))

		for _, p := range node.Params {
			if ident, ok := p.(*estree.Identifier); ok {
				params = append(params, ident.Name)
			}
		}

		return "(" + strings.Join(params, ", ") + ") => ..."
	default:
		return ""
	}
}

// literalText prefers the source spelling when the parser kept it, falling
// back to a synthesized rendering of the value.
func literalText(lit *estree.Literal) string {
	if lit.Raw != "" {
		return lit.Raw
	}

	switch value := lit.Value.(type) {
	case nil:
		return "null"
	case string:
		return "'" + value + "'"
	case bool:
		return fmt.Sprintf("%t", value)
	case json.Number:
		return value.String()
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%v", value), ".0")
	default:
		return fmt.Sprintf("%v", value)
	}
}

// stmtText renders a statement node into method body text. Supported:
// expression statements over the expression renderer and conditional
// statements. Unsupported shapes render empty.
func stmtText(n estree.Node) string {
	switch node := n.(type) {
	case *estree.ExpressionStmt:
		return exprText(node.Expression)
	case *estree.IfStmt:
		consequent := blockText(node.Consequent)

		return "if (" + exprText(node.Test) + ") {\n    " + consequent + "\n}"
	default:
		return exprText(n)
	}
}

// blockText renders a block statement line by line; a bare expression body
// renders as a single line.
func blockText(n estree.Node) string {
	block, ok := n.(*estree.BlockStmt)
	if !ok {
		return stmtText(n)
	}

	lines := make([]string, 0, len(block.Body))

	for _, stmt := range block.Body {
		if text := stmtText(stmt); text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n")
}
