package estree

import (
	"encoding/json"
	"fmt"
)

// Marshal renders a node tree back into ESTree-shaped JSON, the inverse of
// Decode for every kind in the union. Used by the parse command to dump
// trees produced by the tree-sitter front end.
func Marshal(n Node) ([]byte, error) {
	data, err := json.MarshalIndent(toMap(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("estree: marshal: %w", err)
	}

	return data, nil
}

//nolint:cyclop,funlen // one arm per node kind, exhaustive over the union.
func toMap(n Node) map[string]any {
	if n == nil {
		return nil
	}

	obj := map[string]any{"type": n.Kind()}

	switch node := n.(type) {
	case *Program:
		obj["body"] = toList(node.Body)
	case *FunctionDecl:
		obj["id"] = identRecord(node.Name)
		obj["params"] = toList(node.Params)

		if node.Body != nil {
			obj["body"] = toMap(node.Body)
		}
	case *FunctionExpr:
		obj["id"] = identRecord(node.Name)
		obj["params"] = toList(node.Params)
		obj["body"] = toMap(node.Body)
	case *ArrowFunction:
		obj["params"] = toList(node.Params)
		obj["body"] = toMap(node.Body)
	case *VariableDecl:
		obj["kind"] = node.DeclKind

		declarations := make([]any, 0, len(node.Declarations))
		for _, decl := range node.Declarations {
			declarations = append(declarations, toMap(decl))
		}

		obj["declarations"] = declarations
	case *VariableDeclarator:
		obj["id"] = toMap(node.ID)
		obj["init"] = toMap(node.Init)
	case *ArrayPattern:
		obj["elements"] = toList(node.Elements)
	case *CallExpr:
		obj["callee"] = toMap(node.Callee)
		obj["arguments"] = toList(node.Arguments)
	case *MemberExpr:
		obj["object"] = toMap(node.Object)
		obj["property"] = toMap(node.Property)
		obj["computed"] = node.Computed
	case *Identifier:
		obj["name"] = node.Name
	case *Literal:
		obj["value"] = node.Value
		obj["raw"] = node.Raw
	case *JSXElement:
		attributes := make([]any, 0, len(node.Attributes))
		for _, attr := range node.Attributes {
			attributes = append(attributes, toMap(attr))
		}

		obj["openingElement"] = map[string]any{
			"type":        "JSXOpeningElement",
			"name":        map[string]any{"type": "JSXIdentifier", "name": node.Name},
			"attributes":  attributes,
			"selfClosing": node.SelfClosing,
		}
		obj["children"] = toList(node.Children)
	case *JSXAttribute:
		obj["name"] = map[string]any{"type": "JSXIdentifier", "name": node.Name}
		obj["value"] = toMap(node.Value)
	case *JSXExpressionContainer:
		obj["expression"] = toMap(node.Expression)
	case *JSXText:
		obj["value"] = node.Value
	case *ReturnStmt:
		obj["argument"] = toMap(node.Argument)
	case *IfStmt:
		obj["test"] = toMap(node.Test)
		obj["consequent"] = toMap(node.Consequent)
		obj["alternate"] = toMap(node.Alternate)
	case *ExpressionStmt:
		obj["expression"] = toMap(node.Expression)
	case *BlockStmt:
		obj["body"] = toList(node.Body)
	case *BinaryExpr:
		obj["operator"] = node.Operator
		obj["left"] = toMap(node.Left)
		obj["right"] = toMap(node.Right)
	case *ArrayExpr:
		obj["elements"] = toList(node.Elements)
	case *SpreadElement:
		obj["argument"] = toMap(node.Argument)
	case *Unknown:
		obj["type"] = KindUnknown
		obj["original"] = node.Type
	}

	return obj
}

func toList(nodes []Node) []any {
	out := make([]any, 0, len(nodes))

	for _, n := range nodes {
		if n == nil {
			continue
		}

		out = append(out, toMap(n))
	}

	return out
}

func identRecord(name string) map[string]any {
	if name == "" {
		return nil
	}

	return map[string]any{"type": KindIdentifier, "name": name}
}
