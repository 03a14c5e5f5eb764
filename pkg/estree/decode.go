package estree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnparsableInput reports malformed JSON input. It is the only fatal
// decoding failure; unrecognized node kinds degrade to Unknown nodes.
var ErrUnparsableInput = errors.New("estree: unparsable input")

// Decode converts an ESTree-shaped JSON document into the node union. The
// field vocabulary follows esprima/babel output: discriminators in "type",
// nested records for openingElement, declarations, callee, and so on.
// Unrecognized node kinds become Unknown nodes rather than errors; only
// malformed JSON is fatal.
func Decode(data []byte) (Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any

	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparsableInput, err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrUnparsableInput)
	}

	return decodeNode(obj), nil
}

// decodeNode lowers one JSON object into the union. Anything it does not
// recognize yields an Unknown node carrying the original discriminator.
func decodeNode(obj map[string]any) Node {
	nodeType, _ := obj["type"].(string)

	switch nodeType {
	case KindProgram:
		return &Program{Body: decodeList(obj["body"])}
	case KindFunctionDecl:
		return decodeFunctionDecl(obj)
	case KindFunctionExpr:
		return &FunctionExpr{
			Name:   nestedName(obj["id"]),
			Params: decodeList(obj["params"]),
			Body:   decodeChild(obj["body"]),
		}
	case KindArrowFunction:
		return &ArrowFunction{
			Params: decodeList(obj["params"]),
			Body:   decodeChild(obj["body"]),
		}
	case KindVariableDecl:
		return decodeVariableDecl(obj)
	case KindVariableDeclarator:
		return &VariableDeclarator{ID: decodeChild(obj["id"]), Init: decodeChild(obj["init"])}
	case KindArrayPattern:
		return &ArrayPattern{Elements: decodeList(obj["elements"])}
	case KindCallExpr:
		return &CallExpr{Callee: decodeChild(obj["callee"]), Arguments: decodeList(obj["arguments"])}
	case KindMemberExpr:
		computed, _ := obj["computed"].(bool)

		return &MemberExpr{
			Object:   decodeChild(obj["object"]),
			Property: decodeChild(obj["property"]),
			Computed: computed,
		}
	case KindIdentifier, "JSXIdentifier":
		name, _ := obj["name"].(string)

		return &Identifier{Name: name}
	case KindLiteral, "StringLiteral", "NumericLiteral", "BooleanLiteral", "NullLiteral":
		raw, _ := obj["raw"].(string)

		return &Literal{Value: obj["value"], Raw: raw}
	case KindJSXElement:
		return decodeJSXElement(obj)
	case KindJSXAttribute:
		return &JSXAttribute{Name: nestedName(obj["name"]), Value: decodeChild(obj["value"])}
	case KindJSXExpressionContainer:
		return &JSXExpressionContainer{Expression: decodeChild(obj["expression"])}
	case KindJSXText:
		value, _ := obj["value"].(string)

		return &JSXText{Value: value}
	case KindReturnStmt:
		return &ReturnStmt{Argument: decodeChild(obj["argument"])}
	case KindIfStmt:
		return &IfStmt{
			Test:       decodeChild(obj["test"]),
			Consequent: decodeChild(obj["consequent"]),
			Alternate:  decodeChild(obj["alternate"]),
		}
	case KindExpressionStmt:
		return &ExpressionStmt{Expression: decodeChild(obj["expression"])}
	case KindBlockStmt:
		return &BlockStmt{Body: decodeList(obj["body"])}
	case KindBinaryExpr:
		operator, _ := obj["operator"].(string)

		return &BinaryExpr{Operator: operator, Left: decodeChild(obj["left"]), Right: decodeChild(obj["right"])}
	case KindArrayExpr:
		return &ArrayExpr{Elements: decodeList(obj["elements"])}
	case KindSpreadElement, "SpreadProperty", "RestElement":
		return &SpreadElement{Argument: decodeChild(obj["argument"])}
	default:
		return &Unknown{Type: nodeType}
	}
}

func decodeFunctionDecl(obj map[string]any) Node {
	decl := &FunctionDecl{
		Name:   nestedName(obj["id"]),
		Params: decodeList(obj["params"]),
	}

	if body, ok := decodeChild(obj["body"]).(*BlockStmt); ok {
		decl.Body = body
	}

	return decl
}

func decodeVariableDecl(obj map[string]any) Node {
	declKind, _ := obj["kind"].(string)
	decl := &VariableDecl{DeclKind: declKind}

	for _, child := range decodeList(obj["declarations"]) {
		if declarator, ok := child.(*VariableDeclarator); ok {
			decl.Declarations = append(decl.Declarations, declarator)
		}
	}

	return decl
}

func decodeJSXElement(obj map[string]any) Node {
	element := &JSXElement{Children: decodeList(obj["children"])}

	opening, ok := obj["openingElement"].(map[string]any)
	if !ok {
		return element
	}

	element.Name = nestedName(opening["name"])
	element.SelfClosing, _ = opening["selfClosing"].(bool)

	for _, child := range decodeList(opening["attributes"]) {
		if attr, ok := child.(*JSXAttribute); ok {
			element.Attributes = append(element.Attributes, attr)
		}
	}

	return element
}

// decodeChild decodes a nested node value; nil and non-object values map to
// nil so optional fields stay optional.
func decodeChild(value any) Node {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	return decodeNode(obj)
}

func decodeList(value any) []Node {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	nodes := make([]Node, 0, len(items))

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		nodes = append(nodes, decodeNode(obj))
	}

	return nodes
}

// nestedName extracts a name from an identifier-like record, resolving
// JSXMemberExpression chains (Foo.Bar) to their dotted spelling.
func nestedName(value any) string {
	obj, ok := value.(map[string]any)
	if !ok {
		return ""
	}

	if nodeType, _ := obj["type"].(string); nodeType == "JSXMemberExpression" {
		object := nestedName(obj["object"])
		property := nestedName(obj["property"])

		if object != "" && property != "" {
			return object + "." + property
		}
	}

	name, _ := obj["name"].(string)

	return name
}
