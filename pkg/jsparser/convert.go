package jsparser

import (
	"encoding/json"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
)

// convert lowers a tree-sitter CST node into the estree union. Grammar kinds
// outside the union become Unknown so downstream rules skip them instead of
// failing.
func convert(n sitter.Node, src []byte) estree.Node {
	if n.IsNull() {
		return nil
	}

	switch n.Type() {
	case "program":
		return &estree.Program{Body: convertNamedChildren(n, src)}

	case "function_declaration", "generator_function_declaration":
		return convertFunctionDecl(n, src)

	case "function_expression", "function", "generator_function":
		return &estree.FunctionExpr{
			Name:   fieldText(n, "name", src),
			Params: convertParams(n, src),
			Body:   convertField(n, "body", src),
		}

	case "arrow_function":
		return &estree.ArrowFunction{
			Params: convertParams(n, src),
			Body:   convertField(n, "body", src),
		}

	case "lexical_declaration", "variable_declaration":
		return convertVariableDecl(n, src)

	case "variable_declarator":
		return &estree.VariableDeclarator{
			ID:   convertField(n, "name", src),
			Init: convertField(n, "value", src),
		}

	case "array_pattern":
		return &estree.ArrayPattern{Elements: convertNamedChildren(n, src)}

	case "call_expression":
		return &estree.CallExpr{
			Callee:    convertField(n, "function", src),
			Arguments: convertArguments(n, src),
		}

	case "member_expression":
		return &estree.MemberExpr{
			Object:   convertField(n, "object", src),
			Property: convertField(n, "property", src),
		}

	case "subscript_expression":
		return &estree.MemberExpr{
			Object:   convertField(n, "object", src),
			Property: convertField(n, "index", src),
			Computed: true,
		}

	case "identifier", "property_identifier", "jsx_identifier",
		"shorthand_property_identifier", "shorthand_property_identifier_pattern":
		return &estree.Identifier{Name: text(n, src)}

	case "number":
		raw := text(n, src)

		return &estree.Literal{Value: json.Number(raw), Raw: raw}

	case "string", "template_string":
		return convertString(n, src)

	case "true":
		return &estree.Literal{Value: true, Raw: "true"}

	case "false":
		return &estree.Literal{Value: false, Raw: "false"}

	case "null":
		return &estree.Literal{Value: nil, Raw: "null"}

	case "jsx_element":
		return convertJSXElement(n, src)

	case "jsx_self_closing_element":
		return &estree.JSXElement{
			Name:        fieldText(n, "name", src),
			Attributes:  convertJSXAttributes(n, src),
			SelfClosing: true,
		}

	case "jsx_expression":
		return &estree.JSXExpressionContainer{Expression: convertFirstNamed(n, src)}

	case "jsx_text":
		return &estree.JSXText{Value: text(n, src)}

	case "return_statement":
		return &estree.ReturnStmt{Argument: convertFirstNamed(n, src)}

	case "parenthesized_expression":
		return convertFirstNamed(n, src)

	case "if_statement":
		return &estree.IfStmt{
			Test:       convertField(n, "condition", src),
			Consequent: convertField(n, "consequence", src),
			Alternate:  convertField(n, "alternative", src),
		}

	case "else_clause":
		return convertFirstNamed(n, src)

	case "expression_statement":
		return &estree.ExpressionStmt{Expression: convertFirstNamed(n, src)}

	case "statement_block":
		return &estree.BlockStmt{Body: convertNamedChildren(n, src)}

	case "binary_expression":
		return &estree.BinaryExpr{
			Operator: fieldText(n, "operator", src),
			Left:     convertField(n, "left", src),
			Right:    convertField(n, "right", src),
		}

	case "array":
		return &estree.ArrayExpr{Elements: convertNamedChildren(n, src)}

	case "spread_element":
		return &estree.SpreadElement{Argument: convertFirstNamed(n, src)}

	default:
		return &estree.Unknown{Type: n.Type()}
	}
}

func convertFunctionDecl(n sitter.Node, src []byte) estree.Node {
	decl := &estree.FunctionDecl{
		Name:   fieldText(n, "name", src),
		Params: convertParams(n, src),
	}

	if body, ok := convertField(n, "body", src).(*estree.BlockStmt); ok {
		decl.Body = body
	}

	return decl
}

func convertVariableDecl(n sitter.Node, src []byte) estree.Node {
	decl := &estree.VariableDecl{DeclKind: declKind(n, src)}

	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)
		if child.Type() != "variable_declarator" {
			continue
		}

		if d, ok := convert(child, src).(*estree.VariableDeclarator); ok {
			decl.Declarations = append(decl.Declarations, d)
		}
	}

	return decl
}

// declKind reads the leading const/let/var keyword token.
func declKind(n sitter.Node, src []byte) string {
	if n.ChildCount() == 0 {
		return ""
	}

	return text(n.Child(0), src)
}

// convertParams handles both the parenthesized parameter list and the bare
// single-identifier arrow form.
func convertParams(n sitter.Node, src []byte) []estree.Node {
	if single := n.ChildByFieldName("parameter"); !single.IsNull() {
		return []estree.Node{convert(single, src)}
	}

	params := n.ChildByFieldName("parameters")
	if params.IsNull() {
		return nil
	}

	return convertNamedChildren(params, src)
}

func convertArguments(n sitter.Node, src []byte) []estree.Node {
	args := n.ChildByFieldName("arguments")
	if args.IsNull() {
		return nil
	}

	return convertNamedChildren(args, src)
}

func convertString(n sitter.Node, src []byte) estree.Node {
	raw := text(n, src)

	value := raw
	if len(value) >= 2 {
		value = value[1 : len(value)-1]
	}

	return &estree.Literal{Value: value, Raw: raw}
}

func convertJSXElement(n sitter.Node, src []byte) estree.Node {
	el := &estree.JSXElement{}

	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)

		switch child.Type() {
		case "jsx_opening_element":
			el.Name = fieldText(child, "name", src)
			el.Attributes = convertJSXAttributes(child, src)
		case "jsx_closing_element":
		default:
			el.Children = append(el.Children, convert(child, src))
		}
	}

	return el
}

// convertJSXAttributes reads jsx_attribute children off an opening or
// self-closing element node.
func convertJSXAttributes(n sitter.Node, src []byte) []*estree.JSXAttribute {
	var attrs []*estree.JSXAttribute

	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)
		if child.Type() != "jsx_attribute" {
			continue
		}

		attr := &estree.JSXAttribute{}

		if child.NamedChildCount() > 0 {
			attr.Name = text(child.NamedChild(0), src)
		}

		if child.NamedChildCount() > 1 {
			attr.Value = convert(child.NamedChild(1), src)
		}

		attrs = append(attrs, attr)
	}

	return attrs
}

func convertNamedChildren(n sitter.Node, src []byte) []estree.Node {
	count := n.NamedChildCount()
	if count == 0 {
		return nil
	}

	out := make([]estree.Node, 0, count)

	for idx := range count {
		if converted := convert(n.NamedChild(idx), src); converted != nil {
			out = append(out, converted)
		}
	}

	return out
}

func convertFirstNamed(n sitter.Node, src []byte) estree.Node {
	if n.NamedChildCount() == 0 {
		return nil
	}

	return convert(n.NamedChild(0), src)
}

func convertField(n sitter.Node, field string, src []byte) estree.Node {
	child := n.ChildByFieldName(field)
	if child.IsNull() {
		return nil
	}

	return convert(child, src)
}

func fieldText(n sitter.Node, field string, src []byte) string {
	child := n.ChildByFieldName(field)
	if child.IsNull() {
		return ""
	}

	return text(child, src)
}

func text(n sitter.Node, src []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start >= end || int(end) > len(src) {
		return ""
	}

	return strings.TrimSpace(string(src[start:end]))
}
