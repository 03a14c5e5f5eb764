package estree

// Children returns the direct child nodes of n in source order. Nil children
// are omitted. Unknown and leaf nodes have no children.
func Children(n Node) []Node {
	switch node := n.(type) {
	case *Program:
		return node.Body
	case *FunctionDecl:
		children := append([]Node{}, node.Params...)
		if node.Body != nil {
			children = append(children, node.Body)
		}

		return children
	case *FunctionExpr:
		return appendNonNil(append([]Node{}, node.Params...), node.Body)
	case *ArrowFunction:
		return appendNonNil(append([]Node{}, node.Params...), node.Body)
	case *VariableDecl:
		children := make([]Node, 0, len(node.Declarations))
		for _, decl := range node.Declarations {
			children = append(children, decl)
		}

		return children
	case *VariableDeclarator:
		return appendNonNil(appendNonNil(nil, node.ID), node.Init)
	case *ArrayPattern:
		return nonNil(node.Elements)
	case *CallExpr:
		return appendNonNil(nil, node.Callee, node.Arguments...)
	case *MemberExpr:
		return appendNonNil(appendNonNil(nil, node.Object), node.Property)
	case *JSXElement:
		children := make([]Node, 0, len(node.Attributes)+len(node.Children))
		for _, attr := range node.Attributes {
			children = append(children, attr)
		}

		return append(children, nonNil(node.Children)...)
	case *JSXAttribute:
		return appendNonNil(nil, node.Value)
	case *JSXExpressionContainer:
		return appendNonNil(nil, node.Expression)
	case *ReturnStmt:
		return appendNonNil(nil, node.Argument)
	case *IfStmt:
		return appendNonNil(appendNonNil(appendNonNil(nil, node.Test), node.Consequent), node.Alternate)
	case *ExpressionStmt:
		return appendNonNil(nil, node.Expression)
	case *BlockStmt:
		return node.Body
	case *BinaryExpr:
		return appendNonNil(appendNonNil(nil, node.Left), node.Right)
	case *ArrayExpr:
		return nonNil(node.Elements)
	case *SpreadElement:
		return appendNonNil(nil, node.Argument)
	default:
		return nil
	}
}

// Walk traverses the tree rooted at n depth-first in source order, calling
// visit for every non-nil node. Returning false from visit prunes the
// subtree below that node.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}

	if !visit(n) {
		return
	}

	for _, child := range Children(n) {
		Walk(child, visit)
	}
}

// Find returns the first node (depth-first, source order) for which match
// returns true, or nil.
func Find(n Node, match func(Node) bool) Node {
	var found Node

	Walk(n, func(node Node) bool {
		if found != nil {
			return false
		}

		if match(node) {
			found = node

			return false
		}

		return true
	})

	return found
}

func appendNonNil(nodes []Node, first Node, rest ...Node) []Node {
	if first != nil {
		nodes = append(nodes, first)
	}

	for _, n := range rest {
		if n != nil {
			nodes = append(nodes, n)
		}
	}

	return nodes
}

func nonNil(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))

	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}
