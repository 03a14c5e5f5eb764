// Package estree provides the generic JavaScript/JSX syntax tree consumed by
// the transformation pipeline. The node set is a closed tagged union covering
// the shapes the pipeline pattern-matches on; any parser producing these
// shapes is an acceptable front end. Node kinds outside the union decode to
// Unknown and are skipped silently downstream, never rejected.
package estree

// Node kind discriminators. The strings follow the ESTree vocabulary so that
// JSON trees produced by esprima- or babel-style parsers map one to one.
const (
	KindProgram                = "Program"
	KindFunctionDecl           = "FunctionDeclaration"
	KindFunctionExpr           = "FunctionExpression"
	KindArrowFunction          = "ArrowFunctionExpression"
	KindVariableDecl           = "VariableDeclaration"
	KindVariableDeclarator     = "VariableDeclarator"
	KindArrayPattern           = "ArrayPattern"
	KindCallExpr               = "CallExpression"
	KindMemberExpr             = "MemberExpression"
	KindIdentifier             = "Identifier"
	KindLiteral                = "Literal"
	KindJSXElement             = "JSXElement"
	KindJSXAttribute           = "JSXAttribute"
	KindJSXExpressionContainer = "JSXExpressionContainer"
	KindJSXText                = "JSXText"
	KindReturnStmt             = "ReturnStatement"
	KindIfStmt                 = "IfStatement"
	KindExpressionStmt         = "ExpressionStatement"
	KindBlockStmt              = "BlockStatement"
	KindBinaryExpr             = "BinaryExpression"
	KindArrayExpr              = "ArrayExpression"
	KindSpreadElement          = "SpreadElement"
	KindUnknown                = "Unknown"
)

// Node is implemented by every syntax tree node in the union.
type Node interface {
	Kind() string
}

// Program is the root of a parsed module.
type Program struct {
	Body []Node
}

// Kind returns the node kind discriminator.
func (*Program) Kind() string { return KindProgram }

// FunctionDecl is a named function declaration.
type FunctionDecl struct {
	Name   string
	Params []Node
	Body   *BlockStmt
}

// Kind returns the node kind discriminator.
func (*FunctionDecl) Kind() string { return KindFunctionDecl }

// FunctionExpr is a (possibly named) function expression.
type FunctionExpr struct {
	Name   string
	Params []Node
	Body   Node
}

// Kind returns the node kind discriminator.
func (*FunctionExpr) Kind() string { return KindFunctionExpr }

// ArrowFunction is an arrow function expression. Body is either a BlockStmt
// or a bare expression.
type ArrowFunction struct {
	Params []Node
	Body   Node
}

// Kind returns the node kind discriminator.
func (*ArrowFunction) Kind() string { return KindArrowFunction }

// VariableDecl is a const/let/var declaration statement.
type VariableDecl struct {
	DeclKind     string
	Declarations []*VariableDeclarator
}

// Kind returns the node kind discriminator.
func (*VariableDecl) Kind() string { return KindVariableDecl }

// VariableDeclarator is a single binding inside a VariableDecl. ID is an
// Identifier or a destructuring pattern; Init may be nil.
type VariableDeclarator struct {
	ID   Node
	Init Node
}

// Kind returns the node kind discriminator.
func (*VariableDeclarator) Kind() string { return KindVariableDeclarator }

// ArrayPattern is an array destructuring target, e.g. [count, setCount].
type ArrayPattern struct {
	Elements []Node
}

// Kind returns the node kind discriminator.
func (*ArrayPattern) Kind() string { return KindArrayPattern }

// CallExpr is a function or method call.
type CallExpr struct {
	Callee    Node
	Arguments []Node
}

// Kind returns the node kind discriminator.
func (*CallExpr) Kind() string { return KindCallExpr }

// MemberExpr is a property access such as event.target.value.
type MemberExpr struct {
	Object   Node
	Property Node
	Computed bool
}

// Kind returns the node kind discriminator.
func (*MemberExpr) Kind() string { return KindMemberExpr }

// Identifier is a bare name reference.
type Identifier struct {
	Name string
}

// Kind returns the node kind discriminator.
func (*Identifier) Kind() string { return KindIdentifier }

// Literal is a string, numeric, boolean, or null literal. Raw preserves the
// source spelling when the parser provides it.
type Literal struct {
	Value any
	Raw   string
}

// Kind returns the node kind discriminator.
func (*Literal) Kind() string { return KindLiteral }

// JSXElement is a markup element. The opening element is flattened: Name is
// the tag, Attributes the ordered attribute list.
type JSXElement struct {
	Name        string
	Attributes  []*JSXAttribute
	Children    []Node
	SelfClosing bool
}

// Kind returns the node kind discriminator.
func (*JSXElement) Kind() string { return KindJSXElement }

// JSXAttribute is a single attribute on a JSX opening element. Value is a
// Literal, a JSXExpressionContainer, or nil for bare attributes.
type JSXAttribute struct {
	Name  string
	Value Node
}

// Kind returns the node kind discriminator.
func (*JSXAttribute) Kind() string { return KindJSXAttribute }

// JSXExpressionContainer is a {expr} hole inside markup.
type JSXExpressionContainer struct {
	Expression Node
}

// Kind returns the node kind discriminator.
func (*JSXExpressionContainer) Kind() string { return KindJSXExpressionContainer }

// JSXText is literal text between markup tags.
type JSXText struct {
	Value string
}

// Kind returns the node kind discriminator.
func (*JSXText) Kind() string { return KindJSXText }

// ReturnStmt is a return statement; Argument may be nil.
type ReturnStmt struct {
	Argument Node
}

// Kind returns the node kind discriminator.
func (*ReturnStmt) Kind() string { return KindReturnStmt }

// IfStmt is a conditional statement; Alternate may be nil.
type IfStmt struct {
	Test       Node
	Consequent Node
	Alternate  Node
}

// Kind returns the node kind discriminator.
func (*IfStmt) Kind() string { return KindIfStmt }

// ExpressionStmt wraps an expression used in statement position.
type ExpressionStmt struct {
	Expression Node
}

// Kind returns the node kind discriminator.
func (*ExpressionStmt) Kind() string { return KindExpressionStmt }

// BlockStmt is a braced statement list.
type BlockStmt struct {
	Body []Node
}

// Kind returns the node kind discriminator.
func (*BlockStmt) Kind() string { return KindBlockStmt }

// BinaryExpr is a binary operation such as count + 1.
type BinaryExpr struct {
	Operator string
	Left     Node
	Right    Node
}

// Kind returns the node kind discriminator.
func (*BinaryExpr) Kind() string { return KindBinaryExpr }

// ArrayExpr is an array literal.
type ArrayExpr struct {
	Elements []Node
}

// Kind returns the node kind discriminator.
func (*ArrayExpr) Kind() string { return KindArrayExpr }

// SpreadElement is a ...expr spread inside an array or argument list.
type SpreadElement struct {
	Argument Node
}

// Kind returns the node kind discriminator.
func (*SpreadElement) Kind() string { return KindSpreadElement }

// Unknown stands in for any node kind outside the union. Type records the
// original discriminator for diagnostics. Rules treat Unknown as an
// unsupported sentinel and skip it.
type Unknown struct {
	Type string
}

// Kind returns the node kind discriminator.
func (*Unknown) Kind() string { return KindUnknown }
