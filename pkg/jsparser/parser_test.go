package jsparser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/jsparser"
)

const counterSource = `function Counter() {
  const [count, setCount] = useState(0);

  return (
    <div className="counter">
      <button onClick={() => setCount(count + 1)}>Increment</button>
      <p>{count}</p>
    </div>
  );
}
`

func TestParse_CounterComponent(t *testing.T) {
	t.Parallel()

	root, err := jsparser.New().Parse(context.Background(), "Counter.jsx", []byte(counterSource))
	require.NoError(t, err)

	program, ok := root.(*estree.Program)
	require.True(t, ok, "root must be a Program, got %T", root)
	require.NotEmpty(t, program.Body)

	fn, ok := program.Body[0].(*estree.FunctionDecl)
	require.True(t, ok, "first statement must be the component function, got %T", program.Body[0])
	assert.Equal(t, "Counter", fn.Name)
	require.NotNil(t, fn.Body)

	decl, ok := fn.Body.Body[0].(*estree.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "const", decl.DeclKind)
	require.Len(t, decl.Declarations, 1)

	pattern, ok := decl.Declarations[0].ID.(*estree.ArrayPattern)
	require.True(t, ok)
	require.Len(t, pattern.Elements, 2)

	call, ok := decl.Declarations[0].Init.(*estree.CallExpr)
	require.True(t, ok)

	callee, ok := call.Callee.(*estree.Identifier)
	require.True(t, ok)
	assert.Equal(t, "useState", callee.Name)

	markup := estree.Find(fn, func(n estree.Node) bool {
		el, isJSX := n.(*estree.JSXElement)

		return isJSX && el.Name == "div"
	})
	require.NotNil(t, markup)

	div, ok := markup.(*estree.JSXElement)
	require.True(t, ok)
	require.Len(t, div.Attributes, 1)
	assert.Equal(t, "className", div.Attributes[0].Name)
}

func TestParse_TSXInput(t *testing.T) {
	t.Parallel()

	source := `function Badge() {
  return <span>ok</span>;
}
`

	root, err := jsparser.New().Parse(context.Background(), "Badge.tsx", []byte(source))
	require.NoError(t, err)

	fn := estree.Find(root, func(n estree.Node) bool {
		decl, isFn := n.(*estree.FunctionDecl)

		return isFn && decl.Name == "Badge"
	})
	assert.NotNil(t, fn)
}

func TestParse_UnsupportedSyntaxDegradesToUnknown(t *testing.T) {
	t.Parallel()

	source := `class Legacy extends Component {}
`

	root, err := jsparser.New().Parse(context.Background(), "Legacy.jsx", []byte(source))
	require.NoError(t, err)

	unknown := estree.Find(root, func(n estree.Node) bool {
		_, isUnknown := n.(*estree.Unknown)

		return isUnknown
	})
	assert.NotNil(t, unknown, "class declarations fall outside the union")
}
