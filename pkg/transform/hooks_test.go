package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/transform"
)

func TestStateHook_RoundTrip(t *testing.T) {
	t.Parallel()

	tree := component("Widget", useStateDecl("label", "setLabel", str("hello")))

	doc := transform.New(nil).Transform(tree)

	require.Len(t, doc.Class.Properties, 1)
	prop := doc.Class.Properties[0]
	assert.Equal(t, "label", prop.Name)
	assert.Equal(t, "string", prop.Type)
	assert.Equal(t, "'hello'", prop.InitialValue)

	assert.Equal(t, map[string]string{"setLabel": "label"}, doc.SetterMap)
}

func TestStateHook_TypeInference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		init estree.Node
		want string
	}{
		{"number", num("42"), "number"},
		{"string", str("x"), "string"},
		{"boolean", &estree.Literal{Value: true, Raw: "true"}, "boolean"},
		{"empty array", &estree.ArrayExpr{}, "any[]"},
		{"string array", &estree.ArrayExpr{Elements: []estree.Node{str("a")}}, "string[]"},
		{"number array", &estree.ArrayExpr{Elements: []estree.Node{num("1")}}, "number[]"},
		{"identifier", ident("seed"), "any"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := transform.New(nil).Transform(component("C", useStateDecl("v", "setV", tc.init)))

			require.Len(t, doc.Class.Properties, 1)
			assert.Equal(t, tc.want, doc.Class.Properties[0].Type)
		})
	}
}

func TestStateHook_IgnoresIrregularDestructuring(t *testing.T) {
	t.Parallel()

	// A single-element pattern is not the [state, setter] shape.
	decl := &estree.VariableDecl{
		DeclKind: "const",
		Declarations: []*estree.VariableDeclarator{
			{
				ID:   &estree.ArrayPattern{Elements: []estree.Node{ident("only")}},
				Init: &estree.CallExpr{Callee: ident("useState"), Arguments: []estree.Node{num("0")}},
			},
		},
	}

	doc := transform.New(nil).Transform(component("C", decl))

	assert.Empty(t, doc.Class.Properties)
	assert.Empty(t, doc.SetterMap)
}

func TestStateHook_DuplicateStateKeepsFirst(t *testing.T) {
	t.Parallel()

	tree := component("C",
		useStateDecl("count", "setCount", num("1")),
		useStateDecl("count", "setCountAgain", num("2")),
	)

	doc := transform.New(nil).Transform(tree)

	require.Len(t, doc.Class.Properties, 1)
	assert.Equal(t, "1", doc.Class.Properties[0].InitialValue)
}

func TestEffect_LowersToLifecycleHooks(t *testing.T) {
	t.Parallel()

	// useEffect(() => { setReady(true); return () => { stop() } }, [])
	effect := &estree.ExpressionStmt{
		Expression: &estree.CallExpr{
			Callee: ident("useEffect"),
			Arguments: []estree.Node{
				&estree.ArrowFunction{
					Body: &estree.BlockStmt{Body: []estree.Node{
						&estree.ExpressionStmt{Expression: &estree.CallExpr{
							Callee:    ident("setReady"),
							Arguments: []estree.Node{&estree.Literal{Value: true, Raw: "true"}},
						}},
						&estree.ReturnStmt{Argument: &estree.ArrowFunction{
							Body: &estree.BlockStmt{Body: []estree.Node{
								&estree.ExpressionStmt{Expression: &estree.CallExpr{Callee: ident("stop")}},
							}},
						}},
					}},
				},
				&estree.ArrayExpr{},
			},
		},
	}

	doc := transform.New(nil).Transform(component("C", effect))

	require.Len(t, doc.Class.LifecycleHooks, 2)

	names := []string{doc.Class.LifecycleHooks[0].Name, doc.Class.LifecycleHooks[1].Name}
	assert.Contains(t, names, "ngOnInit")
	assert.Contains(t, names, "ngOnDestroy")

	for _, hook := range doc.Class.LifecycleHooks {
		switch hook.Name {
		case "ngOnInit":
			assert.Contains(t, hook.Body, "setReady(true)")
			assert.NotContains(t, hook.Body, "stop()")
		case "ngOnDestroy":
			assert.Contains(t, hook.Body, "stop()")
		}
	}
}
