package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
	"github.com/Sumatoshi-tech/angularize/pkg/transform"
)

func bindingsFor(doc *ir.Document, target string) []ir.Binding {
	var out []ir.Binding

	for _, b := range doc.Template.Bindings {
		if b.Target == target {
			out = append(out, b)
		}
	}

	return out
}

func TestEvents_TwoWayFusion(t *testing.T) {
	t.Parallel()

	// <input value={name} onChange={(e) => setName(e.target.value)} />
	changeHandler := &estree.ArrowFunction{
		Params: []estree.Node{ident("e")},
		Body: &estree.CallExpr{
			Callee: ident("setName"),
			Arguments: []estree.Node{
				&estree.MemberExpr{
					Object:   &estree.MemberExpr{Object: ident("e"), Property: ident("target")},
					Property: ident("value"),
				},
			},
		},
	}

	input := &estree.JSXElement{
		Name: "input",
		Attributes: []*estree.JSXAttribute{
			{Name: "value", Value: &estree.JSXExpressionContainer{Expression: ident("name")}},
			{Name: "onChange", Value: &estree.JSXExpressionContainer{Expression: changeHandler}},
		},
		SelfClosing: true,
	}

	tree := returning(input, useStateDecl("name", "setName", str("")))

	doc := transform.New(nil).Transform(tree)

	el := findElement(doc, "input")
	require.NotNil(t, el)
	assert.Equal(t, "name", el.TwoWayProperty)

	bindings := bindingsFor(doc, el.ID)
	require.Len(t, bindings, 1, "fusion must yield exactly one binding for the element")
	assert.Equal(t, ir.BindingTwoWay, bindings[0].Kind)
	assert.Equal(t, "name", bindings[0].Name)

	// The one-way value binding is gone from both views of the element.
	assert.NotContains(t, el.PropertyBindings, "value")

	for _, attr := range el.Attributes {
		assert.NotEqual(t, "value", attr.Name)
	}
}

func TestEvents_NoFusionWhenSetterUntracked(t *testing.T) {
	t.Parallel()

	// The setter is not registered in SetterMap, so value and change stay separate.
	changeHandler := &estree.ArrowFunction{
		Params: []estree.Node{ident("e")},
		Body: &estree.CallExpr{
			Callee: ident("setName"),
			Arguments: []estree.Node{
				&estree.MemberExpr{
					Object:   &estree.MemberExpr{Object: ident("e"), Property: ident("target")},
					Property: ident("value"),
				},
			},
		},
	}

	input := &estree.JSXElement{
		Name: "input",
		Attributes: []*estree.JSXAttribute{
			{Name: "value", Value: &estree.JSXExpressionContainer{Expression: ident("name")}},
			{Name: "onChange", Value: &estree.JSXExpressionContainer{Expression: changeHandler}},
		},
		SelfClosing: true,
	}

	doc := transform.New(nil).Transform(returning(input))

	el := findElement(doc, "input")
	require.NotNil(t, el)
	assert.Empty(t, el.TwoWayProperty)
	assert.Equal(t, "name", el.PropertyBindings["value"])

	bindings := bindingsFor(doc, el.ID)
	require.Len(t, bindings, 2)
}

func TestEvents_HandlerShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		value   estree.Node
		handler string
	}{
		{
			"bare identifier gains call parens",
			ident("save"),
			"save()",
		},
		{
			"call expression kept verbatim",
			&estree.CallExpr{Callee: ident("remove"), Arguments: []estree.Node{ident("id")}},
			"remove(id)",
		},
		{
			"arrow over untracked call rewrites the event param",
			&estree.ArrowFunction{
				Params: []estree.Node{ident("e")},
				Body:   &estree.CallExpr{Callee: ident("handle"), Arguments: []estree.Node{ident("e")}},
			},
			"handle($event)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			button := &estree.JSXElement{
				Name: "button",
				Attributes: []*estree.JSXAttribute{
					{Name: "onClick", Value: &estree.JSXExpressionContainer{Expression: tc.value}},
				},
			}

			doc := transform.New(nil).Transform(returning(button))

			el := findElement(doc, "button")
			require.NotNil(t, el)

			bindings := bindingsFor(doc, el.ID)
			require.Len(t, bindings, 1)
			assert.Equal(t, ir.BindingEvent, bindings[0].Kind)
			assert.Equal(t, "click", bindings[0].Name)
			assert.Equal(t, tc.handler, bindings[0].Handler)
		})
	}
}

func TestEvents_TrackedSetterBecomesAssignment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []estree.Node
		handler string
	}{
		{"no argument clears", nil, "name = ''"},
		{"event member reads the input", []estree.Node{
			&estree.MemberExpr{
				Object:   &estree.MemberExpr{Object: ident("e"), Property: ident("target")},
				Property: ident("value"),
			},
		}, "name = $event.target.value"},
		{"plain expression assigns", []estree.Node{str("reset")}, "name = 'reset'"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := &estree.ArrowFunction{
				Params: []estree.Node{ident("e")},
				Body:   &estree.CallExpr{Callee: ident("setName"), Arguments: tc.args},
			}

			button := &estree.JSXElement{
				Name: "button",
				Attributes: []*estree.JSXAttribute{
					{Name: "onClick", Value: &estree.JSXExpressionContainer{Expression: handler}},
				},
			}

			tree := returning(button, useStateDecl("name", "setName", str("")))

			doc := transform.New(nil).Transform(tree)

			el := findElement(doc, "button")
			require.NotNil(t, el)

			bindings := bindingsFor(doc, el.ID)
			require.Len(t, bindings, 1)
			assert.Equal(t, tc.handler, bindings[0].Handler)
		})
	}
}

func TestEvents_UnrecognizedShapeStillBinds(t *testing.T) {
	t.Parallel()

	button := &estree.JSXElement{
		Name: "button",
		Attributes: []*estree.JSXAttribute{
			{Name: "onClick", Value: &estree.JSXExpressionContainer{Expression: &estree.Unknown{Type: "SequenceExpression"}}},
		},
	}

	doc := transform.New(nil).Transform(returning(button))

	el := findElement(doc, "button")
	require.NotNil(t, el)

	bindings := bindingsFor(doc, el.ID)
	require.Len(t, bindings, 1)
	assert.Equal(t, ir.BindingEvent, bindings[0].Kind)
	assert.Equal(t, "click", bindings[0].Name)
}
