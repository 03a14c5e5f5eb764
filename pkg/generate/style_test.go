package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/angularize/pkg/generate"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

func TestStyles_EmptyListYieldsPlaceholder(t *testing.T) {
	t.Parallel()

	got := generate.Styles(ir.NewDocument(), "Counter")

	assert.Equal(t, "/* Styles for Counter component */\n", got)
}

func TestStyles_RendersSelectorBlocks(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()
	doc.Styles = []ir.Style{
		{
			Selector: ".card",
			Declarations: []ir.Declaration{
				{Property: "padding", Value: "1rem"},
				{Property: "border", Value: "1px solid #ccc"},
			},
		},
		{
			Selector: ".card h2",
			Declarations: []ir.Declaration{
				{Property: "margin", Value: "0"},
			},
		},
	}

	got := generate.Styles(doc, "Card")

	want := ".card {\n  padding: 1rem;\n  border: 1px solid #ccc;\n}\n.card h2 {\n  margin: 0;\n}"

	assert.Equal(t, want, got)
}

func TestStyles_SkipsEmptyRuleSets(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()
	doc.Styles = []ir.Style{
		{Selector: ".empty"},
		{Selector: ".kept", Declarations: []ir.Declaration{{Property: "color", Value: "red"}}},
	}

	got := generate.Styles(doc, "Card")

	assert.NotContains(t, got, ".empty")
	assert.Contains(t, got, ".kept {")
}
