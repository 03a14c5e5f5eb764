package generate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/angularize/pkg/generate"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

func TestTemplate_Counter(t *testing.T) {
	t.Parallel()

	doc := counterDoc()

	paragraph := doc.NewElement("p")
	paragraph.Children = []ir.Child{ir.Interpolation("count")}

	root := doc.Template.Elements[0]
	root.Children = append(root.Children, paragraph)

	got := generate.Template(doc, "Counter")

	want := strings.Join([]string{
		`<div>`,
		`  <button (click)="count = count + 1">`,
		`    Increment`,
		`  </button>`,
		`  <p>`,
		`    {{ count }}`,
		`  </p>`,
		`</div>`,
	}, "\n")

	assert.Equal(t, want, got)
}

func TestTemplate_EventBindingScopedToTarget(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()

	first := doc.NewElement("button")
	second := doc.NewElement("button")

	root := doc.NewElement("div")
	root.Children = []ir.Child{first, second}

	doc.Template.Elements = []*ir.Element{root}
	doc.Template.Bindings = []ir.Binding{
		{Kind: ir.BindingEvent, Name: "click", Handler: "save()", Target: second.ID},
	}

	got := generate.Template(doc, "Form")

	assert.Equal(t, 1, strings.Count(got, `(click)="save()"`),
		"binding must render on its target element only")
	assert.Contains(t, got, "<button></button>")
}

func TestTemplate_UntargetedBindingAppliesToIDLessElement(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()
	doc.Template.Elements = []*ir.Element{{Tag: "button"}}
	doc.Template.Bindings = []ir.Binding{
		{Kind: ir.BindingEvent, Name: "click", Handler: "save()"},
	}

	got := generate.Template(doc, "Form")

	assert.Contains(t, got, `(click)="save()"`)
}

func TestTemplate_VoidTagSelfCloses(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()

	input := doc.NewElement("input")
	input.TwoWayProperty = "name"
	input.Attributes = []ir.Attribute{{Name: "type", Value: "text"}, {Name: "required"}}

	doc.Template.Elements = []*ir.Element{input}

	got := generate.Template(doc, "Form")

	assert.Equal(t, `<input [(ngModel)]="name" type="text" required />`, got)
}

func TestTemplate_StructuralDirectivesComeFirst(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()

	item := doc.NewElement("li")
	item.Repeat = &ir.Repeat{Array: "todos", Item: "todo", Index: "i"}
	item.Children = []ir.Child{ir.Interpolation("todo")}

	list := doc.NewElement("ul")
	list.Children = []ir.Child{item}

	doc.Template.Elements = []*ir.Element{list}

	got := generate.Template(doc, "TodoList")

	want := strings.Join([]string{
		`<ul>`,
		`  <li *ngFor="let todo of todos; let i = index">`,
		`    {{ todo }}`,
		`  </li>`,
		`</ul>`,
	}, "\n")

	assert.Equal(t, want, got)
}

func TestTemplate_Conditional(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()

	span := doc.NewElement("span")
	span.Condition = "visible"
	span.Children = []ir.Child{ir.Text("shown")}

	doc.Template.Elements = []*ir.Element{span}

	got := generate.Template(doc, "Banner")

	assert.Contains(t, got, `<span *ngIf="visible">`)
}

func TestTemplate_PropertyBinding(t *testing.T) {
	t.Parallel()

	doc := ir.NewDocument()

	img := doc.NewElement("img")
	img.PropertyBindings = map[string]string{"src": "imageUrl"}

	doc.Template.Elements = []*ir.Element{img}
	doc.Template.Bindings = []ir.Binding{
		{Kind: ir.BindingProperty, Name: "src", Handler: "imageUrl", Target: img.ID},
	}

	got := generate.Template(doc, "Avatar")

	assert.Equal(t, `<img [src]="imageUrl" />`, got)
}

func TestTemplate_Idempotent(t *testing.T) {
	t.Parallel()

	doc := counterDoc()

	first := generate.Template(doc, "Counter")
	second := generate.Template(doc, "Counter")

	assert.Equal(t, first, second)
}

func TestTemplate_EmptyDocument(t *testing.T) {
	t.Parallel()

	assert.Empty(t, generate.Template(ir.NewDocument(), "Empty"))
}
