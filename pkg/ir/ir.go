// Package ir defines the canonical intermediate representation produced by
// the transformation pipeline and consumed by the generators. One Document
// is created per transform call, mutated additively by the rules, read-only
// for the generators, and discarded after artifact emission.
package ir

import (
	"fmt"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
)

// Binding kinds.
const (
	BindingEvent    = "event"
	BindingProperty = "property"
	BindingTwoWay   = "twoWay"
)

// Document is the transformation result for one component.
type Document struct {
	Class     Class
	Template  Template
	Styles    []Style
	SetterMap map[string]string

	nextElementID int
}

// NewDocument returns an empty document ready for rule application.
func NewDocument() *Document {
	return &Document{
		SetterMap: make(map[string]string),
	}
}

// NewElement creates an element with a fresh id, unique within this
// document. Ids are assigned at creation time so that later rules attach
// bindings by identity, not position.
func (d *Document) NewElement(tag string) *Element {
	d.nextElementID++

	return &Element{
		ID:  fmt.Sprintf("el%d", d.nextElementID),
		Tag: tag,
	}
}

// HasProperty reports whether a class property with the given name exists.
// First writer wins; later rules must not overwrite an existing property.
func (d *Document) HasProperty(name string) bool {
	for _, p := range d.Class.Properties {
		if p.Name == name {
			return true
		}
	}

	return false
}

// HasMethod reports whether a class method with the given name exists.
func (d *Document) HasMethod(name string) bool {
	for _, m := range d.Class.Methods {
		if m.Name == name {
			return true
		}
	}

	return false
}

// HasLifecycleHook reports whether a lifecycle hook with the given name exists.
func (d *Document) HasLifecycleHook(name string) bool {
	for _, h := range d.Class.LifecycleHooks {
		if h.Name == name {
			return true
		}
	}

	return false
}

// Class is the component class section of the document.
type Class struct {
	Name           string
	Properties     []Property
	Methods        []Method
	LifecycleHooks []Method
}

// Property is one class field.
type Property struct {
	Name         string
	Type         string
	InitialValue string
	Decorator    string
}

// Method is one class method or lifecycle hook.
type Method struct {
	Name       string
	Parameters []string
	Body       string
	ReturnType string
}

// Template is the markup section of the document.
type Template struct {
	Elements []*Element
	Bindings []Binding
}

// Element is one lowered markup element. Raw retains the pre-filter
// attribute list for the event rule; generators never read it.
type Element struct {
	ID               string
	Tag              string
	Attributes       []Attribute
	Children         []Child
	Repeat           *Repeat
	Condition        string
	TwoWayProperty   string
	PropertyBindings map[string]string
	Raw              []*estree.JSXAttribute
}

// Attribute is a plain (already filtered) template attribute.
type Attribute struct {
	Name  string
	Value string
}

// Repeat is the repetition directive attached to a list-rendered element.
type Repeat struct {
	Array string
	Item  string
	Index string
}

// Child is one ordered element child: literal text, an interpolation token,
// or a nested element. Order is render order and is significant.
type Child interface {
	childNode()
}

// Text is a literal text child.
type Text string

func (Text) childNode() {}

// Interpolation is an expression rendered inside interpolation delimiters.
type Interpolation string

func (Interpolation) childNode() {}

func (*Element) childNode() {}

// Binding attaches behavior to an element. Target is the element id; a
// binding without a target is a legacy fallback applied unscoped.
type Binding struct {
	Kind    string
	Name    string
	Handler string
	Target  string
}

// Style is one stylesheet rule block. Declarations keep source order.
type Style struct {
	Selector     string
	Declarations []Declaration
}

// Declaration is one property/value pair inside a style block.
type Declaration struct {
	Property string
	Value    string
}
