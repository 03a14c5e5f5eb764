package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/angularize/pkg/ir"
	"github.com/Sumatoshi-tech/angularize/pkg/strutil"
)

const (
	classSuffix = "Component"

	hookInit    = "ngOnInit"
	hookDestroy = "ngOnDestroy"

	todoHandlerBody = "// TODO: implement handler"
)

// Class renders the component class artifact. It merges explicitly lowered
// properties and methods with ones implied by the template (two-way models,
// repeated collections, handler references), normalizes every method body,
// and assembles imports, decorator, and class declaration. Pure: the document
// is never mutated.
func Class(doc *ir.Document, componentName string) string {
	className := strutil.ToPascalCase(componentName) + classSuffix

	properties := mergeProperties(doc.Class.Properties, autoProperties(doc))
	methods := mergeMethods(doc.Class.Methods, autoMethods(doc))

	propNames := make([]string, len(properties))
	for i, p := range properties {
		propNames[i] = p.Name
	}

	for i := range methods {
		methods[i].Body = Normalize(methods[i].Body, propNames, doc.SetterMap)
	}

	var b strings.Builder

	b.WriteString(renderImports(doc, properties))
	b.WriteString("\n\n")
	b.WriteString(renderDecorator(componentName))
	b.WriteString("\n")
	b.WriteString("export class " + className + implementsClause(doc.Class.LifecycleHooks) + " {\n")
	b.WriteString(renderProperties(properties))

	if hooks := renderHooks(doc.Class.LifecycleHooks); hooks != "" {
		b.WriteString("\n")
		b.WriteString(hooks)
	}

	if rendered := renderMethods(methods); rendered != "" {
		b.WriteString("\n")
		b.WriteString(rendered)
		b.WriteString("\n")
	}

	b.WriteString("}\n")

	return b.String()
}

// autoProperties derives properties the class rule never saw: two-way bound
// models and repeated collections referenced only from the template.
func autoProperties(doc *ir.Document) []ir.Property {
	var auto []ir.Property

	seen := make(map[string]bool)

	add := func(p ir.Property) {
		if p.Name == "" || seen[p.Name] {
			return
		}

		seen[p.Name] = true
		auto = append(auto, p)
	}

	for _, binding := range doc.Template.Bindings {
		if binding.Kind == ir.BindingTwoWay {
			add(ir.Property{Name: binding.Name, Type: "string", InitialValue: "''"})
		}
	}

	for _, el := range ir.Flatten(doc.Template.Elements) {
		if el.TwoWayProperty != "" {
			add(ir.Property{Name: el.TwoWayProperty, Type: "string", InitialValue: "''"})
		}

		if el.Repeat != nil && el.Repeat.Array != "" {
			add(ir.Property{Name: el.Repeat.Array, Type: "any[]", InitialValue: "[]"})
		}
	}

	return auto
}

// autoMethods derives stub methods for event handlers that reference a method
// by name without the class rule having lowered a body for it. Inline
// assignment handlers produce no method.
func autoMethods(doc *ir.Document) []ir.Method {
	var auto []ir.Method

	seen := make(map[string]bool)

	for _, binding := range doc.Template.Bindings {
		if binding.Kind != ir.BindingEvent || binding.Handler == "" {
			continue
		}

		if strings.Contains(binding.Handler, "=") && !strings.Contains(binding.Handler, "(") {
			continue
		}

		name, _, _ := strings.Cut(binding.Handler, "(")

		name = strings.TrimSpace(name)
		if name == "" || strings.Contains(name, "=") || seen[name] {
			continue
		}

		seen[name] = true
		auto = append(auto, ir.Method{Name: name, Body: todoHandlerBody})
	}

	return auto
}

func mergeProperties(explicit, auto []ir.Property) []ir.Property {
	names := make(map[string]bool, len(explicit))
	for _, p := range explicit {
		names[p.Name] = true
	}

	merged := append([]ir.Property(nil), explicit...)

	for _, p := range auto {
		if !names[p.Name] {
			merged = append(merged, p)
		}
	}

	return merged
}

func mergeMethods(explicit, auto []ir.Method) []ir.Method {
	names := make(map[string]bool, len(explicit))
	for _, m := range explicit {
		names[m.Name] = true
	}

	merged := append([]ir.Method(nil), explicit...)

	for _, m := range auto {
		if !names[m.Name] {
			merged = append(merged, m)
		}
	}

	return merged
}

func renderImports(doc *ir.Document, properties []ir.Property) string {
	core := map[string]bool{"Component": true}

	for _, p := range properties {
		if strings.HasPrefix(p.Decorator, "@Input") {
			core["Input"] = true
		}

		if strings.HasPrefix(p.Decorator, "@Output") {
			core["Output"] = true
			core["EventEmitter"] = true
		}
	}

	for _, hook := range doc.Class.LifecycleHooks {
		switch hook.Name {
		case hookInit:
			core["OnInit"] = true
		case hookDestroy:
			core["OnDestroy"] = true
		}
	}

	names := make([]string, 0, len(core))
	for name := range core {
		names = append(names, name)
	}

	sort.Strings(names)

	lines := []string{fmt.Sprintf("import { %s } from '@angular/core';", strings.Join(names, ", "))}

	if hasTwoWay(doc) {
		lines = append(lines, "", "// NOTE: Add FormsModule to your module imports for [(ngModel)]")
	}

	return strings.Join(lines, "\n")
}

func hasTwoWay(doc *ir.Document) bool {
	for _, b := range doc.Template.Bindings {
		if b.Kind == ir.BindingTwoWay {
			return true
		}
	}

	for _, el := range ir.Flatten(doc.Template.Elements) {
		if el.TwoWayProperty != "" {
			return true
		}
	}

	return false
}

func renderDecorator(componentName string) string {
	return fmt.Sprintf(`@Component({
  selector: 'app-%s',
  templateUrl: './%s.component.html',
  styleUrls: ['./%s.component.css']
})`, strutil.ToCamelCase(componentName), componentName, componentName)
}

func implementsClause(hooks []ir.Method) string {
	var impls []string

	for _, name := range []string{hookInit, hookDestroy} {
		for _, hook := range hooks {
			if hook.Name == name {
				impls = append(impls, strings.TrimPrefix(name, "ng"))

				break
			}
		}
	}

	if len(impls) == 0 {
		return ""
	}

	return " implements " + strings.Join(impls, ", ")
}

func renderProperties(properties []ir.Property) string {
	var b strings.Builder

	for _, p := range properties {
		if p.Decorator != "" {
			b.WriteString("  " + p.Decorator + "\n")
		}

		typ := p.Type
		if typ == "" {
			typ = "any"
		}

		b.WriteString("  " + p.Name + ": " + typ)

		if p.InitialValue != "" {
			b.WriteString(" = " + p.InitialValue)
		}

		b.WriteString(";\n")
	}

	return b.String()
}

func renderHooks(hooks []ir.Method) string {
	if len(hooks) == 0 {
		return ""
	}

	parts := make([]string, len(hooks))
	for i, hook := range hooks {
		parts[i] = fmt.Sprintf("  %s(): void {\n    %s\n  }\n", hook.Name, indentBody(hook.Body))
	}

	return strings.Join(parts, "\n")
}

func renderMethods(methods []ir.Method) string {
	if len(methods) == 0 {
		return ""
	}

	parts := make([]string, len(methods))
	for i, m := range methods {
		params := strings.Join(m.Parameters, ", ")
		parts[i] = fmt.Sprintf("  %s(%s) {\n    %s\n  }", m.Name, params, indentBody(m.Body))
	}

	return strings.Join(parts, "\n\n")
}

// indentBody aligns continuation lines of a multi-line body with the opening
// statement at method indent depth.
func indentBody(body string) string {
	return strings.ReplaceAll(body, "\n", "\n    ")
}
