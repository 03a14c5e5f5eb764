package transform

import "strings"

// Source-framework vocabulary the rules pattern-match on.
const (
	hookUseState  = "useState"
	hookUseEffect = "useEffect"

	eventPrefix = "on"

	attrClassAlias = "className"
	attrListKey    = "key"
	attrValue      = "value"
	attrChange     = "onChange"
)

// eventToken is the reserved identifier substituted for handler parameters
// in rewritten event expressions.
const eventToken = "$event"

// Mappings translates source-framework vocabulary into target vocabulary.
// Instances are immutable after construction and safe to share between
// concurrent transform calls.
type Mappings struct {
	lifecycle  map[string]string
	hooks      map[string]string
	events     map[string]string
	attributes map[string]string
}

// DefaultMappings returns the built-in React→Angular vocabulary tables.
func DefaultMappings() *Mappings {
	return &Mappings{
		lifecycle: map[string]string{
			"componentDidMount":    "ngOnInit",
			"componentDidUpdate":   "ngAfterViewChecked",
			"componentWillUnmount": "ngOnDestroy",
			"componentDidCatch":    "ngOnError",
		},
		hooks: map[string]string{
			hookUseState:  "property",
			hookUseEffect: "ngOnInit/ngOnDestroy",
			"useContext":  "inject",
			"useRef":      "ViewChild/ElementRef",
			"useMemo":     "getter",
			"useCallback": "method",
		},
		events: map[string]string{
			"onClick":      "click",
			"onChange":     "change",
			"onSubmit":     "submit",
			"onFocus":      "focus",
			"onBlur":       "blur",
			"onKeyDown":    "keydown",
			"onKeyUp":      "keyup",
			"onMouseEnter": "mouseenter",
			"onMouseLeave": "mouseleave",
		},
		attributes: map[string]string{
			attrClassAlias: "class",
			"htmlFor":      "for",
		},
	}
}

// Lifecycle returns the target lifecycle hook for a source lifecycle name,
// or empty when unmapped (no hook emitted).
func (m *Mappings) Lifecycle(name string) string {
	return m.lifecycle[name]
}

// Hook returns the target concept for a source hook name, or empty.
func (m *Mappings) Hook(name string) string {
	return m.hooks[name]
}

// Event returns the target event name for a source handler attribute.
// Unmapped names default to the prefix-stripped, lower-cased suffix.
func (m *Mappings) Event(name string) string {
	if mapped, ok := m.events[name]; ok {
		return mapped
	}

	if strings.HasPrefix(name, eventPrefix) {
		return strings.ToLower(name[len(eventPrefix):])
	}

	return name
}

// Attribute returns the target attribute name for a source markup attribute.
// Unmapped names pass through unchanged.
func (m *Mappings) Attribute(name string) string {
	if mapped, ok := m.attributes[name]; ok {
		return mapped
	}

	return name
}

// IsEventAttribute reports whether an attribute name follows the synthetic
// event handler convention ("on" plus a capitalized event name).
func IsEventAttribute(name string) bool {
	if len(name) <= len(eventPrefix) || !strings.HasPrefix(name, eventPrefix) {
		return false
	}

	head := name[len(eventPrefix)]

	return head >= 'A' && head <= 'Z'
}
