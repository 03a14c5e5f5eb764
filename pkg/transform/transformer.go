// Package transform implements the transformation core: a fixed pipeline of
// pattern-recognition rules that lower a generic syntax tree into the
// canonical intermediate representation consumed by the generators.
package transform

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/ir"
)

// Rule is one pipeline stage. Rules only append to or annotate the shared
// document, never reset it, so an unrecognized input shape leaves the
// document in a consistent partial state.
type Rule interface {
	Name() string
	Apply(root estree.Node, doc *ir.Document)
}

// ruleOrder is the fixed rule sequence. Later rules depend on facts the
// earlier ones produce: the event rule needs the setter map from the
// state-hook rule and the element ids from the template rule.
var ruleOrder = []string{"state-hook", "component", "template", "event"}

// Transformer owns the rule pipeline. It is stateless across calls and safe
// for concurrent use; each Transform call constructs its own document.
type Transformer struct {
	rules  []Rule
	logger *slog.Logger
}

// New constructs a transformer with the default mapping tables. A nil
// logger disables rule logging.
func New(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	mappings := DefaultMappings()

	t := &Transformer{
		rules: []Rule{
			NewStateHookRule(mappings, logger),
			NewComponentRule(mappings, logger),
			NewTemplateRule(mappings, logger),
			NewEventRule(mappings, logger),
		},
		logger: logger,
	}

	t.assertOrder()

	return t
}

// assertOrder verifies the pipeline sequence at construction time. The
// order is a correctness requirement, not a tuning knob, so a mismatch is a
// programming error.
func (t *Transformer) assertOrder() {
	if len(t.rules) != len(ruleOrder) {
		panic(fmt.Sprintf("transform: expected %d rules, have %d", len(ruleOrder), len(t.rules)))
	}

	for i, rule := range t.rules {
		if rule.Name() != ruleOrder[i] {
			panic(fmt.Sprintf("transform: rule %d is %q, want %q", i, rule.Name(), ruleOrder[i]))
		}
	}
}

// Transform applies the rule pipeline to the given syntax tree and returns
// the completed document. A tree with no component function yields a
// document with empty class and template sections; detecting that nothing
// was produced is the caller's responsibility.
func (t *Transformer) Transform(root estree.Node) *ir.Document {
	doc := ir.NewDocument()
	if root == nil {
		return doc
	}

	for _, rule := range t.rules {
		rule.Apply(root, doc)
		t.logger.Debug("applied rule", "rule", rule.Name())
	}

	return doc
}
