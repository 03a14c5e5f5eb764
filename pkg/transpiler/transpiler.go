// Package transpiler is the end-to-end facade: component source in, three
// Angular artifacts out. File placement and persistence stay with the caller.
package transpiler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/generate"
	"github.com/Sumatoshi-tech/angularize/pkg/jsparser"
	"github.com/Sumatoshi-tech/angularize/pkg/transform"
)

const treeExtension = ".json"

// Artifacts holds the three generated source texts for one component.
type Artifacts struct {
	ComponentName string
	TypeScript    string
	HTML          string
	CSS           string
}

// Transpiler drives parse, transform, and generation for one input unit at a
// time. Safe for concurrent use; each call owns its own IR.
type Transpiler struct {
	parser *jsparser.Parser
	tr     *transform.Transformer
	logger *slog.Logger
}

// New constructs a Transpiler. A nil logger discards all output.
func New(logger *slog.Logger) *Transpiler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Transpiler{
		parser: jsparser.New(),
		tr:     transform.New(logger),
		logger: logger,
	}
}

// Transpile converts one component input into its three artifacts. Inputs
// with a .json extension are decoded as pre-parsed syntax trees; everything
// else goes through the tree-sitter front end. The component name is the
// input file basename without extension.
func (t *Transpiler) Transpile(ctx context.Context, filename string, source []byte) (*Artifacts, error) {
	root, err := t.parse(ctx, filename, source)
	if err != nil {
		return nil, err
	}

	name := ComponentName(filename)

	t.logger.Debug("transpiling component", "name", name, "input", filename)

	return t.TranspileTree(root, name), nil
}

// TranspileTree runs the pipeline on an already-parsed syntax tree.
func (t *Transpiler) TranspileTree(root estree.Node, componentName string) *Artifacts {
	doc := t.tr.Transform(root)

	return &Artifacts{
		ComponentName: componentName,
		TypeScript:    generate.Class(doc, componentName),
		HTML:          generate.Template(doc, componentName),
		CSS:           generate.Styles(doc, componentName),
	}
}

func (t *Transpiler) parse(ctx context.Context, filename string, source []byte) (estree.Node, error) {
	if strings.EqualFold(filepath.Ext(filename), treeExtension) {
		root, err := estree.Decode(source)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filename, err)
		}

		return root, nil
	}

	root, err := t.parser.Parse(ctx, filename, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return root, nil
}

// ComponentName derives the artifact naming stem from an input path.
func ComponentName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
