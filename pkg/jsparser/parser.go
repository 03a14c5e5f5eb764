// Package jsparser turns raw JSX/TSX component source into the generic
// syntax tree consumed by the transformation pipeline. It is a tree-sitter
// front end; any other parser producing the same node shapes is an equally
// valid upstream.
package jsparser

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
)

var (
	// ErrParse reports a tree-sitter failure on the input source.
	ErrParse = errors.New("jsparser: parse failed")

	errNoRootNode = errors.New("jsparser: no root node")
)

// grammarFuncs maps grammar names to their tree-sitter language constructors.
// The tsx grammar is a superset used for all TypeScript flavors.
var grammarFuncs = map[string]func() unsafe.Pointer{
	"javascript": javascript.GetLanguage,
	"tsx":        tsx.GetLanguage,
}

// Parser converts component source files into estree nodes. One Parser is
// safe for concurrent use; tree-sitter parser instances are pooled per
// grammar.
type Parser struct {
	pools map[string]*sync.Pool
}

// New constructs a Parser with one parser pool per supported grammar.
func New() *Parser {
	pools := make(map[string]*sync.Pool, len(grammarFuncs))

	for name, getLang := range grammarFuncs {
		lang := sitter.NewLanguage(getLang())

		pools[name] = &sync.Pool{
			New: func() any {
				tsParser := sitter.NewParser()
				tsParser.SetLanguage(lang)

				return tsParser
			},
		}
	}

	return &Parser{pools: pools}
}

// Parse parses component source into a generic syntax tree. The grammar is
// chosen from the file extension, falling back to content-based language
// detection for unrecognized names.
func (p *Parser) Parse(ctx context.Context, filename string, content []byte) (estree.Node, error) {
	grammar := grammarFor(filename, content)

	pool := p.pools[grammar]

	tsParser, ok := pool.Get().(*sitter.Parser)
	if !ok {
		return nil, fmt.Errorf("%w: bad pool entry for %s", ErrParse, grammar)
	}

	defer pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, errNoRootNode
	}

	return convert(root, content), nil
}

// grammarFor picks a grammar by extension first, then by enry content
// detection. Unknown inputs default to the javascript grammar.
func grammarFor(filename string, content []byte) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".ts", ".tsx":
		return "tsx"
	case ".js", ".jsx", ".mjs", ".cjs":
		return "javascript"
	}

	switch enry.GetLanguage(path.Base(filename), content) {
	case "TypeScript", "TSX":
		return "tsx"
	default:
		return "javascript"
	}
}
