package extract

import (
	"context"
	"fmt"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// ParseFailedError is returned when a tree-sitter grammar fails to produce a
// parse tree for a document. Callers fall back to treating the whole
// document as a single plain-text span.
type ParseFailedError struct {
	Language string
	Err      error
}

func (e *ParseFailedError) Error() string {
	return fmt.Sprintf("extract: failed to parse %s: %v", e.Language, e.Err)
}

func (e *ParseFailedError) Unwrap() error { return e.Err }

// parse runs a tree-sitter grammar over content and returns its root node
// together with the parsed tree, which the caller must Close when done.
func parse(lang sitter.Language, languageName string, content []byte) (sitter.Tree, sitter.Node, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(lang); err != nil {
		return sitter.Tree{}, sitter.Node{}, &ParseFailedError{Language: languageName, Err: err}
	}

	tree, err := parser.ParseString(context.Background(), nil, content)
	if err != nil {
		return sitter.Tree{}, sitter.Node{}, &ParseFailedError{Language: languageName, Err: err}
	}

	return tree, tree.RootNode(), nil
}

// walk calls visit for every node in the tree, depth-first, pre-order.
func walk(n sitter.Node, visit func(sitter.Node) (descend bool)) {
	if !visit(n) {
		return
	}
	count := n.ChildCount()
	for i := uint32(0); i < count; i++ {
		walk(n.Child(i), visit)
	}
}
