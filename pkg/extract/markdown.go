package extract

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// markdownTextKinds are markdown block-grammar node kinds that carry prose.
var markdownTextKinds = []string{"paragraph", "heading_content", "list_item", "atx_heading"}

// markdownSkipKinds are node kinds whose subtree must never be treated as
// prose, even though they may nest inside a paragraph-like ancestor.
var markdownSkipKinds = []string{"code_block", "fenced_code_block", "code_span", "indented_code_block"}

func extractMarkdown(content string) ([]TextSpan, error) {
	source := []byte(content)
	tree, root, err := parse(languageMarkdown(), "markdown", source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var spans []TextSpan
	collectMarkdownText(root, source, &spans)
	return spans, nil
}

func collectMarkdownText(n sitter.Node, source []byte, spans *[]TextSpan) {
	if contains(markdownSkipKinds, n.Type()) {
		return
	}

	if contains(markdownTextKinds, n.Type()) {
		text := strings.TrimSpace(n.Content(source))
		if text != "" {
			*spans = append(*spans, spanFromNode(n, stripInlineCode(text)))
		}
	}

	count := n.ChildCount()
	for i := uint32(0); i < count; i++ {
		collectMarkdownText(n.Child(i), source, spans)
	}
}

// stripInlineCode re-parses a block of markdown text with the inline
// grammar and drops any code_span runs, so backtick-quoted identifiers
// inside a prose paragraph don't reach the grammar rule engine.
func stripInlineCode(text string) string {
	source := []byte(text)
	tree, root, err := parse(languageMarkdownInline(), "markdown_inline", source)
	if err != nil {
		return text
	}
	defer tree.Close()

	var b strings.Builder
	lastEnd := uint32(0)
	walk(root, func(n sitter.Node) bool {
		if n.Type() == "code_span" {
			if n.StartByte() >= lastEnd {
				b.Write(source[lastEnd:n.StartByte()])
				lastEnd = n.EndByte()
			}
			return false
		}
		return true
	})
	b.Write(source[lastEnd:])

	stripped := strings.TrimSpace(b.String())
	if stripped == "" {
		return text
	}
	return stripped
}
