// Package extract pulls prose-bearing spans of text out of a source
// document — comments from source code, paragraphs and headings from
// Markdown, readable article text from HTML — so the grammar rule engine
// only ever sees natural-language Japanese, never code or markup.
package extract

// TextSpan is a contiguous run of extracted prose together with its
// position in the original document. Positions are zero-indexed.
type TextSpan struct {
	Text      string
	StartByte int
	EndByte   int
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}
