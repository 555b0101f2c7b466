package extract

import "errors"

type strategy func(content string) ([]TextSpan, error)

// Extractor dispatches a document to the extraction strategy for its
// FileType. The zero value is ready to use.
type Extractor struct{}

// NewExtractor builds an Extractor. There is no per-instance state; grammars
// are constructed fresh for each Extract call since tree-sitter parsers are
// not safe to share across concurrent parses.
func NewExtractor() *Extractor { return &Extractor{} }

// Extract splits content into prose spans according to fileType. A
// tree-sitter parse failure is recoverable: Extract falls back to treating
// the whole document as a single PlainText span rather than propagating
// the error, so a malformed source file never blocks proofreading.
func (e *Extractor) Extract(content string, fileType FileType) ([]TextSpan, error) {
	return withParseFallback(e.strategyFor(fileType), content)
}

// withParseFallback runs s over content, retrying as extractPlainText when
// s fails with a *ParseFailedError.
func withParseFallback(s strategy, content string) ([]TextSpan, error) {
	spans, err := s(content)
	var parseErr *ParseFailedError
	if errors.As(err, &parseErr) {
		return extractPlainText(content)
	}
	return spans, err
}

func (e *Extractor) strategyFor(fileType FileType) strategy {
	switch fileType {
	case Markdown:
		return extractMarkdown
	case Rust:
		return commentStrategy(languageRust(), "rust", []string{"line_comment", "block_comment"})
	case Python:
		return commentStrategy(languagePython(), "python", []string{"comment", "string"})
	case TypeScript:
		return commentStrategy(languageTypeScript(), "typescript", []string{"comment"})
	case JavaScript:
		return commentStrategy(languageJavaScript(), "javascript", []string{"comment"})
	case C:
		return commentStrategy(languageC(), "c", []string{"comment"})
	case Cpp:
		return commentStrategy(languageCpp(), "cpp", []string{"comment"})
	case Go:
		return commentStrategy(languageGo(), "go", []string{"comment"})
	case HTML:
		return extractHTML
	case LaTeX:
		// LaTeX has no grammar in the wired tree-sitter pack; treated as
		// plain text, same fallback the original implementation used.
		return extractPlainText
	default:
		return extractPlainText
	}
}
