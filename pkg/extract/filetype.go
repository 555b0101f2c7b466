package extract

import "strings"

// FileType is a document kind the extractor knows a dedicated strategy for.
type FileType int

const (
	PlainText FileType = iota
	Markdown
	Rust
	Python
	TypeScript
	JavaScript
	C
	Cpp
	Go
	LaTeX
	HTML
)

// FromExtension maps a file extension (without the leading dot, any case)
// to a FileType. Unrecognized extensions fall back to PlainText.
func FromExtension(ext string) FileType {
	switch strings.ToLower(ext) {
	case "md", "markdown":
		return Markdown
	case "rs":
		return Rust
	case "py", "pyi":
		return Python
	case "ts", "tsx":
		return TypeScript
	case "js", "jsx", "mjs", "cjs":
		return JavaScript
	case "c", "h":
		return C
	case "cpp", "cc", "cxx", "hpp", "hxx":
		return Cpp
	case "go":
		return Go
	case "tex", "latex":
		return LaTeX
	case "html", "htm", "xhtml":
		return HTML
	default:
		return PlainText
	}
}
