package extract

import (
	"errors"
	"strings"
	"testing"
)

func allText(spans []TextSpan) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestFromExtension(t *testing.T) {
	cases := map[string]FileType{
		"md": Markdown, "markdown": Markdown,
		"rs": Rust,
		"py": Python, "pyi": Python,
		"ts": TypeScript, "tsx": TypeScript,
		"js": JavaScript, "jsx": JavaScript,
		"c": C, "h": C,
		"cpp": Cpp, "hpp": Cpp,
		"go":       Go,
		"tex":      LaTeX,
		"html":     HTML,
		"htm":      HTML,
		"txt":      PlainText,
		"unknown":  PlainText,
		"MD":       Markdown,
		"Rs":       Rust,
	}
	for ext, want := range cases {
		if got := FromExtension(ext); got != want {
			t.Errorf("FromExtension(%q) = %v, want %v", ext, got, want)
		}
	}
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor()
	content := "これはテストです。\n二行目です。"
	spans, err := e.Extract(content, PlainText)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(spans))
	}
	if spans[0].Text != content {
		t.Errorf("spans[0].Text = %q, want %q", spans[0].Text, content)
	}
	if spans[0].StartByte != 0 || spans[0].StartLine != 0 {
		t.Errorf("unexpected start position: %+v", spans[0])
	}
}

func TestExtractEmptyPlainText(t *testing.T) {
	e := NewExtractor()
	spans, err := e.Extract("", PlainText)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("len(spans) = %d, want 0", len(spans))
	}
}

func TestExtractRustLineComment(t *testing.T) {
	e := NewExtractor()
	content := "\nfn main() {\n    // これはコメントです\n    let x = 1;\n}\n"
	spans, err := e.Extract(content, Rust)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(allText(spans), "これはコメントです") {
		t.Errorf("expected comment text in spans, got %+v", spans)
	}
}

func TestExtractRustExcludesCodeAndStrings(t *testing.T) {
	e := NewExtractor()
	content := "\nfn main() {\n    // コメント\n    let message = \"文字列リテラル\";\n}\n"
	spans, err := e.Extract(content, Rust)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	text := allText(spans)
	if !strings.Contains(text, "コメント") {
		t.Errorf("expected comment text retained, got %q", text)
	}
	if strings.Contains(text, "文字列リテラル") {
		t.Errorf("string literal should not be extracted, got %q", text)
	}
	if strings.Contains(text, "let message") {
		t.Errorf("code should not be extracted, got %q", text)
	}
}

func TestExtractMarkdownSkipsCodeBlock(t *testing.T) {
	e := NewExtractor()
	content := "説明文\n\n```rust\nlet x = 1;\n```\n\n続きの文"
	spans, err := e.Extract(content, Markdown)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	text := allText(spans)
	if strings.Contains(text, "let x = 1") {
		t.Errorf("fenced code block content should be excluded, got %q", text)
	}
	if !strings.Contains(text, "説明文") {
		t.Errorf("expected surrounding prose retained, got %q", text)
	}
}

func TestExtractMarkdownHeadingAndParagraph(t *testing.T) {
	e := NewExtractor()
	content := "# 見出し\n\n本文です。"
	spans, err := e.Extract(content, Markdown)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	text := allText(spans)
	if !strings.Contains(text, "見出し") {
		t.Errorf("expected heading text, got %q", text)
	}
	if !strings.Contains(text, "本文です") {
		t.Errorf("expected paragraph text, got %q", text)
	}
}

func TestExtractGoComment(t *testing.T) {
	e := NewExtractor()
	content := "\n// Goのコメント\npackage main\nfunc main() {}\n"
	spans, err := e.Extract(content, Go)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(allText(spans), "Goのコメント") {
		t.Errorf("expected comment text in spans, got %+v", spans)
	}
}

func TestStripCommentMarkersDocstring(t *testing.T) {
	got := stripCommentMarkers(`"""これはdocstringです。"""`, "string")
	if !strings.Contains(got, "docstring") {
		t.Errorf("stripCommentMarkers(docstring) = %q", got)
	}
}

func TestExtractFallsBackToPlainTextOnParseFailure(t *testing.T) {
	content := "これは本文です。"
	failing := func(content string) ([]TextSpan, error) {
		return nil, &ParseFailedError{Language: "rust", Err: errors.New("boom")}
	}
	spans, err := withParseFallback(failing, content)
	if err != nil {
		t.Fatalf("withParseFallback() error = %v, want fallback to succeed", err)
	}
	if len(spans) != 1 || spans[0].Text != content {
		t.Errorf("spans = %+v, want a single PlainText span covering the whole document", spans)
	}
}

func TestStripCommentMarkersNonDocstringReturnsEmpty(t *testing.T) {
	got := stripCommentMarkers(`"plain string"`, "string")
	if got != "" {
		t.Errorf("stripCommentMarkers(non-docstring) = %q, want empty", got)
	}
}
