package extract

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

// placeholderURL satisfies go-readability's requirement for a base URL to
// resolve relative links against; mozuku extracts local files and never
// follows the links it finds, so the value itself is never observed.
var placeholderURL, _ = url.Parse("https://mozuku.invalid/")

var (
	reRubyText  = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRubyParen = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// sanitizeRuby removes ruby annotation markup (<rt>/<rp>) from HTML before
// readability extraction. Without this, furigana glosses are pulled in
// alongside their base text (e.g. "漢字" becomes "漢字かんじ"), corrupting
// every downstream tokenization and rule check.
func sanitizeRuby(content []byte) []byte {
	cleaned := reRubyText.ReplaceAll(content, nil)
	cleaned = reRubyParen.ReplaceAll(cleaned, nil)
	return cleaned
}

// extractHTML runs readability's boilerplate-stripping extraction over the
// document, then locates the resulting article text in the ruby-sanitized
// copy of the source by first occurrence. Because readability discards the
// original markup, this coordinate mapping is an approximation: it finds
// where the extracted text first appears byte-for-byte in that copy, so the
// byte offsets do not account for the removed ruby markup, and it can be
// wrong if the same sentence occurs verbatim more than once (e.g. a
// repeated pull-quote). Treat HTML diagnostic positions as indicative
// rather than exact, same as the consecutive-endings rule's range.
func extractHTML(content string) ([]TextSpan, error) {
	sanitized := sanitizeRuby([]byte(content))

	article, err := readability.FromReader(bytes.NewReader(sanitized), placeholderURL)
	if err != nil {
		return nil, &ParseFailedError{Language: "html", Err: err}
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, nil
	}

	startByte := strings.Index(string(sanitized), article.TextContent)
	if startByte < 0 {
		// The extracted text was reflowed (whitespace collapsed, tags
		// removed) enough that it no longer appears verbatim; report it
		// as occupying the whole document rather than guessing further.
		return extractPlainTextSpan(text, 0, len(sanitized))
	}

	return extractPlainTextSpan(text, startByte, startByte+len(article.TextContent))
}

// extractPlainTextSpan builds a single span carrying the given byte offsets.
// Its line/column are local to the extracted text, not the original
// document: it starts at (0, 0) and ends at the last line of text, with the
// end column counted in bytes.
func extractPlainTextSpan(text string, startByte, endByte int) ([]TextSpan, error) {
	lines := strings.Split(text, "\n")
	endLine := len(lines) - 1
	endCol := 0
	if endLine >= 0 {
		endCol = len(lines[endLine])
	}

	return []TextSpan{{
		Text:      text,
		StartByte: startByte,
		EndByte:   endByte,
		StartLine: 0,
		StartCol:  0,
		EndLine:   endLine,
		EndCol:    endCol,
	}}, nil
}
