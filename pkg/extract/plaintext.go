package extract

import "strings"

// extractPlainText treats the entire document as a single prose span.
func extractPlainText(content string) ([]TextSpan, error) {
	if content == "" {
		return nil, nil
	}

	lines := strings.Split(content, "\n")
	endLine := len(lines) - 1
	endCol := 0
	if endLine >= 0 {
		// A byte column, matching the convention tree-sitter nodes use for
		// every other extraction strategy's start/end positions.
		endCol = len(lines[endLine])
	}

	return []TextSpan{{
		Text:      content,
		StartByte: 0,
		EndByte:   len(content),
		StartLine: 0,
		StartCol:  0,
		EndLine:   endLine,
		EndCol:    endCol,
	}}, nil
}
