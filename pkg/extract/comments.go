package extract

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// commentStrategy extracts comment nodes of the given kinds from source
// parsed with lang, stripping each language's comment markers.
func commentStrategy(lang sitter.Language, languageName string, kinds []string) func(string) ([]TextSpan, error) {
	return func(content string) ([]TextSpan, error) {
		source := []byte(content)
		tree, root, err := parse(lang, languageName, source)
		if err != nil {
			return nil, err
		}
		defer tree.Close()

		var spans []TextSpan
		walk(root, func(n sitter.Node) bool {
			if contains(kinds, n.Type()) {
				raw := n.Content(source)
				cleaned := stripCommentMarkers(raw, n.Type())
				if strings.TrimSpace(cleaned) != "" {
					spans = append(spans, spanFromNode(n, cleaned))
				}
				return false
			}
			return true
		})
		return spans, nil
	}
}

func spanFromNode(n sitter.Node, text string) TextSpan {
	start, end := n.StartPoint(), n.EndPoint()
	return TextSpan{
		Text:      text,
		StartByte: int(n.StartByte()),
		EndByte:   int(n.EndByte()),
		StartLine: int(start.Row),
		StartCol:  int(start.Column),
		EndLine:   int(end.Row),
		EndCol:    int(end.Column),
	}
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

// stripCommentMarkers removes the comment syntax around raw comment or
// docstring text, matching each grammar's node kind vocabulary.
func stripCommentMarkers(text, kind string) string {
	switch kind {
	case "line_comment":
		t := strings.TrimPrefix(text, "///")
		t = strings.TrimPrefix(t, "//!")
		t = strings.TrimPrefix(t, "//")
		return strings.TrimSpace(t)
	case "block_comment":
		t := strings.TrimPrefix(text, "/**")
		t = strings.TrimPrefix(t, "/*!")
		t = strings.TrimPrefix(t, "/*")
		t = strings.TrimSuffix(t, "*/")
		return strings.TrimSpace(t)
	case "comment":
		trimmed := strings.TrimSpace(text)
		switch {
		case strings.HasPrefix(trimmed, "#"):
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		case strings.HasPrefix(trimmed, "//"):
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
		case strings.HasPrefix(trimmed, "/*"):
			t := strings.TrimPrefix(trimmed, "/*")
			t = strings.TrimSuffix(t, "*/")
			return strings.TrimSpace(t)
		default:
			return trimmed
		}
	case "string":
		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''") {
			inner := trimmed
			if len(inner) >= 6 {
				inner = inner[3 : len(inner)-3]
			}
			return strings.TrimSpace(inner)
		}
		return ""
	default:
		return text
	}
}
