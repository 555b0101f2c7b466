package rules

import (
	"fmt"
	"strings"

	"github.com/clearclown/mozuku-go/pkg/coord"
	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// consecutiveEndingsRule detects three or more sentences in a row ending in
// the same predicate style (です/ます/である/だ), a sign the prose could use
// more stylistic variety. It works on raw sentence-split text rather than
// tokens, since the ending it looks for is punctuation-delimited, not a
// single token.
type consecutiveEndingsRule struct{}

func (consecutiveEndingsRule) Code() string { return CodeConsecutiveEndings }

func (consecutiveEndingsRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	var sentences []string
	for _, s := range strings.Split(text, "。") {
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) < 3 {
		return diagnostics
	}

	consecutiveCount := 1
	lastEnding := ""
	charOffset := 0

	for _, sentence := range sentences {
		charOffset += runeCount(sentence) + 1 // +1 for the 。 consumed by Split

		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}

		ending := ""
		switch {
		case strings.HasSuffix(trimmed, "です"):
			ending = "です"
		case strings.HasSuffix(trimmed, "ます"):
			ending = "ます"
		case strings.HasSuffix(trimmed, "である"):
			ending = "である"
		case strings.HasSuffix(trimmed, "だ"):
			ending = "だ"
		}

		if ending == "" {
			consecutiveCount = 1
			lastEnding = ""
			continue
		}

		if ending == lastEnding {
			consecutiveCount++
		} else {
			consecutiveCount = 1
			lastEnding = ending
		}

		if consecutiveCount >= 3 {
			line, col := coord.CharOffsetToPosition(lines, charOffset-3)
			diagnostics = append(diagnostics, diagnostic.New(
				diagnostic.Range{
					Start: diagnostic.Position{Line: line, Column: col},
					End:   diagnostic.Position{Line: line, Column: col + 2},
				},
				diagnostic.Hint,
				CodeConsecutiveEndings,
				fmt.Sprintf("同じ文末「%s」が%d回連続しています。文体の変化を検討してください。", lastEnding, consecutiveCount),
			))
			consecutiveCount = 1
		}
	}

	return diagnostics
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
