// Package render formats morphological tokens for collaborator display:
// hover markup and LSP-style delta-encoded semantic tokens.
package render

import (
	"strings"

	"github.com/clearclown/mozuku-go/pkg/coord"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// SemanticToken is a single delta-encoded entry in an LSP semantic tokens
// response: position relative to the previous token, length in code
// points, and a token type code.
type SemanticToken struct {
	DeltaLine      int
	DeltaStartChar int
	Length         int
	TokenType      int
}

// posTokenType maps a part of speech to the fixed semantic token type codes
// mozuku reports; unmapped parts of speech fall back to 7 ("other").
var posTokenType = map[string]int{
	"名詞":  0,
	"動詞":  1,
	"形容詞": 2,
	"副詞":  3,
	"助詞":  4,
	"助動詞": 5,
	"接続詞": 6,
}

const otherTokenType = 7

func posToTokenType(pos string) int {
	if t, ok := posTokenType[pos]; ok {
		return t
	}
	return otherTokenType
}

// Hover finds the token spanning a (line, column) position within text and
// renders it as Markdown. It returns ("", false) when no token covers the
// position — a blank line, for instance, or a position past the end of
// text.
func Hover(tokens []token.Token, lines []string, line, column int) (string, bool) {
	if line < 0 || line >= len(lines) {
		return "", false
	}

	charOffset := 0
	for i, l := range lines {
		if i == line {
			charOffset += column
			break
		}
		charOffset += runeCount(l) + 1
	}

	for _, t := range tokens {
		tokenEnd := t.CharOffset + t.CharLength
		if t.CharOffset <= charOffset && charOffset < tokenEnd {
			return formatTokenInfo(t), true
		}
	}

	return "", false
}

// formatTokenInfo renders a single token's morphological detail as the
// Markdown body of a hover popup.
func formatTokenInfo(t token.Token) string {
	var b strings.Builder

	b.WriteString("## ")
	b.WriteString(t.Surface)
	b.WriteString("\n\n**品詞**: ")
	b.WriteString(t.POS)

	if t.POSDetail1 != "*" {
		b.WriteString("-")
		b.WriteString(t.POSDetail1)
	}
	if t.POSDetail2 != "*" {
		b.WriteString("-")
		b.WriteString(t.POSDetail2)
	}
	if t.POSDetail3 != "*" {
		b.WriteString("-")
		b.WriteString(t.POSDetail3)
	}
	b.WriteString("\n")

	if t.BaseForm != "*" && t.BaseForm != t.Surface {
		b.WriteString("\n**基本形**: ")
		b.WriteString(t.BaseForm)
		b.WriteString("\n")
	}

	if t.ConjugationType != "*" {
		b.WriteString("**活用型**: ")
		b.WriteString(t.ConjugationType)
		b.WriteString("\n")
	}

	if t.ConjugationForm != "*" {
		b.WriteString("**活用形**: ")
		b.WriteString(t.ConjugationForm)
		b.WriteString("\n")
	}

	if t.Reading != "" && t.Reading != "*" {
		b.WriteString("\n**読み**: ")
		b.WriteString(t.Reading)
		b.WriteString("\n")
	}

	return b.String()
}

// SemanticTokens renders a token sequence as LSP-style delta-encoded
// semantic tokens: each entry's position is relative to the previous
// token's, per the LSP semantic tokens wire format.
func SemanticTokens(tokens []token.Token, lines []string) []SemanticToken {
	result := make([]SemanticToken, 0, len(tokens))

	prevLine, prevChar := 0, 0
	for _, t := range tokens {
		line, col := coord.CharOffsetToPosition(lines, t.CharOffset)

		deltaLine := line - prevLine
		deltaStart := col
		if deltaLine == 0 {
			deltaStart = col - prevChar
		}

		result = append(result, SemanticToken{
			DeltaLine:      deltaLine,
			DeltaStartChar: deltaStart,
			Length:         t.CharLength,
			TokenType:      posToTokenType(t.POS),
		})

		prevLine, prevChar = line, col
	}

	return result
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
