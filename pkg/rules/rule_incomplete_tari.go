package rules

import (
	"strings"

	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// incompleteTariRule detects a lone たり followed by a verb with no matching
// second たり, e.g. 歩いたり走る instead of 歩いたり走ったりする.
type incompleteTariRule struct{}

func (incompleteTariRule) Code() string { return CodeIncompleteTari }

func (incompleteTariRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	var tariIndexes []int
	for i, t := range tokens {
		if t.Surface == "たり" {
			tariIndexes = append(tariIndexes, i)
		}
	}

	if len(tariIndexes) != 1 {
		return diagnostics
	}

	tariIdx := tariIndexes[0]
	tariToken := tokens[tariIdx]

	hasFollowingVerb := false
	hasFollowingTari := false
	for _, t := range tokens[tariIdx+1:] {
		if t.POS == "動詞" && !strings.HasSuffix(t.Surface, "たり") {
			hasFollowingVerb = true
		}
		if t.Surface == "たり" || strings.HasSuffix(t.Surface, "たり") {
			hasFollowingTari = true
		}
	}

	if hasFollowingVerb && !hasFollowingTari {
		diagnostics = append(diagnostics, diagnostic.New(
			tokenRange(lines, tariToken),
			diagnostic.Warning,
			CodeIncompleteTari,
			"「たり」を使う場合は「〜たり〜たりする」の形が適切です。",
		))
	}

	return diagnostics
}
