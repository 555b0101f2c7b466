package rules

import (
	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// iNukiRule detects い抜き言葉 (i-nuki kotoba): the colloquial dropping of い
// from the progressive/resultative ている/でいる, e.g. してる for している.
// This is acceptable in casual speech, hence Hint rather than Warning.
type iNukiRule struct{}

func (iNukiRule) Code() string { return CodeINuki }

func (iNukiRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	for i, t := range tokens {
		if i == 0 || t.POS != "助動詞" {
			continue
		}
		prev := tokens[i-1]
		if prev.POS != "動詞" {
			continue
		}

		switch t.Surface {
		case "てる":
			diagnostics = append(diagnostics, diagnostic.New(
				tokenRange(lines, t),
				diagnostic.Hint,
				CodeINuki,
				"い抜き言葉です。「てる」→「ている」（口語では許容）",
			))
		case "でる":
			diagnostics = append(diagnostics, diagnostic.New(
				tokenRange(lines, t),
				diagnostic.Hint,
				CodeINuki,
				"い抜き言葉です。「でる」→「でいる」（口語では許容）",
			))
		}
	}

	return diagnostics
}
