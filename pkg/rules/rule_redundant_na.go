package rules

import (
	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// redundantNaRule detects a doubled な auxiliary, e.g. 静かなな for 静かな.
type redundantNaRule struct{}

func (redundantNaRule) Code() string { return CodeRedundantNa }

func (redundantNaRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	for i := 0; i+1 < len(tokens); i++ {
		current, next := tokens[i], tokens[i+1]
		if current.Surface == "な" && next.Surface == "な" &&
			current.POS == "助動詞" && next.POS == "助動詞" {

			diagnostics = append(diagnostics, diagnostic.New(
				tokensRange(lines, current, next),
				diagnostic.Error,
				CodeRedundantNa,
				"「な」が重複しています。",
			))
		}
	}

	return diagnostics
}
