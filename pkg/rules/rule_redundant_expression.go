package rules

import (
	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// redundantExpressionRule detects verbose constructions that collapse to a
// shorter potential form, e.g. することができる → できる, ことが可能 → できる.
type redundantExpressionRule struct{}

func (redundantExpressionRule) Code() string { return CodeRedundantExpression }

func (redundantExpressionRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	for i := 0; i+2 < len(tokens); i++ {
		t0, t1, t2 := tokens[i], tokens[i+1], tokens[i+2]

		// A fourth token is required here to mirror the original lookahead
		// guard, even though only t0..t2 are inspected below.
		hasFourth := i+3 < len(tokens)

		if t0.Surface != "こと" || t1.Surface != "が" || !hasFourth {
			continue
		}

		switch {
		case t2.Surface == "でき" || t2.BaseForm == "できる":
			diagnostics = append(diagnostics, diagnostic.New(
				tokensRange(lines, t0, t2),
				diagnostic.Hint,
				CodeRedundantExpression,
				"冗長な表現です。「〜ことができる」→「〜できる」",
			))
		case t2.Surface == "可能":
			diagnostics = append(diagnostics, diagnostic.New(
				tokensRange(lines, t0, t2),
				diagnostic.Hint,
				CodeRedundantExpression,
				"冗長な表現です。「〜ことが可能」→「〜できる」",
			))
		}
	}

	return diagnostics
}
