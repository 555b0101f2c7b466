package rules

import (
	"fmt"
	"strings"

	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// raNukiRule detects ら抜き言葉 (ra-nuki kotoba): an ichidan verb's potential
// form with the ら dropped, e.g. 食べれる where 食べられる is standard.
type raNukiRule struct{}

func (raNukiRule) Code() string { return CodeRaNuki }

func (raNukiRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	for i, t := range tokens {
		if t.POS == "動詞" &&
			strings.Contains(t.ConjugationType, "一段") &&
			strings.HasSuffix(t.Surface, "れる") {

			base := t.BaseForm
			if strings.HasSuffix(base, "れる") && !strings.HasSuffix(base, "られる") {
				correct := strings.Replace(t.Surface, "れる", "られる", 1)
				diagnostics = append(diagnostics, diagnostic.New(
					tokenRange(lines, t),
					diagnostic.Warning,
					CodeRaNuki,
					fmt.Sprintf("ら抜き言葉の可能性があります。「%s」→「%s」", t.Surface, correct),
				))
			}
		}

		if i > 0 && t.Surface == "れる" && t.POS == "動詞" {
			prev := tokens[i-1]
			if prev.POS == "動詞" &&
				strings.Contains(prev.ConjugationType, "一段") &&
				strings.Contains(prev.ConjugationForm, "連用形") {

				combined := prev.Surface + t.Surface
				correct := prev.Surface + "られる"
				diagnostics = append(diagnostics, diagnostic.New(
					tokensRange(lines, prev, t),
					diagnostic.Warning,
					CodeRaNuki,
					fmt.Sprintf("ら抜き言葉の可能性があります。「%s」→「%s」", combined, correct),
				))
			}
		}
	}

	return diagnostics
}
