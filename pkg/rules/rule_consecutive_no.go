package rules

import (
	"fmt"

	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// consecutiveNoRule detects three or more 名詞の chains in a row, e.g.
// 私の友達の本の内容, which reads better rephrased.
type consecutiveNoRule struct{}

func (consecutiveNoRule) Code() string { return CodeConsecutiveNo }

func (consecutiveNoRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	var run []token.Token
	flush := func() {
		if len(run) >= 3 {
			diagnostics = append(diagnostics, reportConsecutiveNo(lines, run))
		}
		run = nil
	}

	for i, t := range tokens {
		if t.Surface == "の" && t.POS == "助詞" {
			if i > 0 && tokens[i-1].POS == "名詞" {
				run = append(run, t)
			} else {
				flush()
			}
		} else if t.POS != "名詞" && len(run) > 0 {
			flush()
		}
	}
	flush()

	return diagnostics
}

func reportConsecutiveNo(lines []string, run []token.Token) diagnostic.Diagnostic {
	first, last := run[0], run[len(run)-1]
	return diagnostic.New(
		tokensRange(lines, first, last),
		diagnostic.Hint,
		CodeConsecutiveNo,
		fmt.Sprintf("「の」が%d回連続しています。読みやすさのため言い換えを検討してください。", len(run)),
	)
}
