package rules

import (
	"fmt"
	"strings"

	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// honorificStem pairs a verb stem the tokenizer splits ahead of れ/られ with
// the correct single-honorific form.
type honorificStem struct {
	stem, correct string
}

// honorificStems covers the common honorific verbs the IPADIC tokenizer
// segments as stem + れ (e.g. おっしゃら + れ), derived from observed
// tokenizer output rather than a dictionary of honorifics in general.
var honorificStems = []honorificStem{
	{"おっしゃ", "おっしゃる"},
	{"いらっしゃ", "いらっしゃる"},
	{"なさ", "なさる"},
	{"くださ", "くださる"},
	{"召し上が", "召し上がる"},
}

// doubleHonorificRule detects 二重敬語 (double honorifics): stacking れる/
// られる onto a verb that is already in honorific form, e.g. おっしゃられる
// instead of おっしゃる, or ご覧になられる instead of ご覧になる.
type doubleHonorificRule struct{}

func (doubleHonorificRule) Code() string { return CodeDoubleHonorific }

func (doubleHonorificRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	for i := 0; i+1 < len(tokens); i++ {
		current, next := tokens[i], tokens[i+1]
		for _, hs := range honorificStems {
			if strings.HasPrefix(current.Surface, hs.stem) &&
				current.POS == "動詞" &&
				(next.Surface == "れ" || next.Surface == "られ") &&
				next.POS == "動詞" {

				diagnostics = append(diagnostics, diagnostic.New(
					tokensRange(lines, current, next),
					diagnostic.Warning,
					CodeDoubleHonorific,
					fmt.Sprintf("二重敬語の可能性があります。「%s%s」→「%s」",
						current.Surface, next.Surface, hs.correct),
				))
				break
			}
		}
	}

	for i := 0; i+3 < len(tokens); i++ {
		t0, t1, t2, t3 := tokens[i], tokens[i+1], tokens[i+2], tokens[i+3]
		if strings.HasPrefix(t0.Surface, "ご") &&
			t1.Surface == "に" &&
			(t2.Surface == "なら" || t2.Surface == "なり") &&
			(t3.Surface == "れ" || t3.Surface == "られ") {

			diagnostics = append(diagnostics, diagnostic.New(
				tokensRange(lines, t0, t3),
				diagnostic.Warning,
				CodeDoubleHonorific,
				fmt.Sprintf("二重敬語の可能性があります。「%s%s%s%s」→「%sになる」",
					t0.Surface, t1.Surface, t2.Surface, t3.Surface, t0.Surface),
			))
		}
	}

	return diagnostics
}
