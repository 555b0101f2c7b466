package rules

import (
	"fmt"

	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// targetParticles are the particles checked for back-to-back duplication,
// e.g. がが, をを, にに.
var targetParticles = map[string]bool{
	"が": true, "を": true, "に": true, "へ": true,
	"で": true, "と": true, "から": true, "まで": true, "より": true,
}

// doubleParticleRule detects a particle immediately followed by itself.
type doubleParticleRule struct{}

func (doubleParticleRule) Code() string { return CodeDoubleParticle }

func (doubleParticleRule) Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic

	for i := 0; i+1 < len(tokens); i++ {
		current, next := tokens[i], tokens[i+1]
		if current.POS == "助詞" && next.POS == "助詞" &&
			current.Surface == next.Surface && targetParticles[current.Surface] {

			diagnostics = append(diagnostics, diagnostic.New(
				tokensRange(lines, current, next),
				diagnostic.Error,
				CodeDoubleParticle,
				fmt.Sprintf("助詞「%s」が重複しています。", current.Surface),
			))
		}
	}

	return diagnostics
}
