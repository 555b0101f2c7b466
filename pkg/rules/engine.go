// Package rules implements the grammar rule engine: a set of independent
// bounded-window pattern matchers over a token sequence, each producing
// diagnostics for a single class of Japanese stylistic or grammatical issue.
package rules

import (
	"github.com/clearclown/mozuku-go/pkg/coord"
	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// Rule Codes, stable across releases; collaborators may key off them (e.g.
// to suppress a specific rule inline).
const (
	CodeRaNuki              = "ra-nuki"
	CodeINuki               = "i-nuki"
	CodeDoubleParticle      = "double-particle"
	CodeRedundantNa         = "redundant-na"
	CodeDoubleHonorific     = "double-honorific"
	CodeRedundantExpression = "redundant-expression"
	CodeConsecutiveEndings  = "consecutive-endings"
	CodeIncompleteTari      = "incomplete-tari"
	CodeConsecutiveNo       = "consecutive-no"
)

// Rule detects one class of issue over a token sequence and the raw lines of
// the span it was run against. Implementations must not mutate tokens.
type Rule interface {
	// Code is the stable diagnostic code this rule produces.
	Code() string
	// Check scans tokens (and, where a rule needs raw punctuation context,
	// text) and returns zero or more diagnostics with span-local positions.
	Check(tokens []token.Token, text string, lines []string) []diagnostic.Diagnostic
}

// RuleSet controls which rules are enabled. The zero value enables every
// rule; this mirrors the default checker behavior of running all checks.
type RuleSet struct {
	disabled map[string]bool
}

// NewRuleSet builds a RuleSet that disables the named rule codes.
func NewRuleSet(disabledCodes ...string) RuleSet {
	rs := RuleSet{disabled: make(map[string]bool, len(disabledCodes))}
	for _, c := range disabledCodes {
		rs.disabled[c] = true
	}
	return rs
}

// Enabled reports whether the given rule code should run.
func (rs RuleSet) Enabled(code string) bool {
	return !rs.disabled[code]
}

// AllRules returns one instance of every built-in rule, in a fixed order
// matching the original checker's registration order.
func AllRules() []Rule {
	return []Rule{
		raNukiRule{},
		iNukiRule{},
		doubleParticleRule{},
		redundantNaRule{},
		doubleHonorificRule{},
		redundantExpressionRule{},
		consecutiveEndingsRule{},
		incompleteTariRule{},
		consecutiveNoRule{},
	}
}

// Engine runs a fixed set of rules over a tokenizer's output.
type Engine struct {
	tokenizer *token.Tokenizer
	rules     []Rule
}

// NewEngine builds an Engine over every built-in rule. Pass a RuleSet to
// Check to disable specific rules per call; Check with the zero RuleSet
// value runs everything.
func NewEngine(tk *token.Tokenizer) *Engine {
	return &Engine{tokenizer: tk, rules: AllRules()}
}

// Check tokenizes text and runs every enabled rule over the result,
// concatenating their diagnostics. Order among rules is unspecified.
func (e *Engine) Check(text string, rs RuleSet) []diagnostic.Diagnostic {
	tokens := e.tokenizer.Tokenize(text)
	lines := coord.SplitLines(text)

	var diagnostics []diagnostic.Diagnostic
	for _, r := range e.rules {
		if !rs.Enabled(r.Code()) {
			continue
		}
		diagnostics = append(diagnostics, r.Check(tokens, text, lines)...)
	}
	return diagnostics
}

// tokenRange converts a single token's span into a document-local range.
func tokenRange(lines []string, t token.Token) diagnostic.Range {
	return tokensRange(lines, t, t)
}

// tokensRange converts the span from the first to the last of a contiguous
// run of tokens into a document-local range.
func tokensRange(lines []string, first, last token.Token) diagnostic.Range {
	startLine, startCol := coord.CharOffsetToPosition(lines, first.CharOffset)
	endLine, endCol := coord.CharOffsetToPosition(lines, last.CharOffset+last.CharLength)
	return diagnostic.Range{
		Start: diagnostic.Position{Line: startLine, Column: startCol},
		End:   diagnostic.Position{Line: endLine, Column: endCol},
	}
}
