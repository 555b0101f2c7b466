// Package config loads mozuku's TOML configuration: which LLM provider (if
// any) rewrites diagnostic messages, and which grammar rules are enabled.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/clearclown/mozuku-go/pkg/rules"
)

// Config is the root of mozuku.toml.
type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Checker CheckerConfig `toml:"checker"`
}

// LLMConfig selects and configures the optional rewrite-suggestion backend.
type LLMConfig struct {
	Provider  string `toml:"provider"`
	APIKey    string `toml:"api_key"`
	Model     string `toml:"model"`
	BaseURL   string `toml:"base_url"`
	MaxTokens int    `toml:"max_tokens"`
}

// CheckerConfig toggles individual grammar rules on or off.
type CheckerConfig struct {
	RaNuki              bool `toml:"ra_nuki"`
	INuki               bool `toml:"i_nuki"`
	DoubleParticle      bool `toml:"double_particle"`
	DoubleHonorific     bool `toml:"double_honorific"`
	RedundantExpression bool `toml:"redundant_expression"`
	ConsecutiveEndings  bool `toml:"consecutive_endings"`
	TariParallel        bool `toml:"tari_parallel"`
	ConsecutiveNo       bool `toml:"consecutive_no"`
}

// Default returns the configuration mozuku runs with when no mozuku.toml is
// found: LLM rewriting off, every grammar rule on.
func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider:  "none",
			MaxTokens: 1024,
		},
		Checker: CheckerConfig{
			RaNuki:              true,
			INuki:               true,
			DoubleParticle:      true,
			DoubleHonorific:     true,
			RedundantExpression: true,
			ConsecutiveEndings:  true,
			TariParallel:        true,
			ConsecutiveNo:       true,
		},
	}
}

// Load reads and parses the TOML file at path. A missing file is not an
// error: it yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the XDG config path mozuku.toml is read from when no
// workspace-local file is present.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "mozuku", "mozuku.toml")
}

// LoadFromDefault mirrors the original config loader's search order: a
// workspace-local mozuku.toml first, then the XDG config directory, then
// the built-in defaults.
func LoadFromDefault() Config {
	if _, err := os.Stat("mozuku.toml"); err == nil {
		if cfg, loadErr := Load("mozuku.toml"); loadErr == nil {
			return cfg
		}
	}

	defaultPath := DefaultPath()
	if _, err := os.Stat(defaultPath); err == nil {
		if cfg, loadErr := Load(defaultPath); loadErr == nil {
			return cfg
		}
	}

	return Default()
}

// APIKey resolves the effective API key: the config file value if set,
// otherwise the provider's conventional environment variable.
func (c Config) APIKey() string {
	if c.LLM.APIKey != "" {
		return c.LLM.APIKey
	}
	switch c.LLM.Provider {
	case "claude":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return ""
	}
}

// Model resolves the effective model name: the config file value if set,
// otherwise the provider's default model.
func (c Config) Model() string {
	if c.LLM.Model != "" {
		return c.LLM.Model
	}
	switch c.LLM.Provider {
	case "claude":
		return "claude-3-5-sonnet-20241022"
	case "openai":
		return "gpt-4o"
	default:
		return ""
	}
}

// LLMEnabled reports whether rewrite suggestions should be requested.
func (c Config) LLMEnabled() bool {
	return c.LLM.Provider != "none" && c.APIKey() != ""
}

// RuleSet translates the checker toggles into a rules.RuleSet disabling
// every rule the config turned off.
func (c Config) RuleSet() rules.RuleSet {
	var disabled []string
	if !c.Checker.RaNuki {
		disabled = append(disabled, rules.CodeRaNuki)
	}
	if !c.Checker.INuki {
		disabled = append(disabled, rules.CodeINuki)
	}
	if !c.Checker.DoubleParticle {
		disabled = append(disabled, rules.CodeDoubleParticle)
	}
	if !c.Checker.DoubleHonorific {
		disabled = append(disabled, rules.CodeDoubleHonorific)
	}
	if !c.Checker.RedundantExpression {
		disabled = append(disabled, rules.CodeRedundantExpression)
	}
	if !c.Checker.ConsecutiveEndings {
		disabled = append(disabled, rules.CodeConsecutiveEndings)
	}
	if !c.Checker.TariParallel {
		disabled = append(disabled, rules.CodeIncompleteTari)
	}
	if !c.Checker.ConsecutiveNo {
		disabled = append(disabled, rules.CodeConsecutiveNo)
	}
	return rules.NewRuleSet(disabled...)
}
