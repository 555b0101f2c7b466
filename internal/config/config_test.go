package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clearclown/mozuku-go/pkg/rules"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.LLM.Provider != "none" {
		t.Errorf("Provider = %q, want none", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.LLM.APIKey)
	}
	if cfg.LLM.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d, want 1024", cfg.LLM.MaxTokens)
	}
	if !cfg.Checker.RaNuki || !cfg.Checker.DoubleHonorific {
		t.Error("default checker rules should all be enabled")
	}
}

func TestLoadNonexistentFileReturnsDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/mozuku.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.Provider != "none" {
		t.Errorf("Provider = %q, want none", cfg.LLM.Provider)
	}
}

func TestLoadMinimalTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mozuku.toml")
	if err := os.WriteFile(path, []byte("[llm]\nprovider = \"claude\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.Provider != "claude" {
		t.Errorf("Provider = %q, want claude", cfg.LLM.Provider)
	}
	if !cfg.Checker.RaNuki {
		t.Error("RaNuki should default to true when unspecified")
	}
}

func TestLoadFullTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mozuku.toml")
	content := `
[llm]
provider = "openai"
api_key = "sk-test-key"
model = "gpt-4o-mini"
max_tokens = 2048

[checker]
ra_nuki = true
i_nuki = false
double_particle = true
double_honorific = true
redundant_expression = false
consecutive_endings = true
tari_parallel = true
consecutive_no = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.APIKey != "sk-test-key" || cfg.LLM.MaxTokens != 2048 {
		t.Errorf("unexpected LLM config: %+v", cfg.LLM)
	}
	if !cfg.Checker.RaNuki || cfg.Checker.INuki || !cfg.Checker.DoubleParticle || cfg.Checker.RedundantExpression {
		t.Errorf("unexpected checker config: %+v", cfg.Checker)
	}
}

func TestModelDefaults(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "claude"
	if got := cfg.Model(); got != "claude-3-5-sonnet-20241022" {
		t.Errorf("Model() = %q, want claude-3-5-sonnet-20241022", got)
	}

	cfg.LLM.Provider = "openai"
	if got := cfg.Model(); got != "gpt-4o" {
		t.Errorf("Model() = %q, want gpt-4o", got)
	}

	cfg.LLM.Model = "custom-model"
	if got := cfg.Model(); got != "custom-model" {
		t.Errorf("Model() = %q, want custom-model", got)
	}
}

func TestLLMEnabled(t *testing.T) {
	cfg := Default()
	if cfg.LLMEnabled() {
		t.Error("LLMEnabled() should be false by default")
	}

	cfg.LLM.Provider = "claude"
	if cfg.LLMEnabled() {
		t.Error("LLMEnabled() should be false without an API key")
	}

	cfg.LLM.APIKey = "test-key"
	if !cfg.LLMEnabled() {
		t.Error("LLMEnabled() should be true with provider and API key set")
	}
}

func TestRuleSetDisablesOnlyTurnedOffRules(t *testing.T) {
	cfg := Default()
	cfg.Checker.INuki = false
	cfg.Checker.ConsecutiveNo = false

	rs := cfg.RuleSet()
	if rs.Enabled(rules.CodeINuki) {
		t.Error("i-nuki should be disabled")
	}
	if rs.Enabled(rules.CodeConsecutiveNo) {
		t.Error("consecutive-no should be disabled")
	}
	if !rs.Enabled(rules.CodeRaNuki) {
		t.Error("ra-nuki should remain enabled")
	}
}
