// Package llm requests a rewrite suggestion for a diagnostic from an
// optional Claude or OpenAI backend. It is the only network-facing part
// of mozuku: everything else runs entirely offline.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/clearclown/mozuku-go/internal/config"
)

// ErrDisabled is returned by NoneSuggester, and by HTTPSuggester when no
// API key is configured for the selected provider.
var ErrDisabled = errors.New("llm: suggestion backend is not configured")

// Request describes the text a caller wants rewritten.
type Request struct {
	// Text is the span under the diagnostic's range.
	Text string
	// Context is the surrounding prose, if any.
	Context string
	// Issue is a human-readable description of what the rule flagged.
	Issue string
}

// Suggestion is a proposed rewrite with the model's own account of why.
type Suggestion struct {
	Text        string
	Explanation string
	Confidence  float64
}

// Suggester proposes a rewrite for a flagged span.
type Suggester interface {
	Suggest(ctx context.Context, req Request) (Suggestion, error)
}

// NoneSuggester always declines. It is the backend mozuku runs with when
// no provider is configured, keeping the default installation offline.
type NoneSuggester struct{}

func (NoneSuggester) Suggest(ctx context.Context, req Request) (Suggestion, error) {
	return Suggestion{}, ErrDisabled
}

// NewSuggester selects a Suggester from cfg: NoneSuggester when LLM
// rewriting isn't enabled, otherwise an HTTPSuggester bound to the
// configured provider.
func NewSuggester(cfg config.Config) Suggester {
	if !cfg.LLMEnabled() {
		return NoneSuggester{}
	}
	return &HTTPSuggester{
		Provider:  cfg.LLM.Provider,
		APIKey:    cfg.APIKey(),
		Model:     cfg.Model(),
		BaseURL:   cfg.LLM.BaseURL,
		MaxTokens: cfg.LLM.MaxTokens,
		Client:    http.DefaultClient,
	}
}

// HTTPSuggester calls the Claude or OpenAI chat-completion API over HTTP.
type HTTPSuggester struct {
	Provider  string // "claude" or "openai"
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
	Client    *http.Client
}

func (s *HTTPSuggester) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

// Suggest builds a proofreading prompt from req and dispatches it to the
// configured provider.
func (s *HTTPSuggester) Suggest(ctx context.Context, req Request) (Suggestion, error) {
	if s.APIKey == "" {
		return Suggestion{}, ErrDisabled
	}

	prompt := buildPrompt(req)

	var (
		raw string
		err error
	)
	switch s.Provider {
	case "claude":
		raw, err = s.callClaude(ctx, prompt)
	case "openai":
		raw, err = s.callOpenAI(ctx, prompt)
	default:
		return Suggestion{}, fmt.Errorf("llm: unknown provider %q", s.Provider)
	}
	if err != nil {
		return Suggestion{}, err
	}

	return parseSuggestion(raw)
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("あなたは日本語校正の専門家です。以下のテキストを校正し、修正案を提示してください。\n\n")
	if req.Context != "" {
		fmt.Fprintf(&b, "【文脈】\n%s\n\n", req.Context)
	}
	fmt.Fprintf(&b, "【校正対象テキスト】\n%s\n\n", req.Text)
	if req.Issue != "" {
		fmt.Fprintf(&b, "【検出された問題】\n%s\n\n", req.Issue)
	}
	b.WriteString(`以下のJSON形式で回答してください：
{
  "suggestion": "修正後のテキスト",
  "explanation": "修正理由の説明",
  "confidence": 0.0〜1.0の確信度
}

JSONのみを出力し、それ以外のテキストは含めないでください。`)
	return b.String()
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (s *HTTPSuggester) callClaude(ctx context.Context, prompt string) (string, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}

	body, err := json.Marshal(claudeRequest{
		Model:     s.Model,
		MaxTokens: s.MaxTokens,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("x-api-key", s.APIKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")
	httpReq.Header.Set("content-type", "application/json")

	resp, err := s.client().Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm: claude API error: %s - %s", resp.Status, respBody)
	}

	var parsed claudeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Content) == 0 {
		return "", errors.New("llm: empty response from claude")
	}
	return parsed.Content[0].Text, nil
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *HTTPSuggester) callOpenAI(ctx context.Context, prompt string) (string, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}

	body, err := json.Marshal(openAIRequest{
		Model:     s.Model,
		MaxTokens: s.MaxTokens,
		Messages:  []openAIMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.APIKey)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := s.client().Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm: openai API error: %s - %s", resp.Status, respBody)
	}

	var parsed openAIResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("llm: empty response from openai")
	}
	return parsed.Choices[0].Message.Content, nil
}

type parsedSuggestion struct {
	Suggestion  string  `json:"suggestion"`
	Explanation string  `json:"explanation"`
	Confidence  float64 `json:"confidence"`
}

func parseSuggestion(raw string) (Suggestion, error) {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return Suggestion{}, err
	}

	var p parsedSuggestion
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		return Suggestion{}, fmt.Errorf("llm: failed to parse response: %w - response: %s", err, jsonStr)
	}

	confidence := p.Confidence
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.0 {
		confidence = 0.0
	}

	return Suggestion{
		Text:        p.Suggestion,
		Explanation: p.Explanation,
		Confidence:  confidence,
	}, nil
}

// extractJSON pulls a JSON object out of a model response that may be a
// bare object, fenced in a ```json code block, or wrapped in prose.
func extractJSON(response string) (string, error) {
	trimmed := strings.TrimSpace(response)

	if strings.HasPrefix(trimmed, "{") {
		depth := 0
		endIdx := -1
		for i, c := range trimmed {
			switch c {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					endIdx = i + 1
				}
			}
			if endIdx >= 0 {
				break
			}
		}
		if endIdx > 0 {
			return trimmed[:endIdx], nil
		}
	}

	if start := strings.Index(trimmed, "```json"); start >= 0 {
		jsonStart := start + len("```json")
		if end := strings.Index(trimmed[jsonStart:], "```"); end >= 0 {
			return strings.TrimSpace(trimmed[jsonStart : jsonStart+end]), nil
		}
	}

	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end >= start {
			return trimmed[start : end+1], nil
		}
	}

	return "", fmt.Errorf("llm: could not extract JSON from response: %s", response)
}
