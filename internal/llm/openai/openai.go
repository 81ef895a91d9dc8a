package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"llm-newsletter-bot/internal/store"
	"llm-newsletter-bot/internal/trace"
)

// Generator produces the newsletter draft through the OpenAI chat
// completions API.
type Generator struct {
	cfg *store.Config
}

func NewGenerator(cfg *store.Config) *Generator {
	return &Generator{cfg: cfg}
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY missing")
	}

	body := map[string]any{
		"model":       g.cfg.LLM.Model,
		"messages":    []map[string]string{{"role": "system", "content": g.cfg.LLM.System}, {"role": "user", "content": prompt}},
		"temperature": g.cfg.LLM.Temperature,
		"max_tokens":  g.cfg.LLM.MaxTokens,
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}

	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}

	out := strings.TrimSpace(r.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("openai returned an empty response")
	}
	return out, nil
}
