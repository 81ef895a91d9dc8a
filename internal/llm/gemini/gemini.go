package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"llm-newsletter-bot/internal/store"
	"llm-newsletter-bot/internal/trace"
)

// Generator produces the newsletter draft through the Gemini API.
type Generator struct {
	cfg *store.Config
	key string
}

func NewGenerator(cfg *store.Config, apiKey string) *Generator {
	return &Generator{cfg: cfg, key: apiKey}
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "gemini-api-call")
	defer span.End()

	if g.key == "" {
		return "", errors.New("GEMINI_API_KEY missing")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.cfg.LLM.Temperature),
	}
	if g.cfg.LLM.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(g.cfg.LLM.MaxTokens)
	}
	if g.cfg.LLM.System != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: g.cfg.LLM.System}},
		}
	}

	resp, err := client.Models.GenerateContent(ctx, g.cfg.LLM.Model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
