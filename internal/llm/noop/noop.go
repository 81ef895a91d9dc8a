package noop

import (
	"context"

	"llm-newsletter-bot/internal/logger"
)

// draft carries every section header the real models emit, so dry runs
// exercise the full filter/render path.
const draft = `## 🎤 The Bit (The Macro Thesis)
No model configured; this is a placeholder issue.

## 🌍 The Setup (Top 5 High-Impact Stories)

### **Placeholder story**

Nothing happened today because no language model was configured.

👉 [Read more](https://example.com)

## 💼 Bag Check (Portfolio Stress Test)
* **Direct Hit:** none
* **The Verdict:** Thesis Intact
* **The Logic:** No model, no judgement.

## 🔔 The Playbook (Actionable Moves)
* Configure an LLM provider.
`

// Generator is the fallback used when no LLM provider is configured. It
// returns a canned draft instead of calling any network endpoint.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	logger.Debug(ctx, "Noop generator called - returning canned draft", "prompt_bytes", len(prompt))
	return draft, nil
}
