package llmobs

import (
	"context"

	"llm-newsletter-bot/internal/interfaces"
	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/trace"
)

// observableGenerator wraps a Generator with observability (logging & tracing)
type observableGenerator struct {
	generator interfaces.Generator
}

// Compile-time interface check
var _ interfaces.Generator = (*observableGenerator)(nil)

// Wrap wraps a generator with observability middleware
func Wrap(generator interfaces.Generator) interfaces.Generator {
	return &observableGenerator{
		generator: generator,
	}
}

// Generate produces the newsletter draft with observability
func (og *observableGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Generate")
	defer span.End()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Requesting newsletter draft", "prompt_bytes", len(prompt))

	draft, err := og.generator.Generate(ctx, prompt)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to generate newsletter draft", err)
		return "", err
	}

	logger.InfoSkip(ctx, 1, "Newsletter draft received", "draft_bytes", len(draft))
	return draft, nil
}
