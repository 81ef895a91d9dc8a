package pipeline

import (
	"context"
	"fmt"
	"time"

	"llm-newsletter-bot/internal/archive"
	"llm-newsletter-bot/internal/interfaces"
	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/newsletter"
	"llm-newsletter-bot/internal/prompt"
	"llm-newsletter-bot/internal/render"
	"llm-newsletter-bot/internal/trace"
	"llm-newsletter-bot/internal/types"
)

// Pipeline runs one newsletter issue end to end: aggregate news, load the
// optional portfolio, compose the prompt, generate, filter, render, archive,
// send. Feed and portfolio failures degrade the input; everything after the
// composer is fatal and aborts the run.
type Pipeline struct {
	feeds     interfaces.FeedSource
	portfolio interfaces.PortfolioSource
	composer  *prompt.Composer
	generator interfaces.Generator
	renderer  *render.Renderer
	archive   *archive.Store
	mailer    interfaces.Mailer

	// Now is swappable for tests
	Now func() time.Time
}

func New(
	feeds interfaces.FeedSource,
	portfolio interfaces.PortfolioSource,
	composer *prompt.Composer,
	generator interfaces.Generator,
	renderer *render.Renderer,
	archiveStore *archive.Store,
	mailer interfaces.Mailer,
) *Pipeline {
	return &Pipeline{
		feeds:     feeds,
		portfolio: portfolio,
		composer:  composer,
		generator: generator,
		renderer:  renderer,
		archive:   archiveStore,
		mailer:    mailer,
		Now:       time.Now,
	}
}

// Run executes a single newsletter issue.
func (p *Pipeline) Run(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "pipeline.Run")
	defer span.End()

	digest, err := p.feeds.Headlines(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Feed aggregation failed, continuing with empty news", err)
		digest = types.Digest{Text: types.NoNewsMarker}
	}

	pf, err := p.portfolio.Load(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Portfolio read failed, continuing without portfolio", err)
		pf = types.Portfolio{}
	}

	promptStr, err := p.composer.Compose(digest.Text, pf.String())
	if err != nil {
		return err
	}
	logger.Stage(ctx, "prompt", "prompt_bytes", len(promptStr), "articles", len(digest.Articles), "portfolio", pf.Configured)

	draft, err := p.generator.Generate(ctx, promptStr)
	if err != nil {
		return fmt.Errorf("newsletter generation failed: %w", err)
	}

	final := newsletter.Filter(draft, pf.Configured)
	logger.Stage(ctx, "filter", "draft_bytes", len(draft), "final_bytes", len(final))

	htmlDoc, err := p.renderer.Render(final)
	if err != nil {
		return err
	}

	now := p.Now()
	date := now.Format("2006-01-02")
	titled := fmt.Sprintf("# Financial Newsletter - %s\n\n%s", date, final)
	path, err := p.archive.Write(now, titled)
	if err != nil {
		return err
	}
	logger.Stage(ctx, "archive", "path", path)

	subject := "🔥 Geopolitical Heat Check - " + date
	if err := p.mailer.Send(ctx, subject, final, htmlDoc); err != nil {
		return err
	}
	logger.Stage(ctx, "mail", "subject", subject)

	return nil
}
