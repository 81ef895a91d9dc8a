package interfaces

import (
	"context"

	"llm-newsletter-bot/internal/types"
)

type PortfolioSource interface {
	Load(ctx context.Context) (types.Portfolio, error)
}
