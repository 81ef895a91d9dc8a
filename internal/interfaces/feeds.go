package interfaces

import (
	"context"

	"llm-newsletter-bot/internal/types"
)

type FeedSource interface {
	Headlines(ctx context.Context) (types.Digest, error)
}
