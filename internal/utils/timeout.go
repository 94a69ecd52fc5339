package utils

import (
	"context"
	"time"
)

const DefaultAPITimeout = 10 * time.Second

func WithAPITimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultAPITimeout)
}
