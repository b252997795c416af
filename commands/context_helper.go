package commands

import (
	"context"
	"time"

	"github.com/linesmerrill/moderator-codes/config"
)

// WithQueryTimeout creates a context with query timeout. A zero-value handler
// has no timeout configured and falls back to config.DefaultQueryTimeout.
func WithQueryTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if d <= 0 {
		d = config.DefaultQueryTimeout
	}
	return context.WithTimeout(parent, d)
}
