package out

import "context"

// RateLimiter limits request rates per key, e.g. "ip:<address>".
type RateLimiter interface {
	// Allow reports whether one more request for key fits in the budget.
	Allow(ctx context.Context, key string) bool
}
