// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package gateway

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/watchlog/internal/metrics"
)

// RateLimitedGenerator paces calls to stay under the provider's quota.
// Callers block until a token is available or ctx ends.
type RateLimitedGenerator struct {
	next    Generator
	limiter *rate.Limiter
}

// NewRateLimitedGenerator allows rps calls per second with the given burst.
func NewRateLimitedGenerator(next Generator, rps float64, burst int) *RateLimitedGenerator {
	return &RateLimitedGenerator{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GenerateText waits for a token then calls the wrapped generator.
func (r *RateLimitedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	metrics.AIRateLimitWaits.Observe(time.Since(start).Seconds())
	return r.next.GenerateText(ctx, prompt)
}

// Guard wraps next in a circuit breaker and the breaker in a rate limiter,
// so a caller that times out waiting for a token never reaches the breaker.
// The breaker is returned for state reporting.
func Guard(next Generator, rps float64, burst int, cfg BreakerConfig) (*RateLimitedGenerator, *BreakerGenerator) {
	breaker := NewBreakerGenerator(next, cfg)
	return NewRateLimitedGenerator(breaker, rps, burst), breaker
}
