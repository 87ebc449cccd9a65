// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/watchlog/internal/logging"
	"github.com/tomtom215/watchlog/internal/metrics"
)

// BreakerConfig tunes BreakerGenerator.
type BreakerConfig struct {
	Name         string
	MaxRequests  uint32        // trial calls allowed in half-open state
	Interval     time.Duration // count reset period while closed
	OpenTimeout  time.Duration // time spent open before probing
	MinRequests  uint32        // requests needed before the ratio is considered
	FailureRatio float64
}

// DefaultBreakerConfig opens after 60% failures over at least 5 calls and
// tries again after two minutes.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "gemini-api",
		MaxRequests:  1,
		Interval:     time.Minute,
		OpenTimeout:  2 * time.Minute,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// BreakerGenerator stops calling the model while it keeps failing.
type BreakerGenerator struct {
	next Generator
	cb   *gobreaker.CircuitBreaker[string]
	name string
}

// NewBreakerGenerator wraps next with a circuit breaker.
func NewBreakerGenerator(next Generator, cfg BreakerConfig) *BreakerGenerator {
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			trip := ratio >= cfg.FailureRatio
			if trip {
				logging.Warn().
					Str("breaker", cfg.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("Opening circuit")
			}
			return trip
		},

		// A caller giving up, or a local pacing wait, is not a model failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrRateLimited)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerGenerator{next: next, cb: cb, name: cfg.Name}
}

// GenerateText calls the wrapped generator unless the circuit is open.
func (b *BreakerGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	text, err := b.cb.Execute(func() (string, error) {
		return b.next.GenerateText(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return "", fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return "", err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return text, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerGenerator) State() string {
	return stateToString(b.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
