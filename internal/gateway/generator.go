// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package gateway

import (
	"context"
	"errors"
)

var (
	// ErrEmptyResponse is returned when the model answers with no text,
	// for example when the response was blocked.
	ErrEmptyResponse = errors.New("generative model returned no text")

	// ErrCircuitOpen is returned while the breaker rejects calls.
	ErrCircuitOpen = errors.New("generative model circuit open")

	// ErrRateLimited is returned when no call token arrives before ctx ends.
	ErrRateLimited = errors.New("generative model rate limit wait")
)

// Generator turns a prompt into free text.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// GenerateText calls f.
func (f GeneratorFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
