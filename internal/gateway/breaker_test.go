// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package gateway

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func testBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     time.Minute,
		OpenTimeout:  time.Hour,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	failing := GeneratorFunc(func(context.Context, string) (string, error) {
		calls.Add(1)
		return "", errors.New("upstream 503")
	})

	b := NewBreakerGenerator(failing, testBreakerConfig("test-open"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := b.GenerateText(ctx, "p"); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}
	if got := b.State(); got != "open" {
		t.Fatalf("State() = %q, want open", got)
	}

	_, err := b.GenerateText(ctx, "p")
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("err = %v, want ErrCircuitOpen", err)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("upstream called %d times, want 3", n)
	}
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	t.Parallel()

	cancelled := GeneratorFunc(func(context.Context, string) (string, error) {
		return "", context.Canceled
	})

	b := NewBreakerGenerator(cancelled, testBreakerConfig("test-cancel"))
	for i := 0; i < 5; i++ {
		_, _ = b.GenerateText(context.Background(), "p")
	}
	if got := b.State(); got != "closed" {
		t.Errorf("State() = %q, want closed", got)
	}
}

func TestBreakerPassesThrough(t *testing.T) {
	t.Parallel()

	b := NewBreakerGenerator(staticGenerator("ok", nil), DefaultBreakerConfig())
	got, err := b.GenerateText(context.Background(), "p")
	if err != nil || got != "ok" {
		t.Errorf("GenerateText() = %q, %v", got, err)
	}
}

func TestBreakerFailureSurfacesAsSentinel(t *testing.T) {
	t.Parallel()

	b := NewBreakerGenerator(staticGenerator("", errors.New("down")), testBreakerConfig("test-sentinel"))
	g := New(b)
	for i := 0; i < 4; i++ {
		if m := g.FetchMetadata(context.Background(), "x"); m.Usable() {
			t.Fatalf("call %d: metadata should not be usable", i)
		}
	}
}
