// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*Cache[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[string]("test", ttl)
	c.now = clock.Now
	return c, clock
}

func TestGetSet(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache should miss")
	}

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Errorf("Get() = %q, %v; want v, true", got, ok)
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.TotalKeys != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if c.HitRate() != 50 {
		t.Errorf("HitRate() = %v, want 50", c.HitRate())
	}
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(time.Minute)
	c.Set("k", "v")

	clock.Advance(59 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired early")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should have expired")
	}
	if c.GetStats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.GetStats().Evictions)
	}
}

func TestCleanupSweepsExpired(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(time.Minute)
	c.Set("a", "1")
	clock.Advance(30 * time.Second)
	c.Set("b", "2")
	clock.Advance(45 * time.Second)

	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 || stats.Evictions != 1 {
		t.Errorf("stats after cleanup = %+v", stats)
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("unexpired entry was swept")
	}
}

func TestDisabledCache(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(0)
	if c.Enabled() {
		t.Fatal("zero TTL cache reports enabled")
	}
	c.Set("k", "v")
	if _, ok := c.Get("k"); ok {
		t.Error("disabled cache returned a value")
	}
}

func TestDeleteAndClear(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted key still present")
	}

	c.Clear()
	if c.GetStats().TotalKeys != 0 {
		t.Errorf("TotalKeys = %d after Clear", c.GetStats().TotalKeys)
	}
	if c.GetStats().Evictions != 3 {
		t.Errorf("Evictions = %d, want 3", c.GetStats().Evictions)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	k1 := GenerateKey("metadata", "進撃の巨人")
	k2 := GenerateKey("metadata", "進撃の巨人")
	k3 := GenerateKey("metadata", "別の作品")

	if k1 != k2 {
		t.Error("same input produced different keys")
	}
	if k1 == k3 {
		t.Error("different input produced the same key")
	}
	if len(k1) != len("metadata:")+32 {
		t.Errorf("unexpected key length %d", len(k1))
	}
}
