// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingService struct {
	started atomic.Int32
	name    string
}

func (s *countingService) Serve(ctx context.Context) error {
	s.started.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func (s *countingService) String() string { return s.name }

func TestNewSupervisorTreeDefaults(t *testing.T) {
	t.Parallel()

	tree := NewSupervisorTree(quietLogger(), TreeConfig{})
	if tree.config != DefaultTreeConfig() {
		t.Errorf("config = %+v, want defaults", tree.config)
	}
}

func TestSupervisorTreeRunsServices(t *testing.T) {
	t.Parallel()

	tree := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	bg := &countingService{name: "bg"}
	api := &countingService{name: "api"}
	tree.AddBackgroundService(bg)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for bg.started.Load() == 0 || api.started.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("services did not start")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree stopped with %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop")
	}
}
