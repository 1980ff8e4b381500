// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

func TestJanitorService_Interface(t *testing.T) {
	var _ suture.Service = (*JanitorService)(nil)
}

func TestNewJanitorService_DefaultInterval(t *testing.T) {
	j := NewJanitorService("session-janitor", 0, func(context.Context) (int, error) { return 0, nil })
	if j.interval != DefaultJanitorInterval {
		t.Errorf("interval = %v, want %v", j.interval, DefaultJanitorInterval)
	}
	if j.String() != "session-janitor" {
		t.Errorf("String() = %q", j.String())
	}
}

func TestJanitorService_RunsPeriodically(t *testing.T) {
	var calls atomic.Int32
	j := NewJanitorService("cache-janitor", 10*time.Millisecond, func(ctx context.Context) (int, error) {
		n := calls.Add(1)
		if n == 2 {
			return 0, errors.New("transient")
		}
		return int(n), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := j.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if calls.Load() < 3 {
		t.Errorf("cleanup ran %d times, want at least 3 (errors must not stop the loop)", calls.Load())
	}
}

func TestJanitorService_StopsOnCancel(t *testing.T) {
	j := NewJanitorService("idle", time.Hour, func(context.Context) (int, error) {
		t.Error("cleanup should not run before the first tick")
		return 0, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
