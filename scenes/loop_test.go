package scenes

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/metroidvania/shared/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopStopsOnStop(t *testing.T) {
	w, err := LoadWorld("sandbox", 60)
	require.NoError(t, err)

	loop := NewLoop(w, 120)
	ticks := make(chan struct{}, 1)
	loop.BeforeTick = func(w *World) {
		w.SetInput([input.ActionCount]bool{}, input.Vec{})
	}
	loop.OnTick = func(*World) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("loop never ticked")
	}

	loop.Stop()
	assert.NotPanics(t, loop.Stop)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	w, err := LoadWorld("sandbox", 60)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewLoop(w, 60).Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop ignored cancellation")
	}
}
