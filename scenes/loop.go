package scenes

import (
	"context"
	"log"
	"sync"
	"time"
)

// Loop drives a World in real time from a ticker, outside of ebiten.
type Loop struct {
	world    *World
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
	// BeforeTick runs ahead of every step; it is where callers feed input.
	BeforeTick func(w *World)
	// OnTick runs after every step.
	OnTick func(w *World)
}

func NewLoop(world *World, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	world.SetTickRate(tickRate)
	return &Loop{
		world:    world,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Loop stopped")
			return
		case <-l.stopChan:
			log.Println("Loop stopped")
			return
		case <-ticker.C:
			if l.BeforeTick != nil {
				l.BeforeTick(l.world)
			}
			l.world.Step()
			if l.OnTick != nil {
				l.OnTick(l.world)
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
