// Command replay runs a scripted input sequence through the sandbox without a
// window and draws the player's path as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/scenes"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/fogleman/gg"
	"github.com/solarlune/resolv"
)

func main() {
	scriptPath := flag.String("script", "scripts/kick_combo.yaml", "replay script")
	out := flag.String("out", "replay.png", "trace image path")
	tuning := flag.String("tuning", config.TuningFile, "behavior tuning file")
	realtime := flag.Bool("realtime", false, "pace ticks on a wall clock instead of stepping as fast as possible")
	flag.Parse()

	behaviors, err := config.LoadTuning(*tuning)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	config.SetBehaviors(behaviors)

	script, err := scenes.LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	world, err := scenes.LoadWorld(script.Level, script.TPS)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	var trace *scenes.Trace
	if *realtime {
		trace = runRealtime(world, script)
	} else {
		trace = scenes.Replay(world, script)
	}

	if err := drawTrace(world, trace, script.TPS, *out); err != nil {
		log.Fatalf("Failed to draw trace: %v", err)
	}
	report(trace)
	log.Printf("Wrote %d ticks to %s", len(trace.Points), *out)
}

// runRealtime drives the world from a ticking loop until the script ends or
// the process is interrupted.
func runRealtime(world *scenes.World, script *scenes.Script) *scenes.Trace {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	trace := &scenes.Trace{}
	loop := scenes.NewLoop(world, script.TPS)
	loop.BeforeTick = func(w *scenes.World) {
		buttons, axis := script.InputAt(w.Now())
		w.SetInput(buttons, axis)
	}
	loop.OnTick = func(w *scenes.World) {
		trace.Record(w)
		if w.Now() >= script.Duration {
			cancel()
		}
	}
	loop.Run(ctx)
	trace.CollectHits(world)
	return trace
}

func drawTrace(world *scenes.World, trace *scenes.Trace, tps int, path string) error {
	w, h := world.Level.MapWidth, world.Level.MapHeight
	dc := gg.NewContext(w, h)
	dc.SetRGB255(20, 22, 30)
	dc.Clear()

	for _, obj := range spaceOf(world).Objects() {
		r := collision.RectOf(obj)
		groups := collision.MembershipOf(obj)
		switch {
		case groups&collision.Environment != 0:
			dc.SetRGB255(90, 90, 110)
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			dc.Fill()
		case groups&collision.Hurtbox != 0:
			dc.SetRGB255(220, 80, 80)
			dc.SetLineWidth(1)
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			dc.Stroke()
		}
	}

	dc.SetRGBA255(255, 200, 60, 90)
	for _, p := range trace.Probes {
		dc.DrawRectangle(p.X-p.W/2, p.Y-p.H/2, p.W, p.H)
		dc.Fill()
	}

	for _, p := range trace.Points {
		switch {
		case p.Attacking:
			dc.SetRGB255(255, 120, 40)
		case p.Crouched:
			dc.SetRGB255(160, 90, 220)
		case p.Grounded:
			dc.SetRGB255(80, 200, 120)
		default:
			dc.SetRGB255(80, 160, 240)
		}
		dc.DrawCircle(p.X, p.Y, 2)
		dc.Fill()
	}

	dc.SetRGB255(230, 230, 230)
	dc.DrawString(fmt.Sprintf("%s  %d ticks @ %d tps", world.Level.Name, len(trace.Points), tps), 8, 16)
	return dc.SavePNG(path)
}

func spaceOf(world *scenes.World) *resolv.Space {
	entry, ok := components.Space.First(world.ECS.World)
	if !ok {
		log.Fatal("World has no collision space")
	}
	return components.Space.Get(entry)
}

func report(trace *scenes.Trace) {
	names := make([]string, 0, len(trace.Hits))
	for name := range trace.Hits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Printf("%s: %d hits", name, trace.Hits[name])
	}
}
