package scenes

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/yohamta/donburi"
	"gopkg.in/yaml.v3"
)

// Script is a timed input recording. Each step's input is held until the
// next step starts.
type Script struct {
	Level    string        `yaml:"level"`
	TPS      int           `yaml:"tps"`
	Duration time.Duration `yaml:"duration"`
	Steps    []ScriptStep  `yaml:"steps"`
}

// ScriptStep is the input held from At onwards. Buttons name actions:
// jump, primary, secondary, special.
type ScriptStep struct {
	At      time.Duration `yaml:"at"`
	Axis    [2]float64    `yaml:"axis"`
	Buttons []string      `yaml:"buttons"`
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing replay script: %w", err)
	}
	if s.Level == "" {
		s.Level = "sandbox"
	}
	if s.TPS <= 0 {
		s.TPS = 60
	}
	if s.Duration <= 0 {
		return nil, fmt.Errorf("replay script: duration must be positive")
	}
	for i, step := range s.Steps {
		for _, b := range step.Buttons {
			if _, ok := actionByName(b); !ok {
				return nil, fmt.Errorf("replay script: step %d: unknown button %q", i, b)
			}
		}
	}
	sort.SliceStable(s.Steps, func(i, j int) bool { return s.Steps[i].At < s.Steps[j].At })
	return &s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replay script: %w", err)
	}
	return ParseScript(data)
}

// InputAt returns the input held at t. Before the first step nothing is
// pressed and the stick is centred.
func (s *Script) InputAt(t time.Duration) ([input.ActionCount]bool, input.Vec) {
	var buttons [input.ActionCount]bool
	var axis input.Vec
	for _, step := range s.Steps {
		if step.At > t {
			break
		}
		buttons = [input.ActionCount]bool{}
		for _, b := range step.Buttons {
			a, _ := actionByName(b)
			buttons[a] = true
		}
		axis = input.Vec{X: step.Axis[0], Y: step.Axis[1]}
	}
	return buttons, axis
}

func actionByName(name string) (input.Action, bool) {
	for a := input.Action(0); a < input.ActionCount; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// TracePoint is the player's state after one tick.
type TracePoint struct {
	At        time.Duration
	X, Y      float64
	Grounded  bool
	Crouched  bool
	Attacking bool
}

// Trace is what a replay produced.
type Trace struct {
	Points []TracePoint
	Probes []components.ProbeRecord
	// Hits per dummy name at the end of the run.
	Hits map[string]int
}

// Record appends the world's current state to the trace.
func (tr *Trace) Record(w *World) {
	p := w.Player
	t := components.Transform.Get(p)
	tr.Points = append(tr.Points, TracePoint{
		At:        w.Now(),
		X:         t.X,
		Y:         t.Y,
		Grounded:  components.Grounded.Get(p).OnGround,
		Crouched:  components.Crouch.Get(p).Crouching(),
		Attacking: components.Slash.Get(p).Stage() == components.AttackActive ||
			components.Kick.Get(p).Stage() == components.KickActive ||
			components.Slide.Get(p).Stage() == components.SlideAccelerate,
	})
	for _, probe := range components.DebugProbes.Get(w.Clock).Probes {
		if probe.Hit {
			tr.Probes = append(tr.Probes, probe)
		}
	}
}

// CollectHits records every dummy's hit count.
func (tr *Trace) CollectHits(w *World) {
	tr.Hits = map[string]int{}
	components.Dummy.Each(w.ECS.World, func(e *donburi.Entry) {
		d := components.Dummy.Get(e)
		tr.Hits[d.Name] = d.Hits
	})
}

// Replay runs script on w at a fixed step, as fast as possible.
func Replay(w *World, script *Script) *Trace {
	w.SetTickRate(script.TPS)
	tr := &Trace{}
	for w.Now() < script.Duration {
		buttons, axis := script.InputAt(w.Now())
		w.SetInput(buttons, axis)
		w.Step()
		tr.Record(w)
	}
	tr.CollectHits(w)
	return tr
}
