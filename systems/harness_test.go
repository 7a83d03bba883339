package systems

import (
	"testing"
	"time"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/automoto/metroidvania/systems/factory"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	floorY      = 600.0
	levelWidth  = 2000
	levelHeight = 800
)

// harness is a flat test level with the full simulation registered. Input
// set on it is fed to the raw input singleton before every tick.
type harness struct {
	t       *testing.T
	ecs     *ecs.ECS
	clock   *donburi.Entry
	player  *donburi.Entry
	buttons [input.ActionCount]bool
	axis    input.Vec
}

func newHarness(t *testing.T, playerX, playerFeetY float64, dummies ...leveldata.EnemySpawn) *harness {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	RegisterSimulation(e)

	factory.CreateSpace(e, levelWidth, levelHeight, 16, 16)
	clock := factory.CreateClock(e, 60)
	factory.CreateLevel(e, &leveldata.Level{
		Name:      "harness",
		MapWidth:  levelWidth,
		MapHeight: levelHeight,
		Solids:    []leveldata.Rect{{X: 0, Y: floorY, W: levelWidth, H: levelHeight - floorY}},
		Enemies:   dummies,
	})
	player := factory.CreatePlayer(e, playerX, playerFeetY)

	return &harness{t: t, ecs: e, clock: clock, player: player}
}

// newGroundedHarness stands the player on the floor and lets ground
// detection see it.
func newGroundedHarness(t *testing.T, playerX float64, dummies ...leveldata.EnemySpawn) *harness {
	t.Helper()
	h := newHarness(t, playerX, floorY, dummies...)
	h.run(2)
	if !h.grounded() {
		t.Fatal("player did not settle on the floor")
	}
	return h
}

func dummyAt(name string, x float64) leveldata.EnemySpawn {
	return leveldata.EnemySpawn{Name: name, X: x, Y: floorY, W: 40, H: 80}
}

func (h *harness) press(actions ...input.Action) {
	for _, a := range actions {
		h.buttons[a] = true
	}
}

func (h *harness) release(actions ...input.Action) {
	for _, a := range actions {
		h.buttons[a] = false
	}
}

func (h *harness) hold(x, y float64) {
	h.axis = input.Vec{X: x, Y: y}
}

func (h *harness) neutral() {
	h.buttons = [input.ActionCount]bool{}
	h.axis = input.Vec{}
}

func (h *harness) step() {
	raw := components.RawInput.Get(h.clock)
	raw.Buttons = h.buttons
	raw.Axis = h.axis
	raw.HasAxis = true
	h.ecs.Update()
}

func (h *harness) run(ticks int) {
	for i := 0; i < ticks; i++ {
		h.step()
	}
}

// tap presses actions for exactly one tick.
func (h *harness) tap(actions ...input.Action) {
	h.press(actions...)
	h.step()
	h.release(actions...)
}

// runUntil steps until cond holds, giving up after limit ticks.
func (h *harness) runUntil(limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		h.step()
		if cond() {
			return true
		}
	}
	return false
}

func (h *harness) ticksFor(d time.Duration) int {
	step := components.Clock.Get(h.clock).Step
	return int((d + step - 1) / step)
}

func (h *harness) vel() *components.VelocityData {
	return components.Velocity.Get(h.player)
}

func (h *harness) transform() *components.TransformData {
	return components.Transform.Get(h.player)
}

func (h *harness) buffer() *input.Buffer {
	return components.InputBuffer.Get(h.player).Buffer
}

func (h *harness) grounded() bool {
	return components.Grounded.Get(h.player).OnGround
}

func (h *harness) feet() float64 {
	return h.transform().Y + components.Body.Get(h.player).Height/2
}

func (h *harness) collider(e donburi.Entity) *components.ColliderData {
	h.t.Helper()
	if !h.ecs.World.Valid(e) {
		h.t.Fatalf("collider %v is not alive", e)
	}
	return components.Collider.Get(h.ecs.World.Entry(e))
}

func (h *harness) bodyCollider() *components.ColliderData {
	return h.collider(components.Body.Get(h.player).Collider)
}

func (h *harness) dummy(name string) *components.DummyData {
	h.t.Helper()
	var found *components.DummyData
	components.Dummy.Each(h.ecs.World, func(e *donburi.Entry) {
		if d := components.Dummy.Get(e); d.Name == name {
			found = d
		}
	})
	if found == nil {
		h.t.Fatalf("no dummy named %q", name)
	}
	return found
}

func (h *harness) projectiles() int {
	n := 0
	tags.Projectile.Each(h.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

// spendAirJump leaves the player airborne-ready with the air-jump used.
func (h *harness) spendAirJump() {
	jump := components.Jump.Get(h.player)
	jump.Trigger(false)
	jump.SetStage(components.JumpDormant)
}
