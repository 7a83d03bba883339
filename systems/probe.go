package systems

import (
	"time"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// probe runs a shape query against the world's space and records it for the
// debug overlay.
func probe(w donburi.World, label string, r collision.Rect, f collision.Filter) []*resolv.Object {
	entry, ok := components.Space.First(w)
	if !ok {
		skip(label, reasonNoSpace)
		return nil
	}
	hits := collision.Overlapping(components.Space.Get(entry), r, f)
	recordProbe(w, label, r, len(hits) > 0)
	return hits
}

// sensorHits tests a spawned sensor against f at its current position.
func sensorHits(w donburi.World, label string, sensor donburi.Entity, f collision.Filter) []*resolv.Object {
	if !w.Valid(sensor) {
		skip(label, reasonStale)
		return nil
	}
	entry := w.Entry(sensor)
	c := components.Collider.Get(entry)
	f.Exclude = append(f.Exclude, c.Object)
	return probe(w, label, c.Rect(), f)
}

func recordProbe(w donburi.World, label string, r collision.Rect, hit bool) {
	entry, ok := components.DebugProbes.First(w)
	if !ok {
		return
	}
	components.DebugProbes.Get(entry).Record(components.ProbeRecord{
		X: r.X, Y: r.Y, W: r.W, H: r.H, Hit: hit, Label: label,
	})
}

// enemyHurtboxes selects hurtboxes belonging to enemies.
func enemyHurtboxes() collision.Filter {
	return collision.Filter{Mask: collision.Hurtbox, Require: collision.Enemy}
}

// ownerOf returns the entity a collision object belongs to. Sensors and
// colliders resolve to their owner, anything else to itself.
func ownerOf(w donburi.World, obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil, false
	}
	if entry.HasComponent(components.Collider) {
		owner := components.Collider.Get(entry).Owner
		if owner != donburi.Null && w.Valid(owner) {
			return w.Entry(owner), true
		}
	}
	return entry, true
}

// registerHit credits the target behind obj with a hit from behavior.
func registerHit(w donburi.World, behavior string, obj *resolv.Object, now time.Duration) {
	recordHit(behavior)
	target, ok := ownerOf(w, obj)
	if !ok || !target.HasComponent(components.Dummy) {
		return
	}
	d := components.Dummy.Get(target)
	d.Hits++
	d.LastHit = now
}
