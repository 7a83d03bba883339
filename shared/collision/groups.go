// Package collision defines the collision filter groups shared by every
// collider and sensor, and the shape overlap query behaviors use for probes.
//
// Group membership is mirrored onto resolv object tags so the space's cell
// lookup can pre-filter candidates by tag.
package collision

import (
	"strings"

	"github.com/solarlune/resolv"
)

// Group is a bitmask of collision layers.
type Group uint32

const (
	Hitbox Group = 1 << iota
	Hurtbox
	Environment
	Collider
	Player
	Enemy

	groupCount = iota
)

// None is the empty group. A collider with no memberships is inactive.
const None Group = 0

var groupTags = [groupCount]string{
	"hitbox", "hurtbox", "environment", "collider", "player", "enemy",
}

// Tags returns the resolv tags for every bit set in g.
func (g Group) Tags() []string {
	tags := make([]string, 0, groupCount)
	for i, tag := range groupTags {
		if g&(1<<i) != 0 {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (g Group) String() string {
	if g == None {
		return "none"
	}
	return strings.Join(g.Tags(), "|")
}

// Layers pairs what a collider is (memberships) with what it reacts to
// (filters).
type Layers struct {
	Memberships Group
	Filters     Group
}

// Inactive takes a collider out of every channel.
func Inactive() Layers {
	return Layers{}
}

// EnvironmentLayers is level geometry: solid to colliders.
func EnvironmentLayers() Layers {
	return Layers{Memberships: Environment, Filters: Collider}
}

// ColliderLayers is a character's solid body: blocked by environment.
func ColliderLayers() Layers {
	return Layers{Memberships: Collider, Filters: Environment}
}

// HurtboxLayers is a sensor that can be hit. owner is Player or Enemy.
// Hurtboxes react to nothing themselves; hit detection is one-way.
func HurtboxLayers(owner Group) Layers {
	return Layers{Memberships: Hurtbox | owner}
}

// HitboxLayers is an attack sensor looking for hurtboxes.
func HitboxLayers() Layers {
	return Layers{Memberships: Hitbox, Filters: Hurtbox}
}

// Active reports whether the layers take part in any channel.
func (l Layers) Active() bool {
	return l.Memberships != None
}

// Interacts reports whether l and other see each other both ways.
func (l Layers) Interacts(other Layers) bool {
	return l.Memberships&other.Filters != 0 && other.Memberships&l.Filters != 0
}

// Detects reports whether l's filters accept other's memberships. Sensors
// use this one-way test.
func (l Layers) Detects(other Layers) bool {
	return l.Filters&other.Memberships != 0
}

// Apply rewrites obj's group tags to match l. Non-group tags are kept.
func Apply(obj *resolv.Object, l Layers) {
	obj.RemoveTags(groupTags[:]...)
	if tags := l.Memberships.Tags(); len(tags) > 0 {
		obj.AddTags(tags...)
	}
}

// MembershipOf reads the group bits back from obj's tags.
func MembershipOf(obj *resolv.Object) Group {
	var g Group
	for i, tag := range groupTags {
		if obj.HasTags(tag) {
			g |= 1 << i
		}
	}
	return g
}
