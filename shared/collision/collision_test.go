package collision

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObject(space *resolv.Space, r Rect, l Layers) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	Apply(obj, l)
	space.Add(obj)
	return obj
}

func TestLayerPresets(t *testing.T) {
	assert.True(t, ColliderLayers().Interacts(EnvironmentLayers()))
	assert.False(t, ColliderLayers().Interacts(ColliderLayers()))
	assert.False(t, Inactive().Interacts(EnvironmentLayers()))
	assert.False(t, Inactive().Active())

	hit := HitboxLayers()
	hurt := HurtboxLayers(Enemy)
	assert.True(t, hit.Detects(hurt))
	assert.False(t, hurt.Detects(hit), "hurtboxes do not look for hitboxes")
	assert.False(t, hit.Interacts(hurt), "hit detection is not a solid channel")
}

func TestApplyRewritesGroupTagsOnly(t *testing.T) {
	obj := resolv.NewObject(0, 0, 10, 10, "Player")
	Apply(obj, ColliderLayers())
	assert.Equal(t, Collider, MembershipOf(obj))

	Apply(obj, Inactive())
	assert.Equal(t, None, MembershipOf(obj))
	assert.True(t, obj.HasTags("Player"))

	Apply(obj, HurtboxLayers(Player))
	assert.Equal(t, Hurtbox|Player, MembershipOf(obj))
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 9, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges")
	c := Centered(50, 50, 20, 10)
	assert.Equal(t, Rect{X: 40, Y: 45, W: 20, H: 10}, c)
}

func TestOverlappingFiltersByGroup(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	wall := newObject(space, Rect{X: 100, Y: 100, W: 50, H: 50}, EnvironmentLayers())
	enemy := newObject(space, Rect{X: 120, Y: 100, W: 20, H: 40}, HurtboxLayers(Enemy))
	self := newObject(space, Rect{X: 110, Y: 100, W: 20, H: 40}, HurtboxLayers(Player))

	probe := Rect{X: 105, Y: 105, W: 40, H: 20}

	hits := Overlapping(space, probe, FilterOf(Environment))
	require.Len(t, hits, 1)
	assert.Same(t, wall, hits[0])

	hits = Overlapping(space, probe, Filter{Mask: Hurtbox, Require: Enemy})
	require.Len(t, hits, 1)
	assert.Same(t, enemy, hits[0])

	hits = Overlapping(space, probe, Filter{Mask: Hurtbox, Exclude: []*resolv.Object{self}})
	require.Len(t, hits, 1)
	assert.Same(t, enemy, hits[0])

	assert.Empty(t, Overlapping(space, Rect{X: 300, Y: 300, W: 10, H: 10}, FilterOf(Environment|Hurtbox)))
	assert.Empty(t, Overlapping(space, probe, FilterOf(None)))
	assert.Len(t, space.Objects(), 3, "probes are removed from the space")
}

func TestInactiveObjectsAreInvisible(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	body := newObject(space, Rect{X: 0, Y: 0, W: 50, H: 100}, ColliderLayers())
	assert.Len(t, Overlapping(space, Rect{X: 10, Y: 10, W: 5, H: 5}, FilterOf(Collider)), 1)

	Apply(body, Inactive())
	assert.Empty(t, Overlapping(space, Rect{X: 10, Y: 10, W: 5, H: 5}, FilterOf(Collider)))
}

func TestSweepNearCellBoundary(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	ground := newObject(space, Rect{X: 0, Y: 64, W: 640, H: 32}, EnvironmentLayers())
	body := newObject(space, Rect{X: 100, Y: 14, W: 20, H: 50}, ColliderLayers())

	hits := Sweep(body, 0, 0.25, Environment)
	require.Len(t, hits, 1)
	assert.Same(t, ground, hits[0])

	assert.Empty(t, Sweep(body, 0, 0, Environment), "resting contact is not an overlap")
	assert.Empty(t, Sweep(body, 0, -5, Environment))
}
