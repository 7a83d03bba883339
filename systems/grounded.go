package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrounded recomputes Grounded from the contacts physics recorded last
// tick. A contact whose normal points down (toward the surface under the
// body) is ground. While crouching the stashed standing collider counts too.
func UpdateGrounded(ecs *ecs.ECS) {
	components.Grounded.Each(ecs.World, func(e *donburi.Entry) {
		g := components.Grounded.Get(e)
		g.OnGround = false
		g.Surface = nil

		if !e.HasComponent(components.Body) {
			return
		}
		colliders := []donburi.Entity{components.Body.Get(e).Collider}
		if e.HasComponent(components.Crouch) {
			if stored, ok := components.Crouch.Get(e).StoredCollider(); ok {
				colliders = append(colliders, stored)
			}
		}

		for _, c := range colliders {
			if c == donburi.Null || !ecs.World.Valid(c) {
				skip("grounded", reasonStale)
				continue
			}
			ce := ecs.World.Entry(c)
			if !ce.HasComponent(components.Contacts) {
				continue
			}
			for _, contact := range components.Contacts.Get(ce).Items {
				if contact.NormalY < 0 {
					g.OnGround = true
					g.Surface = contact.Other
					return
				}
			}
		}
	})
}
