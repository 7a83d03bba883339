package systems

import (
	"math"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/solarlune/resolv"
)

// groundProbe extends downward sweeps by a pixel so a body resting on a
// surface keeps reporting it as a contact.
const groundProbe = 1.0

// overlapSlop absorbs float error left by snapping flush to an edge.
const overlapSlop = 0.01

// resolveHorizontal moves c by dx and stops it flush against the nearest
// surface ahead. It reports whether movement was stopped.
func resolveHorizontal(c *components.ColliderData, contacts *components.ContactsData, dx float64) bool {
	if dx == 0 {
		return false
	}
	hits := ahead(c.Object, collision.Sweep(c.Object, dx, 0, c.Layers.Filters), dx, 0)
	if len(hits) == 0 {
		c.X += dx
		return false
	}

	nx := 1.0
	if dx > 0 {
		edge := math.Inf(1)
		for _, h := range hits {
			edge = math.Min(edge, h.X)
		}
		c.X = edge - c.W
	} else {
		nx = -1
		edge := math.Inf(-1)
		for _, h := range hits {
			edge = math.Max(edge, h.X+h.W)
		}
		c.X = edge
	}
	for _, h := range hits {
		contacts.Add(h, nx, 0)
	}
	return true
}

// resolveVertical moves c by dy (screen space, positive is down) and lands
// it on, or bumps it under, the nearest surface. Normals are recorded y up,
// so landing gives a normal pointing down.
func resolveVertical(c *components.ColliderData, contacts *components.ContactsData, dy float64) bool {
	check := dy
	if dy >= 0 {
		check += groundProbe
	}
	hits := ahead(c.Object, collision.Sweep(c.Object, 0, check, c.Layers.Filters), 0, check)
	if len(hits) == 0 {
		c.Y += dy
		return false
	}

	ny := -1.0
	if check > 0 {
		edge := math.Inf(1)
		for _, h := range hits {
			edge = math.Min(edge, h.Y)
		}
		c.Y = edge - c.H
	} else {
		ny = 1
		edge := math.Inf(-1)
		for _, h := range hits {
			edge = math.Max(edge, h.Y+h.H)
		}
		c.Y = edge
	}
	for _, h := range hits {
		contacts.Add(h, 0, ny)
	}
	return true
}

// ahead drops hits the object already overlapped before moving, so a body
// pushed into geometry can still move out of it.
func ahead(obj *resolv.Object, hits []*resolv.Object, dx, dy float64) []*resolv.Object {
	if len(hits) == 0 {
		return nil
	}
	from := collision.RectOf(obj)
	kept := hits[:0]
	for _, h := range hits {
		r := collision.RectOf(h)
		switch {
		case dx > 0 && r.X < from.Right()-overlapSlop:
		case dx < 0 && r.Right() > from.X+overlapSlop:
		case dy > 0 && r.Y < from.Bottom()-overlapSlop:
		case dy < 0 && r.Bottom() > from.Y+overlapSlop:
		default:
			kept = append(kept, h)
		}
	}
	return kept
}
