package collision

import "github.com/solarlune/resolv"

// Rect is an axis-aligned rectangle in screen space (y down), X/Y being the
// top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Centered builds a rect of size w x h centred on (cx, cy).
func Centered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// RectOf returns obj's bounds.
func RectOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports a strictly positive-area intersection. Touching edges do
// not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Filter selects query targets. A target must be a member of at least one
// group in Mask and of every group in Require.
type Filter struct {
	Mask    Group
	Require Group
	Exclude []*resolv.Object
}

// FilterOf selects members of any group in mask.
func FilterOf(mask Group) Filter {
	return Filter{Mask: mask}
}

func (f Filter) accepts(obj *resolv.Object) bool {
	for _, ex := range f.Exclude {
		if ex == obj {
			return false
		}
	}
	g := MembershipOf(obj)
	return g&f.Mask != 0 && g&f.Require == f.Require
}

// broadphaseMargin inflates the cell lookup so objects within a pixel of a
// cell boundary are still candidates; the exact test happens afterwards.
const broadphaseMargin = 2.0

// Overlapping returns every object in space whose bounds overlap r and that
// passes f. The space's cell grid narrows candidates by tag first.
func Overlapping(space *resolv.Space, r Rect, f Filter) []*resolv.Object {
	if space == nil || f.Mask == None || r.W <= 0 || r.H <= 0 {
		return nil
	}
	var hits []*resolv.Object
	for _, obj := range candidates(space, r, f.Mask) {
		if f.accepts(obj) && r.Overlaps(RectOf(obj)) {
			hits = append(hits, obj)
		}
	}
	return hits
}

// Sweep returns the objects in obj's space that obj would overlap after
// moving by (dx, dy) and that are members of filters.
func Sweep(obj *resolv.Object, dx, dy float64, filters Group) []*resolv.Object {
	if obj.Space == nil || filters == None {
		return nil
	}
	moved := RectOf(obj)
	moved.X += dx
	moved.Y += dy
	return Overlapping(obj.Space, moved, Filter{Mask: filters, Exclude: []*resolv.Object{obj}})
}

func candidates(space *resolv.Space, r Rect, mask Group) []*resolv.Object {
	m := broadphaseMargin
	probe := resolv.NewObject(r.X-m, r.Y-m, r.W+2*m, r.H+2*m)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, mask.Tags()...)
	if check == nil {
		return nil
	}
	return check.Objects
}
