package components

import (
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ColliderData ties a resolv object to the entity it belongs to. Offset is
// from the owner's centre to the object's centre in screen space.
type ColliderData struct {
	*resolv.Object
	Owner   donburi.Entity
	OffsetX float64
	OffsetY float64
	Layers  collision.Layers
}

// SetLayers updates the layers and mirrors them onto the resolv tags.
func (c *ColliderData) SetLayers(l collision.Layers) {
	c.Layers = l
	collision.Apply(c.Object, l)
}

// Rect returns the object's bounds.
func (c *ColliderData) Rect() collision.Rect {
	return collision.RectOf(c.Object)
}

// PlaceAt centres the object on (x, y) plus its offset.
func (c *ColliderData) PlaceAt(x, y float64) {
	c.X = x + c.OffsetX - c.W/2
	c.Y = y + c.OffsetY - c.H/2
	c.Update()
}

var Collider = donburi.NewComponentType[ColliderData]()

// Contact is a resolved touch between a collider and a surface. The normal
// points from the collider toward the surface, y up.
type Contact struct {
	Other   *resolv.Object
	NormalX float64
	NormalY float64
}

// ContactsData holds the contacts recorded for a collider during the last
// physics step.
type ContactsData struct {
	Items []Contact
}

func (c *ContactsData) Reset() {
	c.Items = c.Items[:0]
}

func (c *ContactsData) Add(other *resolv.Object, nx, ny float64) {
	c.Items = append(c.Items, Contact{Other: other, NormalX: nx, NormalY: ny})
}

var Contacts = donburi.NewComponentType[ContactsData]()
