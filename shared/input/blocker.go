// Package input models the player's logical input: per-tick frames, a short
// rolling history, an input blocking policy and a small query language used by
// behaviors to detect move triggers.
package input

import "strings"

// Blocker is a bitset over the blockable input space: the four buttons plus
// the eight quantized directions.
type Blocker uint16

const (
	BlockJump Blocker = 1 << iota
	BlockPrimary
	BlockSecondary
	BlockSpecial
	BlockUp
	BlockUpRight
	BlockRight
	BlockDownRight
	BlockDown
	BlockDownLeft
	BlockLeft
	BlockUpLeft
)

const (
	BlockNone Blocker = 0
	BlockAll  Blocker = 0xFFFF
)

// Blockable is anything that maps onto a set of blocker bits.
type Blockable interface {
	Blocker() Blocker
}

// Directions returns every directional bit.
func Directions() Blocker {
	return BlockUp | BlockUpRight | BlockRight | BlockDownRight |
		BlockDown | BlockDownLeft | BlockLeft | BlockUpLeft
}

// NonDirectional returns every button bit.
func NonDirectional() Blocker {
	return BlockJump | BlockPrimary | BlockSecondary | BlockSpecial
}

func (b Blocker) Blocker() Blocker { return b }

func (b Blocker) Or(other Blocker) Blocker  { return b | other }
func (b Blocker) And(other Blocker) Blocker { return b & other }
func (b Blocker) Not() Blocker              { return ^b }

// Intersects reports whether any bit is shared with other.
func (b Blocker) Intersects(other Blockable) bool {
	return b&other.Blocker() != 0
}

func (b Blocker) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockAll:
		return "all"
	}
	names := []string{
		"jump", "primary", "secondary", "special",
		"up", "up_right", "right", "down_right",
		"down", "down_left", "left", "up_left",
	}
	var parts []string
	for i, name := range names {
		if b&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Owner identifies who asserted a block. Each owner holds its own token so
// releasing one owner's blocks never lifts another's.
type Owner uint8

// MaxOwners bounds the owner table.
const MaxOwners = 16

// blockTable keeps one token per owner and caches their union.
type blockTable struct {
	tokens [MaxOwners]Blocker
	mask   Blocker
}

func (t *blockTable) recompute() {
	t.mask = BlockNone
	for _, tok := range t.tokens {
		t.mask |= tok
	}
}

func (t *blockTable) block(owner Owner, set Blocker) {
	t.tokens[owner] |= set
	t.mask |= set
}

func (t *blockTable) release(owner Owner) {
	if t.tokens[owner] == BlockNone {
		return
	}
	t.tokens[owner] = BlockNone
	t.recompute()
}

func (t *blockTable) releaseAll() {
	t.tokens = [MaxOwners]Blocker{}
	t.mask = BlockNone
}
