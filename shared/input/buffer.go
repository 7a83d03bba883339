package input

import "time"

// DefaultCapacity is the history length used by NewBuffer.
const DefaultCapacity = 32

// Buffer holds a bounded history of meaningful input transitions, the frame
// for the current tick and the blocks asserted by behaviors.
type Buffer struct {
	frames   []Frame
	capacity int
	current  Frame
	now      time.Duration
	blocks   blockTable
}

func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		frames:   make([]Frame, 0, capacity),
		capacity: capacity,
		current:  NewFrame(),
	}
}

// Ingest turns this tick's raw state into a frame. The current frame is
// always refreshed; the frame is appended to the history only when a button
// changed state kind or the quantized direction changed. When the axis is
// unavailable the tick is skipped entirely and Ingest reports false.
func (b *Buffer) Ingest(now time.Duration, states [ActionCount]State, axis Vec, hasAxis bool) (appended, ok bool) {
	if !hasAxis {
		return false, false
	}
	b.now = now

	frame := Frame{
		Instant:   now,
		States:    states,
		Raw:       axis,
		Direction: DirectionFromRaw(axis),
	}

	changed := frame.Direction != b.current.Direction
	for i := range states {
		if states[i].Kind != b.current.States[i].Kind {
			changed = true
		}
	}

	b.current = frame
	if changed {
		b.add(frame)
	}
	return changed, true
}

func (b *Buffer) add(f Frame) {
	if len(b.frames) == b.capacity {
		copy(b.frames, b.frames[1:])
		b.frames = b.frames[:len(b.frames)-1]
	}
	b.frames = append(b.frames, f)
}

// Clear drops the history. The current frame and blocks are kept.
func (b *Buffer) Clear() {
	b.frames = b.frames[:0]
}

// Len is the number of frames in the history.
func (b *Buffer) Len() int { return len(b.frames) }

// Frames returns a copy of the history, oldest first.
func (b *Buffer) Frames() []Frame {
	out := make([]Frame, len(b.frames))
	copy(out, b.frames)
	return out
}

// Current is the frame ingested this tick.
func (b *Buffer) Current() Frame { return b.current }

// Now is the instant of the last successful ingest.
func (b *Buffer) Now() time.Duration { return b.now }

// Is reports whether the current frame matches in and in is not blocked.
func (b *Buffer) Is(in Input) bool {
	return in.Matches(b.current) && !b.Blocked(in)
}

// Any reports whether Is holds for at least one of ins.
func (b *Buffer) Any(ins ...Input) bool {
	for _, in := range ins {
		if b.Is(in) {
			return true
		}
	}
	return false
}

// Query starts a query over a snapshot of the history.
func (b *Buffer) Query() *Query {
	return &Query{frames: b.Frames(), source: b}
}

// Block adds set to owner's token.
func (b *Buffer) Block(owner Owner, set Blockable) {
	b.blocks.block(owner, set.Blocker())
}

// BlockAll blocks every input on behalf of owner.
func (b *Buffer) BlockAll(owner Owner) {
	b.blocks.block(owner, BlockAll)
}

// Release lifts owner's blocks. Blocks held by other owners remain.
func (b *Buffer) Release(owner Owner) {
	b.blocks.release(owner)
}

// ReleaseAll lifts every block from every owner.
func (b *Buffer) ReleaseAll() {
	b.blocks.releaseAll()
}

// Blocked reports whether any bit of x is blocked by any owner.
func (b *Buffer) Blocked(x Blockable) bool {
	return b.blocks.mask.Intersects(x)
}

// Holds reports whether owner currently holds any block.
func (b *Buffer) Holds(owner Owner) bool {
	return b.blocks.tokens[owner] != BlockNone
}

// Mask is the union of all owners' blocks.
func (b *Buffer) Mask() Blocker { return b.blocks.mask }
