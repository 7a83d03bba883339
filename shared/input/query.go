package input

import "time"

// Query filters a snapshot of a Buffer's history. Filters narrow the
// snapshot; Consume and ConsumeFirst clear the source history on success so a
// gesture can trigger at most one behavior.
type Query struct {
	frames []Frame
	source *Buffer
}

// Check reports whether any frame survived the filters.
func (q *Query) Check() bool {
	return len(q.frames) > 0
}

// Consume is Check, clearing the source history when it succeeds.
func (q *Query) Consume() bool {
	if !q.Check() {
		return false
	}
	q.source.Clear()
	return true
}

// Frames returns the surviving frames, oldest first.
func (q *Query) Frames() []Frame {
	return q.frames
}

// Within keeps frames no older than d relative to the source's clock.
func (q *Query) Within(d time.Duration) *Query {
	now := q.source.now
	q.frames = filterFrames(q.frames, func(f Frame) bool {
		return now-f.Instant <= d
	})
	return q
}

// Contains keeps frames matching in. A blocked input matches nothing.
func (q *Query) Contains(in Input) *Query {
	if q.source.Blocked(in) {
		q.frames = q.frames[:0]
		return q
	}
	q.frames = filterFrames(q.frames, in.Matches)
	return q
}

// ContainsAny keeps frames matching any unblocked input of ins.
func (q *Query) ContainsAny(ins ...Input) *Query {
	open := make([]Input, 0, len(ins))
	for _, in := range ins {
		if !q.source.Blocked(in) {
			open = append(open, in)
		}
	}
	q.frames = filterFrames(q.frames, func(f Frame) bool {
		for _, in := range open {
			if in.Matches(f) {
				return true
			}
		}
		return false
	})
	return q
}

// Sequence keeps every run of consecutive frames that matches ins in order.
// An empty sequence, or one containing a blocked input, matches nothing.
func (q *Query) Sequence(ins ...Input) *Query {
	if len(ins) == 0 {
		q.frames = q.frames[:0]
		return q
	}
	for _, in := range ins {
		if q.source.Blocked(in) {
			q.frames = q.frames[:0]
			return q
		}
	}

	n := len(ins)
	var result []Frame
	start := 0
	for end := 0; end < len(q.frames); end++ {
		if end-start+1 > n {
			start++
		}
		if end-start+1 < n {
			continue
		}
		if windowMatches(q.frames[start:end+1], ins) {
			result = append(result, q.frames[start:end+1]...)
			start = end + 1
		}
	}
	q.frames = result
	return q
}

func windowMatches(window []Frame, ins []Input) bool {
	for i, f := range window {
		if !ins[i].Matches(f) {
			return false
		}
	}
	return true
}

// First returns the earliest surviving frame.
func (q *Query) First() (Frame, bool) {
	if len(q.frames) == 0 {
		return Frame{}, false
	}
	return q.frames[0], true
}

// ConsumeFirst is First, clearing the source history when it succeeds.
func (q *Query) ConsumeFirst() (Frame, bool) {
	f, ok := q.First()
	if ok {
		q.source.Clear()
	}
	return f, ok
}

// And restarts from the full source history if the query has matched so far,
// so a second condition can be tested independently of the first.
func (q *Query) And() *Query {
	if q.Check() {
		q.frames = q.source.Frames()
	}
	return q
}

// Before restarts from the source frames strictly older than the earliest
// match. Used as "X happened before the matched input".
func (q *Query) Before() *Query {
	first, ok := q.First()
	if !ok {
		return q
	}
	q.frames = filterFrames(q.source.Frames(), func(f Frame) bool {
		return f.Instant < first.Instant
	})
	return q
}

// After restarts from the source frames at or after the latest match.
func (q *Query) After() *Query {
	if len(q.frames) == 0 {
		return q
	}
	last := q.frames[len(q.frames)-1]
	q.frames = filterFrames(q.source.Frames(), func(f Frame) bool {
		return f.Instant >= last.Instant
	})
	return q
}

func filterFrames(frames []Frame, keep func(Frame) bool) []Frame {
	out := frames[:0]
	for _, f := range frames {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
