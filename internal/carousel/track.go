package carousel

// Direction selects which way a slide moves the track.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// DefaultCopies is how many times the item list is repeated in the buffer.
const DefaultCopies = 6

// Step is how many buffer slots one slide moves, whatever itemsToShow is.
const Step = 1

// Track owns the virtual index into a buffer made of copies back-to-back
// repetitions of an n-item list. At rest the index stays inside the central
// band, which leaves at least one full copy of headroom on each side.
//
// A Track is Idle or Transitioning. Begin moves it to Transitioning and
// Complete brings it back to Idle; Begin calls in between are dropped.
type Track struct {
	n             int
	copies        int
	index         int
	target        int
	transitioning bool
}

// NewTrack returns an Idle track positioned at the start of the central band.
// n must be positive; copies below 3 are raised to 3.
func NewTrack(n, copies int) Track {
	if n <= 0 {
		panic("carousel: track needs at least one item")
	}
	copies = max(copies, 3)
	t := Track{n: n, copies: copies}
	t.index, _ = t.Band()
	t.target = t.index
	return t
}

// Len returns the number of logical items.
func (t Track) Len() int { return t.n }

// BufferLen returns the number of slots in the duplicated buffer.
func (t Track) BufferLen() int { return t.n * t.copies }

// Band returns the resting range [lo, hi) of the virtual index.
func (t Track) Band() (lo, hi int) {
	lo = (t.copies - 1) / 2 * t.n
	return lo, t.BufferLen() - lo
}

// Index returns the buffer slot currently at the left edge.
func (t Track) Index() int { return t.index }

// Target returns the slot the in-flight transition is heading to. When Idle
// it equals Index.
func (t Track) Target() int { return t.target }

// Transitioning reports whether a slide is in flight.
func (t Track) Transitioning() bool { return t.transitioning }

// Logical maps a buffer slot to its position in the item list.
func (t Track) Logical(slot int) int {
	i := slot % t.n
	if i < 0 {
		i += t.n
	}
	return i
}

// Begin starts a slide in dir. It returns false and leaves the track
// untouched when a slide is already in flight.
func (t *Track) Begin(dir Direction) bool {
	if t.transitioning {
		return false
	}
	t.transitioning = true
	if dir == Prev {
		t.target = t.index - Step
	} else {
		t.target = t.index + Step
	}
	return true
}

// Complete finishes the in-flight slide. If the target left the central band
// the index is moved by one full copy back into it; jumped reports whether
// that happened. Complete on an Idle track is a no-op.
func (t *Track) Complete() (index int, jumped bool) {
	if !t.transitioning {
		return t.index, false
	}
	reset := t.recenter(t.target)
	jumped = reset != t.target
	t.index = reset
	t.target = reset
	t.transitioning = false
	return t.index, jumped
}

func (t Track) recenter(slot int) int {
	lo, hi := t.Band()
	switch {
	case slot >= hi:
		return slot - t.n
	case slot < lo:
		return slot + t.n
	}
	return slot
}
