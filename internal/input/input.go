// Package input turns raw key polling into rising-edge queries on logical keys.
package input

// Key is a logical key the simulation reacts to.
type Key int

const (
	Pause Key = iota
	Restart
	keyCount
)

func (k Key) String() string {
	switch k {
	case Pause:
		return "pause"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// Edges answers whether a key went down this frame.
type Edges interface {
	JustPressed(k Key) bool
}

// Tracker keeps the previous and current key snapshots. A key is just
// pressed when it is down now and was up on the previous Update.
type Tracker struct {
	prev [keyCount]bool
	cur  [keyCount]bool
}

// Update shifts the current snapshot to previous and polls down for every
// logical key.
func (t *Tracker) Update(down func(Key) bool) {
	t.prev = t.cur
	for k := Key(0); k < keyCount; k++ {
		t.cur[k] = down(k)
	}
}

// JustPressed reports a rising edge on k.
func (t *Tracker) JustPressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return t.cur[k] && !t.prev[k]
}

// Held reports whether k is down in the current snapshot.
func (t *Tracker) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return t.cur[k]
}

// Pressed is a fixed set of keys that are just pressed, handy for headless
// runs.
type Pressed map[Key]bool

// JustPressed reports whether k is in the set.
func (p Pressed) JustPressed(k Key) bool { return p[k] }
