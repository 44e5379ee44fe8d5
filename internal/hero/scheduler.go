package hero

import (
	"container/heap"
	"fmt"
	"time"
)

// EventKind identifies what a timer wakes the pool up for.
type EventKind int

const (
	EventSpawn     EventKind = iota // one of the initial spawns
	EventSpawnLoop                  // the recurring random-delay spawn
	EventStep                       // advance one instance's animation
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventSpawnLoop:
		return "spawn-loop"
	case EventStep:
		return "step"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is delivered back to the pool when a timer fires.
type Event struct {
	Kind     EventKind
	Instance int // instance ID for EventStep
}

// Scheduler queues ev for delivery after d. Implementations deliver events
// one at a time on a single task, in deadline order, FIFO among equal
// deadlines.
type Scheduler interface {
	After(d time.Duration, ev Event)
}

// Handler consumes fired events.
type Handler interface {
	Handle(ev Event)
}

// VirtualClock is a deterministic Scheduler driven by explicit Advance calls.
type VirtualClock struct {
	now       time.Duration
	seq       uint64
	timers    timerHeap
	scheduled int
}

// NewVirtualClock returns a clock at time zero with no pending timers.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

func (c *VirtualClock) After(d time.Duration, ev Event) {
	if d < 0 {
		d = 0
	}
	c.seq++
	c.scheduled++
	heap.Push(&c.timers, timer{at: c.now + d, seq: c.seq, ev: ev})
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration { return c.now }

// Pending returns the number of queued timers.
func (c *VirtualClock) Pending() int { return c.timers.Len() }

// Scheduled returns how many timers were ever queued.
func (c *VirtualClock) Scheduled() int { return c.scheduled }

// Step fires the earliest timer, moving the clock to its deadline.
// It reports false when nothing is pending.
func (c *VirtualClock) Step(h Handler) bool {
	if c.timers.Len() == 0 {
		return false
	}
	t := heap.Pop(&c.timers).(timer)
	c.now = t.at
	h.Handle(t.ev)
	return true
}

// Advance fires every timer due within d, including timers queued by
// handlers along the way, then leaves the clock at now+d.
func (c *VirtualClock) Advance(d time.Duration, h Handler) {
	end := c.now + d
	for c.timers.Len() > 0 && c.timers[0].at <= end {
		c.Step(h)
	}
	c.now = end
}

type timer struct {
	at  time.Duration
	seq uint64
	ev  Event
}

type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}
