package hero

import (
	"testing"
	"time"
)

func TestVirtualClock_OrdersByDeadlineThenFIFO(t *testing.T) {
	t.Parallel()

	c := NewVirtualClock()
	c.After(2*time.Second, Event{Kind: EventStep, Instance: 3})
	c.After(time.Second, Event{Kind: EventStep, Instance: 1})
	c.After(time.Second, Event{Kind: EventStep, Instance: 2})

	var got []int
	c.Advance(5*time.Second, handlerFunc(func(ev Event) { got = append(got, ev.Instance) }))

	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fired %v, want %v", got, want)
		}
	}
	if c.Now() != 5*time.Second {
		t.Fatalf("now = %v, want 5s", c.Now())
	}
}

func TestVirtualClock_HandlersCanReschedule(t *testing.T) {
	t.Parallel()

	c := NewVirtualClock()
	c.After(0, Event{Kind: EventSpawnLoop})

	var fired []time.Duration
	c.Advance(time.Second, handlerFunc(func(Event) {
		fired = append(fired, c.Now())
		c.After(300*time.Millisecond, Event{Kind: EventSpawnLoop})
	}))

	if len(fired) != 4 {
		t.Fatalf("fired at %v, want 0, 300ms, 600ms, 900ms", fired)
	}
	if c.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", c.Pending())
	}
}
