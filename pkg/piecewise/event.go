package piecewise

import (
	"fmt"

	"github.com/0x0FACED/go-piecewise/pkg/splay"
)

type EventKind int

const (
	// EventStart is the top of a circle: both its boundaries enter the fringe.
	EventStart EventKind = iota
	// EventCross is a point where two neighbouring boundaries swap order.
	EventCross
	// EventFinish is the bottom of a circle: both its boundaries leave.
	EventFinish
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventCross:
		return "cross"
	case EventFinish:
		return "finish"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type event struct {
	kind   EventKind
	x, y   float64
	lo, hi int32
}

func (e *event) samePair(o *event) bool {
	return (e.lo == o.lo && e.hi == o.hi) || (e.lo == o.hi && e.hi == o.lo)
}

// eventQueue is a splay tree of events ordered by y only. Events at the
// same y are chained to the left of the root instead of being ordered by x.
type eventQueue struct {
	links  splay.Arena
	events []event
	free   []int32
	root   int32
}

func newEventQueue() *eventQueue {
	return &eventQueue{root: splay.Nil}
}

// reset drops every pending event.
func (q *eventQueue) reset() {
	q.links.Reset(0)
	q.events = q.events[:0]
	q.free = q.free[:0]
	q.root = splay.Nil
}

func (q *eventQueue) empty() bool { return q.root == splay.Nil }

// pending counts queued events.
func (q *eventQueue) pending() int {
	return len(q.events) - len(q.free)
}

func (q *eventQueue) alloc(e event) int32 {
	if n := len(q.free); n > 0 {
		i := q.free[n-1]
		q.free = q.free[:n-1]
		q.events[i] = e
		q.links.Unlink(i)
		return i
	}
	q.events = append(q.events, e)
	return q.links.Alloc()
}

func (q *eventQueue) release(i int32) {
	q.free = append(q.free, i)
}

// push queues e. It reports false when e duplicates the event already
// queued at the same y for the same pair of boundaries.
func (q *eventQueue) push(e event) bool {
	i := q.alloc(e)
	if q.root == splay.Nil {
		q.root = i
		return true
	}

	y := e.y
	root := q.links.Splay(q.root, func(n int32) int {
		ny := q.events[n].y
		switch {
		case y == ny:
			return 0
		case y < ny:
			return -1
		}
		return 1
	})

	r := &q.events[root]
	switch {
	case y == r.y:
		q.root = root
		if e.samePair(r) {
			q.release(i)
			return false
		}
		q.links.SetLeft(i, q.links.Left(root))
		q.links.SetRight(i, splay.Nil)
		q.links.SetLeft(root, i)
	case y < r.y:
		q.links.SetLeft(i, q.links.Left(root))
		q.links.SetRight(i, root)
		q.links.SetLeft(root, splay.Nil)
		q.root = i
	default:
		q.links.SetLeft(i, root)
		q.links.SetRight(i, q.links.Right(root))
		q.links.SetRight(root, splay.Nil)
		q.root = i
	}
	return true
}

// pop removes and returns the event with the smallest y.
func (q *eventQueue) pop() (event, bool) {
	if q.root == splay.Nil {
		return event{}, false
	}
	i := q.links.SplayMin(q.root)
	q.root = q.links.Right(i)
	e := q.events[i]
	q.release(i)
	return e, true
}
