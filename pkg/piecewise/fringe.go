package piecewise

import (
	"errors"

	"github.com/0x0FACED/go-piecewise/pkg/splay"
)

// errDegenerate means the fringe order no longer matches the geometry,
// usually because several boundaries met at one point. The sweep is
// thrown away and retried on perturbed input.
var errDegenerate = errors.New("piecewise: degenerate fringe order")

func (s *Sweeper) startEvent(i int) {
	c := &s.circles[i]
	s.queue.push(event{
		kind: EventStart,
		x:    c.X,
		y:    c.Y - float64(c.R),
		lo:   fringeOf(i, sideLo),
		hi:   fringeOf(i, sideHi),
	})
}

func (s *Sweeper) finishEvent(i int) {
	c := &s.circles[i]
	s.queue.push(event{
		kind: EventFinish,
		x:    c.X,
		y:    c.Y + float64(c.R),
		lo:   fringeOf(i, sideLo),
		hi:   fringeOf(i, sideHi),
	})
}

func (s *Sweeper) crossEvent(x, y float64, lo, hi int32) {
	s.queue.push(event{kind: EventCross, x: x, y: y, lo: lo, hi: hi})
}

func compareX(x, fx float64) int {
	switch {
	case x == fx:
		return 0
	case x < fx:
		return -1
	}
	return 1
}

// checkLo brings the rightmost boundary of subtree f to its root and
// checks it against hi, its new right neighbour.
func (s *Sweeper) checkLo(y float64, f, hi int32) int32 {
	if f != splay.Nil {
		f = s.links.SplayMax(f)
		s.intersect(y, f, hi)
	}
	return f
}

// checkHi brings the leftmost boundary of subtree f to its root and
// checks it against lo, its new left neighbour.
func (s *Sweeper) checkHi(y float64, lo, f int32) int32 {
	if f != splay.Nil {
		f = s.links.SplayMin(f)
		s.intersect(y, lo, f)
	}
	return f
}

// start inserts boundaries lo and hi of a circle whose top is (x, y) into
// the fringe f and returns the new root.
func (s *Sweeper) start(f int32, x, y float64, lo, hi int32) int32 {
	i := fringeCircle(lo)

	if f == splay.Nil {
		s.finishEvent(i)
		s.links.SetLeft(lo, splay.Nil)
		s.links.SetRight(lo, hi)
		s.links.Unlink(hi)
		return lo
	}

	f = s.links.Splay(f, func(n int32) int {
		return compareX(x, s.fringeX(n, y))
	})

	sx := s.fringeX(f, y)
	switch {
	case x == sx:
		// the top touches an existing boundary: nudge the circle and
		// try again further down
		s.tweak(i)
		s.startEvent(i)
		return f
	case x < sx:
		s.finishEvent(i)
		s.links.SetLeft(f, s.checkLo(y, s.links.Left(f), lo))
		s.intersect(y, hi, f)
		s.links.SetLeft(lo, s.links.Left(f))
		s.links.SetRight(lo, f)
		s.links.SetLeft(f, hi)
		s.links.Unlink(hi)
		return lo
	default:
		s.finishEvent(i)
		s.intersect(y, f, lo)
		s.links.SetRight(f, s.checkHi(y, hi, s.links.Right(f)))
		s.links.SetRight(hi, s.links.Right(f))
		s.links.SetLeft(hi, f)
		s.links.SetRight(f, lo)
		s.links.Unlink(lo)
		return hi
	}
}

// doubleSplay splays the fringe onto lo or hi and reports whether the two
// are in-order neighbours with lo first. On success the root is lo with hi
// as the smallest node of its right subtree at the top, or hi with lo
// likewise on its left.
func (s *Sweeper) doubleSplay(f int32, x, y float64, lo, hi int32) (int32, bool) {
	f = s.links.Splay(f, func(n int32) int {
		if n == lo || n == hi {
			return 0
		}
		return compareX(x, s.fringeX(n, y))
	})

	switch f {
	case lo:
		r := s.links.SplayMin(s.links.Right(f))
		s.links.SetRight(f, r)
		return f, r == hi
	case hi:
		l := s.links.SplayMax(s.links.Left(f))
		s.links.SetLeft(f, l)
		return f, l == lo
	}
	return f, false
}

// cross swaps neighbouring boundaries lo and hi at (x, y) and checks both
// against their new outer neighbours.
func (s *Sweeper) cross(f int32, x, y float64, lo, hi int32) (int32, error) {
	f, ok := s.doubleSplay(f, x, y, lo, hi)
	if !ok {
		return f, errDegenerate
	}

	l := s.checkLo(y, s.links.Left(lo), hi)
	r := s.checkHi(y, lo, s.links.Right(hi))
	s.links.SetLeft(lo, hi)
	s.links.SetRight(lo, r)
	s.links.SetLeft(hi, l)
	s.links.SetRight(hi, splay.Nil)
	return lo, nil
}

// finish removes boundaries lo and hi of a circle whose bottom is (x, y).
// The boundaries that become neighbours are checked against each other.
func (s *Sweeper) finish(f int32, x, y float64, lo, hi int32) (int32, error) {
	f, ok := s.doubleSplay(f, x, y, lo, hi)
	if !ok {
		return f, errDegenerate
	}

	left := s.links.Left(lo)
	right := s.links.Right(hi)
	switch {
	case left == splay.Nil:
		return right, nil
	case right == splay.Nil:
		return left, nil
	}

	left = s.links.SplayMax(left)
	right = s.links.SplayMin(right)
	s.intersect(y, left, right)
	s.links.SetRight(left, right)
	return left, nil
}
