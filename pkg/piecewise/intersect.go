package piecewise

import "math"

// onBoundary reports whether a point of the circle with abscissa x belongs
// to boundary f: left of the centre for lo, right of it for hi.
func (s *Sweeper) onBoundary(f int32, x float64) bool {
	c := &s.circles[fringeCircle(f)]
	return (x < c.X) != (fringeSide(f) == sideHi)
}

// intersect queues the crossings of neighbouring boundaries lo and hi that
// still lie ahead of the sweep line at y. Boundaries of the same circle,
// concentric circles and tangent or disjoint circles never cross.
func (s *Sweeper) intersect(y float64, lo, hi int32) {
	if fringeCircle(lo) == fringeCircle(hi) {
		return
	}

	a := &s.circles[fringeCircle(lo)]
	b := &s.circles[fringeCircle(hi)]

	dx := b.X - a.X
	dy := b.Y - a.Y
	sd := dx*dx + dy*dy
	if sd == 0 {
		return
	}

	rs := float64(b.R + a.R)
	rd := float64(b.R - a.R)
	d := (rd*rd - sd) * (sd - rs*rs)
	if d <= 0 {
		return
	}

	sd = 0.5 / sd
	rp := rs * rd
	sqd := math.Sqrt(d)
	sx := (a.X + b.X) / 2
	sy := (a.Y + b.Y) / 2

	x1 := sx + sd*(dy*sqd-dx*rp)
	y1 := sy - sd*(dx*sqd+dy*rp)
	x2 := sx - sd*(dy*sqd+dx*rp)
	y2 := sy + sd*(dx*sqd-dy*rp)

	ahead := func(xi, yi float64) bool {
		return y <= yi && s.onBoundary(lo, xi) && s.onBoundary(hi, xi)
	}

	switch {
	case ahead(x1, y1) && ahead(x2, y2):
		// the later crossing meets the pair in swapped order
		if y1 < y2 {
			s.crossEvent(x1, y1, lo, hi)
			s.crossEvent(x2, y2, hi, lo)
		} else {
			s.crossEvent(x1, y1, hi, lo)
			s.crossEvent(x2, y2, lo, hi)
		}
	case ahead(x1, y1):
		s.crossEvent(x1, y1, lo, hi)
	case ahead(x2, y2):
		s.crossEvent(x2, y2, lo, hi)
	}
}
