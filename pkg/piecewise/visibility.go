package piecewise

// Arc is a piece of a circle between two intersection angles, measured
// from the positive x axis towards positive y.
type Arc struct {
	Start, End Angle
	Visible    bool
}

// Span is the angular length of a.
func (a Arc) Span() Angle { return a.End - a.Start }

// AdjustVisibility folds the intersections recorded by the last sweep into
// c.Angles and updates c.Visible.
//
// The hi boundary meets its intersections in increasing angle from -90 to
// 90 degrees, the lo boundary in decreasing angle from -90 through 180 to
// 90 degrees, so reversing lo and lifting its negative angles by a full
// turn yields a sorted list without sorting. Comparing that list with the
// previous one tells whether the arc after the last intersection changed
// sides: the alternating sum over both merged lists measures how much of
// the circle switched, and more than half a turn means a flip.
func AdjustVisibility(c *Circle) {
	lo, hi := c.fringe[sideLo], c.fringe[sideHi]
	n := len(lo) + len(hi)
	in := make([]Angle, n)
	copy(in, hi)
	for i := len(lo) - 1; i >= 0; i-- {
		a := lo[i]
		if a <= 0 {
			a += FullTurn
		}
		in[n-i-1] = a
	}
	c.resetFringes()

	old := c.Angles
	var a Angle
	i, j := 0, 0
	for i < n && j < len(old) {
		if in[i] < old[j] {
			a = in[i] - a
			i++
		} else {
			a = old[j] - a
			j++
		}
	}
	for ; i < n; i++ {
		a = in[i] - a
	}
	for ; j < len(old); j++ {
		a = old[j] - a
	}

	if a > XPi {
		c.Visible = !c.Visible
	}
	c.Angles = in
}

// Arcs splits c into arcs at c.Angles. The arcs cover exactly one turn and
// alternate between visible and hidden, starting with the arc that wraps
// from the last angle to the first one, which has visibility c.Visible.
func Arcs(c *Circle) []Arc {
	n := len(c.Angles)
	if n == 0 {
		return []Arc{{Start: 0, End: FullTurn, Visible: c.Visible}}
	}

	arcs := make([]Arc, 0, n)
	arcs = append(arcs, Arc{Start: c.Angles[n-1], End: c.Angles[0] + FullTurn, Visible: c.Visible})
	for k := 1; k < n; k++ {
		arcs = append(arcs, Arc{
			Start:   c.Angles[k-1],
			End:     c.Angles[k],
			Visible: (k&1 == 1) != c.Visible,
		})
	}
	return arcs
}
