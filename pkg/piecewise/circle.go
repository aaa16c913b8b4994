package piecewise

import "math"

const (
	sideLo = 0
	sideHi = 1
)

// Circle is one moving disc. Position and velocity belong to the caller;
// the sweep only writes the per-side intersection buffers, and
// AdjustVisibility folds them into Angles and Visible.
type Circle struct {
	R      int
	X, Y   float64
	DX, DY float64

	// Visible is the visibility of the arc that starts after the last
	// entry of Angles (or of the whole circle when Angles is empty).
	Visible bool
	// Angles is the sorted intersection list resolved by the last
	// AdjustVisibility call.
	Angles []Angle

	// intersections recorded by the current sweep, per fringe side
	fringe [2][]Angle
}

// Pending returns how many intersections the last sweep recorded on the
// lo and hi boundaries of c.
func (c *Circle) Pending() (lo, hi int) {
	return len(c.fringe[sideLo]), len(c.fringe[sideHi])
}

func (c *Circle) resetFringes() {
	c.fringe[sideLo] = c.fringe[sideLo][:0]
	c.fringe[sideHi] = c.fringe[sideHi][:0]
}

// Fringe nodes live in the sweeper arena: node f is side f%2 of circle f/2.

func fringeOf(circle int, side int) int32 {
	return int32(2*circle + side)
}

func fringeCircle(f int32) int { return int(f >> 1) }
func fringeSide(f int32) int   { return int(f & 1) }

// fringeX is the x coordinate of boundary f at sweep line y. The lo side
// takes the smaller root of the circle equation, hi the larger one.
func (s *Sweeper) fringeX(f int32, y float64) float64 {
	c := &s.circles[fringeCircle(f)]
	dy := c.Y - y
	r := float64(c.R)
	d2 := r*r - dy*dy
	if d2 < 0 {
		d2 = 0
	}
	d := math.Sqrt(d2)
	if fringeSide(f) == sideHi {
		return c.X + d
	}
	return c.X - d
}

func (s *Sweeper) addIntersection(f int32, x, y float64) {
	c := &s.circles[fringeCircle(f)]
	side := fringeSide(f)
	c.fringe[side] = append(c.fringe[side], AngleOf(y-c.Y, x-c.X))
}
