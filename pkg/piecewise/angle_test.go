package piecewise

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleOf(t *testing.T) {
	var tests = []struct {
		dy, dx float64
		a      Angle
	}{
		{0, 1, 0},
		{1, 0, 90 * 64},
		{-1, 0, -90 * 64},
		{0, -1, XPi},
		{1, 1, 45 * 64},
		{-1, -1, -135 * 64},
		{math.Sin(math.Pi / 3), math.Cos(math.Pi / 3), 60 * 64},
	}
	for _, tt := range tests {
		test.T(t, AngleOf(tt.dy, tt.dx), tt.a, tt.dy, tt.dx)
	}
}

func TestAngleConversions(t *testing.T) {
	test.Float(t, XPi.Radians(), math.Pi)
	test.Float(t, Angle(5760).Degrees(), 90.0)
	test.Float(t, Angle(32).Degrees(), 0.5)

	test.T(t, Angle(-1).Normalize(), FullTurn-1)
	test.T(t, FullTurn.Normalize(), Angle(0))
	test.T(t, (3*FullTurn + 7).Normalize(), Angle(7))
	test.T(t, (-XPi).Normalize(), XPi)
}
