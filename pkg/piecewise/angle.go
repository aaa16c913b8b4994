package piecewise

import "math"

// Angle is a fixed-point angle in 64ths of a degree, the unit X11 arc
// requests use. 90 degrees is 5760.
type Angle int

const (
	// XPi is half a turn.
	XPi Angle = 180 * 64
	// FullTurn is one whole turn.
	FullTurn = 2 * XPi
)

// AngleOf returns the direction of (dx, dy) rounded to the nearest unit,
// in the range [-XPi, XPi].
func AngleOf(dy, dx float64) Angle {
	return Angle(math.RoundToEven(math.Atan2(dy, dx) * float64(XPi) / math.Pi))
}

func (a Angle) Radians() float64 {
	return float64(a) * math.Pi / float64(XPi)
}

func (a Angle) Degrees() float64 {
	return float64(a) / 64
}

// Normalize maps a into [0, FullTurn).
func (a Angle) Normalize() Angle {
	a %= FullTurn
	if a < 0 {
		a += FullTurn
	}
	return a
}
