package piecewise

import (
	"errors"
	"testing"

	"github.com/0x0FACED/go-piecewise/pkg/logger"
	"github.com/tdewolff/test"
	"go.uber.org/multierr"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	test.Error(t, cfg.Validate())

	cfg.MaxRadius = 0.01
	test.Error(t, cfg.Validate())
	test.Float(t, cfg.MaxRadius, cfg.MinRadius)

	bad := Config{Count: -1, MinRadius: 0, Speed: -2, NColors: 0, MaxRetries: -1}
	err := bad.Validate()
	test.That(t, errors.Is(err, ErrInvalidConfig))
	test.T(t, len(multierr.Errors(err)), 5)
}

func TestConfigColorIterations(t *testing.T) {
	var tests = []struct {
		speed, n int
	}{
		{0, 100000},
		{10, 10},
		{3, 33},
		{100, 1},
		{250, 1},
	}
	for _, tt := range tests {
		cfg := Config{ColorSpeed: tt.speed}
		test.T(t, cfg.ColorIterations(), tt.n, tt.speed)
	}
}

func TestNewSceneInvalid(t *testing.T) {
	_, err := NewScene(DefaultConfig(), 0, 100, nil)
	test.That(t, errors.Is(err, ErrInvalidConfig))

	cfg := DefaultConfig()
	cfg.Count = -3
	_, err = NewScene(cfg, 100, 100, nil)
	test.That(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewSceneDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12

	a, err := NewScene(cfg, 640, 480, nil)
	test.Error(t, err)
	b, err := NewScene(cfg, 640, 480, nil)
	test.Error(t, err)
	test.T(t, len(a.Circles), cfg.Count)

	r0, r1 := 24, 96 // ceil(0.05*480), floor(0.2*480)
	for i := range a.Circles {
		c := a.Circles[i]
		test.T(t, c, b.Circles[i])
		test.That(t, r0 <= c.R && c.R <= r1, "radius", c.R)
		test.That(t, float64(c.R) <= c.X && c.X <= float64(640-1-c.R), "x", c.X)
		test.That(t, float64(c.R) <= c.Y && c.Y <= float64(480-1-c.R), "y", c.Y)
	}
}

func TestSceneStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 20
	cfg.Seed = 4
	log := logger.New()

	s, err := NewScene(cfg, 400, 300, log)
	test.Error(t, err)

	for n := 0; n < 60; n++ {
		frame := s.Step()
		test.T(t, frame.Index, n)
		test.That(t, !frame.Stale)
		test.T(t, len(frame.Shapes), cfg.Count)
		for _, shape := range frame.Shapes {
			var total Angle
			for _, arc := range shape.Arcs {
				total += arc.Span()
			}
			test.T(t, total, FullTurn, "frame", n)
			test.T(t, len(shape.Arcs)%2 == 0 || len(shape.Arcs) == 1, true)
		}
	}
	test.That(t, len(log.String()) > 0)
}

func TestSceneStaleFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 12
	cfg.Seed = 8
	cfg.MaxRetries = 2

	s, err := NewScene(cfg, 400, 300, nil)
	test.Error(t, err)
	prev := s.Step()
	test.That(t, !prev.Stale)

	type state struct {
		x, y    float64
		visible bool
		angles  []Angle
	}
	before := make([]state, len(s.Circles))
	for i, c := range s.Circles {
		before[i] = state{c.X, c.Y, c.Visible, append([]Angle{}, c.Angles...)}
	}

	s.Sweeper.fault = func() error { return errDegenerate }
	frame := s.Step()
	test.That(t, frame.Stale)
	test.T(t, frame.Stats.Restarts, cfg.MaxRetries+1)
	for i, shape := range frame.Shapes {
		test.T(t, shape.X, before[i].x, "circle", i)
		test.T(t, shape.Y, before[i].y, "circle", i)
		test.T(t, s.Circles[i].Visible, before[i].visible, "circle", i)
		test.T(t, s.Circles[i].Angles, before[i].angles, "circle", i)
		test.T(t, shape.Arcs, prev.Shapes[i].Arcs, "circle", i)
	}

	s.Sweeper.fault = nil
	test.That(t, !s.Step().Stale)
}

func TestSceneMoveBounces(t *testing.T) {
	s := &Scene{Width: 100, Height: 50}
	c := &Circle{R: 10, X: 85, Y: 30, DX: 10, DY: -25}
	s.move(c)
	test.Float(t, c.X, 89)
	test.Float(t, c.DX, -10)
	test.Float(t, c.Y, 10)
	test.Float(t, c.DY, 25)

	s.move(c)
	test.Float(t, c.X, 79)
	test.Float(t, c.Y, 35)
	s.move(c)
	test.Float(t, c.Y, 39)
	test.Float(t, c.DY, -25)
}
