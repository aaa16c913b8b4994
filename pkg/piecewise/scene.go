package piecewise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/0x0FACED/go-piecewise/pkg/logger"
	"go.uber.org/zap"
)

// Shape is one circle of a rendered frame.
type Shape struct {
	X, Y float64
	R    int
	Arcs []Arc
}

// Frame is the drawable result of one animation step.
type Frame struct {
	Index         int
	Width, Height int
	Shapes        []Shape
	Stats         Stats
	// Stale is set when the sweep gave up and the arcs are those of the
	// previous frame.
	Stale bool
}

// Scene animates a set of circles bouncing inside a viewport.
type Scene struct {
	Width, Height int
	Circles       []Circle
	Sweeper       *Sweeper
	Logger        *logger.ZapLogger

	rng   *rand.Rand
	frame int
}

func NewScene(cfg Config, w, h int, log *logger.ZapLogger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, w, h)
	}
	if log == nil {
		log = logger.Nop()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	sweeper := NewSweeper(rng, log)
	sweeper.MaxRetries = cfg.MaxRetries

	s := &Scene{
		Width:   w,
		Height:  h,
		Circles: make([]Circle, cfg.Count),
		Sweeper: sweeper,
		Logger:  log,
		rng:     rng,
	}

	r0 := int(math.Ceil(cfg.MinRadius * float64(h)))
	dr := int(math.Floor(cfg.MaxRadius*float64(h))) - r0 + 1
	if r0 < 1 {
		r0 = 1
	}
	if dr < 1 {
		dr = 1
	}

	for i := range s.Circles {
		c := &s.Circles[i]
		c.R = r0 + rng.Intn(dr)
		c.X = float64(c.R) + s.frand(float64(w-1-2*c.R))
		c.Y = float64(c.R) + s.frand(float64(h-1-2*c.R))
		c.Visible = rng.Intn(2) == 1

		a := s.frand(2 * math.Pi)
		v := (1 + s.frand(0.5)) * float64(cfg.Speed) / 10
		c.DX = v * math.Cos(a)
		c.DY = v * math.Sin(a)
	}

	log.Info("[scene] created",
		zap.Int("circles", cfg.Count),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("r0", r0),
		zap.Int("dr", dr))
	return s, nil
}

// frand is uniform in [0, max); a non-positive max gives 0.
func (s *Scene) frand(max float64) float64 {
	if max <= 0 {
		return 0
	}
	return s.rng.Float64() * max
}

// Step sweeps the current positions, resolves the visible arcs and then
// moves every circle one step.
func (s *Scene) Step() Frame {
	stats, err := s.Sweeper.Sweep(s.Circles)
	stale := err != nil
	if stale {
		s.Logger.Warn("[scene] keeping previous visibility", zap.Int("frame", s.frame), zap.Error(err))
	}

	frame := Frame{
		Index:  s.frame,
		Width:  s.Width,
		Height: s.Height,
		Shapes: make([]Shape, len(s.Circles)),
		Stats:  stats,
		Stale:  stale,
	}
	for i := range s.Circles {
		c := &s.Circles[i]
		if !stale {
			AdjustVisibility(c)
		}
		frame.Shapes[i] = Shape{X: c.X, Y: c.Y, R: c.R, Arcs: Arcs(c)}
		s.move(c)
	}

	s.Logger.Debug("[scene] frame",
		zap.Int("frame", s.frame),
		zap.Int("crosses", stats.Crosses),
		zap.Int("restarts", stats.Restarts))
	s.frame++
	return frame
}

// move advances c by its velocity and bounces it off the viewport edges.
func (s *Scene) move(c *Circle) {
	r := float64(c.R)
	w := float64(s.Width)
	h := float64(s.Height)

	c.X += c.DX
	if c.X < r {
		c.X = r
		c.DX = -c.DX
	} else if c.X >= w-r {
		c.X = w - 1 - r
		c.DX = -c.DX
	}

	c.Y += c.DY
	if c.Y < r {
		c.Y = r
		c.DY = -c.DY
	} else if c.Y >= h-r {
		c.Y = h - 1 - r
		c.DY = -c.DY
	}
}
