package piecewise

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/0x0FACED/go-piecewise/pkg/logger"
	"github.com/0x0FACED/go-piecewise/pkg/splay"
	"go.uber.org/zap"
)

// DefaultMaxRetries bounds the restarts of one sweep.
const DefaultMaxRetries = 64

// ErrNoConvergence is returned when perturbing the circles did not get rid
// of a degenerate configuration within MaxRetries restarts.
var ErrNoConvergence = errors.New("piecewise: sweep did not converge")

// Stats describes the last sweep.
type Stats struct {
	// Events popped from the queue, over all attempts.
	Events int
	// Crosses recorded by the successful attempt.
	Crosses int
	// Restarts after a degenerate fringe order.
	Restarts int
	// Tweaks counts circle perturbations, including the ones done to
	// resolve a degenerate start without restarting.
	Tweaks int
}

// Sweeper runs the plane sweep. It keeps its fringe arena and event queue
// between calls so a running animation does not allocate per frame, but
// nothing else survives a call. A Sweeper is not safe for concurrent use.
type Sweeper struct {
	// MaxRetries bounds the restarts of one Sweep; 0 means no bound.
	MaxRetries int
	Logger     *logger.ZapLogger

	rng     *rand.Rand
	circles []Circle
	links   splay.Arena
	queue   *eventQueue
	stats   Stats

	// positions at the start of Sweep, restored when giving up
	saved [][2]float64
	// fault, when set, is consulted at the end of every attempt
	fault func() error
}

// NewSweeper returns a sweeper that perturbs circles with rng. A nil rng
// gets a fixed seed and a nil log discards everything.
func NewSweeper(rng *rand.Rand, log *logger.ZapLogger) *Sweeper {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Sweeper{
		MaxRetries: DefaultMaxRetries,
		Logger:     log,
		rng:        rng,
		queue:      newEventQueue(),
	}
}

// tweak nudges circle i by less than a pixel sideways and a little
// downwards.
func (s *Sweeper) tweak(i int) {
	c := &s.circles[i]
	c.X += s.rng.Float64()*2 - 1
	c.Y += s.rng.Float64() + 0.1
	s.stats.Tweaks++
}

// Sweep records on every circle the points where its boundary crosses the
// boundary of another circle. The results are read back with
// AdjustVisibility. Degenerate configurations are resolved by moving the
// circles slightly and starting over, so positions may change. When the
// sweep gives up the positions are put back as they were.
func (s *Sweeper) Sweep(circles []Circle) (Stats, error) {
	s.circles = circles
	defer func() { s.circles = nil }()
	s.stats = Stats{}
	s.savePositions()

	for {
		err := s.run()
		if err == nil {
			s.Logger.Debug("[sweep] done",
				zap.Int("circles", len(circles)),
				zap.Int("events", s.stats.Events),
				zap.Int("crosses", s.stats.Crosses),
				zap.Int("restarts", s.stats.Restarts))
			return s.stats, nil
		}

		s.stats.Restarts++
		s.queue.reset()
		for i := range circles {
			circles[i].resetFringes()
		}

		if s.MaxRetries > 0 && s.stats.Restarts > s.MaxRetries {
			s.restorePositions()
			s.Logger.Error("[sweep] giving up", zap.Int("restarts", s.stats.Restarts), zap.Error(err))
			return s.stats, fmt.Errorf("%w after %d restarts", ErrNoConvergence, s.stats.Restarts)
		}
		s.Logger.Warn("[sweep] restarting", zap.Int("restart", s.stats.Restarts), zap.Error(err))

		for i := range circles {
			s.tweak(i)
		}
	}
}

// run is one attempt of the sweep.
func (s *Sweeper) run() error {
	s.queue.reset()
	s.links.Reset(2 * len(s.circles))
	s.stats.Crosses = 0

	for i := range s.circles {
		s.circles[i].resetFringes()
		s.startEvent(i)
	}

	f := splay.Nil
	for {
		e, ok := s.queue.pop()
		if !ok {
			if s.fault != nil {
				return s.fault()
			}
			return nil
		}
		s.stats.Events++

		var err error
		switch e.kind {
		case EventStart:
			f = s.start(f, e.x, e.y, e.lo, e.hi)
		case EventCross:
			if f, err = s.cross(f, e.x, e.y, e.lo, e.hi); err == nil {
				s.addIntersection(e.lo, e.x, e.y)
				s.addIntersection(e.hi, e.x, e.y)
				s.stats.Crosses++
			}
		case EventFinish:
			f, err = s.finish(f, e.x, e.y, e.lo, e.hi)
		}
		if err != nil {
			return fmt.Errorf("%s event at (%g, %g): %w", e.kind, e.x, e.y, err)
		}
	}
}

func (s *Sweeper) savePositions() {
	s.saved = s.saved[:0]
	for i := range s.circles {
		s.saved = append(s.saved, [2]float64{s.circles[i].X, s.circles[i].Y})
	}
}

func (s *Sweeper) restorePositions() {
	for i, p := range s.saved {
		s.circles[i].X, s.circles[i].Y = p[0], p[1]
	}
}

// Sweep runs a one-off sweep with a fresh Sweeper.
func Sweep(circles []Circle) (Stats, error) {
	return NewSweeper(nil, nil).Sweep(circles)
}
