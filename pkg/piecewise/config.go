package piecewise

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("piecewise: invalid config")

// Config holds the animation parameters. Radii are fractions of the
// viewport height.
type Config struct {
	Count      int
	MinRadius  float64
	MaxRadius  float64
	Speed      int
	Delay      time.Duration
	ColorSpeed int
	NColors    int
	Seed       int64
	MaxRetries int
}

func DefaultConfig() Config {
	return Config{
		Count:      32,
		MinRadius:  0.05,
		MaxRadius:  0.2,
		Speed:      15,
		Delay:      5 * time.Millisecond,
		ColorSpeed: 10,
		NColors:    256,
		Seed:       1,
		MaxRetries: DefaultMaxRetries,
	}
}

// Validate reports every invalid field at once. A MaxRadius below
// MinRadius is not an error; it is raised to MinRadius.
func (c *Config) Validate() error {
	var err error
	invalid := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...))
	}

	if c.Count < 0 {
		invalid("count %d is negative", c.Count)
	}
	if c.MinRadius <= 0 {
		invalid("minimum radius %g must be positive", c.MinRadius)
	}
	if c.Speed < 0 {
		invalid("speed %d is negative", c.Speed)
	}
	if c.Delay < 0 {
		invalid("delay %v is negative", c.Delay)
	}
	if c.ColorSpeed < 0 {
		invalid("color speed %d is negative", c.ColorSpeed)
	}
	if c.NColors < 1 {
		invalid("need at least one color, got %d", c.NColors)
	}
	if c.MaxRetries < 0 {
		invalid("max retries %d is negative", c.MaxRetries)
	}

	if c.MaxRadius < c.MinRadius {
		c.MaxRadius = c.MinRadius
	}
	return err
}

// ColorIterations is the number of frames between two colour changes.
func (c Config) ColorIterations() int {
	if c.ColorSpeed == 0 {
		return 100000
	}
	if n := 100 / c.ColorSpeed; n > 0 {
		return n
	}
	return 1
}
