package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ColorLoop returns n fully saturated colours going once around the hue
// circle through red, green and blue.
func ColorLoop(n int) []colorful.Color {
	if n < 1 {
		n = 1
	}
	colors := make([]colorful.Color, n)
	for i := range colors {
		colors[i] = colorful.Hsv(360*float64(i)/float64(n), 1, 1)
	}
	return colors
}

// Cycle hands out the drawing colour, moving to the next colour of the
// loop every few frames.
type Cycle struct {
	colors []colorful.Color
	every  int
	frame  int
	index  int
}

// NewCycle starts at colour index start and advances every `every` frames.
func NewCycle(colors []colorful.Color, every, start int) *Cycle {
	if len(colors) == 0 {
		colors = ColorLoop(1)
	}
	if every < 1 {
		every = 1
	}
	return &Cycle{
		colors: colors,
		every:  every,
		index:  ((start % len(colors)) + len(colors)) % len(colors),
	}
}

func (c *Cycle) Color() colorful.Color {
	return c.colors[c.index]
}

// Next counts one frame and returns the colour to use for the next one.
func (c *Cycle) Next() colorful.Color {
	c.frame++
	if c.frame%c.every == 0 {
		c.index = (c.index + 1) % len(c.colors)
	}
	return c.Color()
}
