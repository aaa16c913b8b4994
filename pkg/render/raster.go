package render

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"math"
	"time"

	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Style controls how a frame is painted.
type Style struct {
	Foreground color.Color
	Background color.Color
	// Hidden paints the occluded arcs too when it is not nil.
	Hidden color.Color
	// Width is the stroke width in pixels.
	Width float64
}

func DefaultStyle() Style {
	return Style{
		Foreground: color.White,
		Background: color.Black,
		Width:      1.5,
	}
}

// Rasterize paints the visible arcs of frame.
func Rasterize(frame piecewise.Frame, st Style) *image.RGBA {
	bounds := image.Rect(0, 0, frame.Width, frame.Height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(st.Background), image.Point{}, draw.Src)

	if st.Hidden != nil {
		strokeArcs(img, frame, st.Width, st.Hidden, false)
	}
	strokeArcs(img, frame, st.Width, st.Foreground, true)
	return img
}

func strokeArcs(img *image.RGBA, frame piecewise.Frame, width float64, col color.Color, visible bool) {
	bounds := img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for _, shape := range frame.Shapes {
		for _, arc := range shape.Arcs {
			if arc.Visible == visible {
				addArc(z, shape, arc, width)
			}
		}
	}
	z.Draw(img, bounds, image.NewUniform(col), image.Point{})
}

// addArc adds the annular sector covering arc, stroked with width, as one
// closed polygon.
func addArc(z *vector.Rasterizer, shape piecewise.Shape, arc piecewise.Arc, width float64) {
	a0 := arc.Start.Radians()
	a1 := arc.End.Radians()
	if a1 <= a0 {
		return
	}

	r := float64(shape.R)
	outer := r + width/2
	inner := math.Max(r-width/2, 0)
	steps := int(math.Ceil((a1 - a0) * outer / 2))
	if steps < 2 {
		steps = 2
	}

	point := func(radius, a float64) (float32, float32) {
		return float32(shape.X + radius*math.Cos(a)), float32(shape.Y + radius*math.Sin(a))
	}

	z.MoveTo(point(outer, a0))
	for i := 1; i <= steps; i++ {
		z.LineTo(point(outer, a0+(a1-a0)*float64(i)/float64(steps)))
	}
	for i := steps; i >= 0; i-- {
		z.LineTo(point(inner, a0+(a1-a0)*float64(i)/float64(steps)))
	}
	z.ClosePath()
}

// polar returns the point of the boundary of shape at angle a, in image
// coordinates.
func polar(shape piecewise.Shape, a piecewise.Angle) (float64, float64) {
	rad := a.Radians()
	r := float64(shape.R)
	return shape.X + r*math.Cos(rad), shape.Y + r*math.Sin(rad)
}

// gifDelay converts d to the hundredths of a second GIF counts in, rounding
// up so a short non-zero delay is not lost.
func gifDelay(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + 10*time.Millisecond - 1) / (10 * time.Millisecond))
}

// EncodeGIF writes frames as an animation with delay between frames.
func EncodeGIF(w io.Writer, frames []*image.RGBA, delay time.Duration) error {
	anim := &gif.GIF{}
	for _, img := range frames {
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, gifDelay(delay))
	}
	return gif.EncodeAll(w, anim)
}
