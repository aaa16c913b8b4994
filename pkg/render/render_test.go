package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"math"
	"testing"
	"time"

	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
	"github.com/tdewolff/test"
)

func TestColorLoop(t *testing.T) {
	colors := ColorLoop(3)
	test.T(t, len(colors), 3)
	test.T(t, colors[0].Hex(), "#ff0000")
	test.T(t, colors[1].Hex(), "#00ff00")
	test.T(t, colors[2].Hex(), "#0000ff")

	test.T(t, len(ColorLoop(0)), 1)
}

func TestCycle(t *testing.T) {
	colors := ColorLoop(4)
	c := NewCycle(colors, 3, 6)
	test.T(t, c.Color(), colors[2])

	c.Next()
	c.Next()
	test.T(t, c.Color(), colors[2])
	test.T(t, c.Next(), colors[3])
	c.Next()
	c.Next()
	test.T(t, c.Next(), colors[0])

	test.T(t, NewCycle(colors, 0, -1).Color(), colors[3])
}

func testFrame() piecewise.Frame {
	return piecewise.Frame{
		Width:  100,
		Height: 60,
		Shapes: []piecewise.Shape{
			{X: 30, Y: 30, R: 20, Arcs: []piecewise.Arc{{Start: 0, End: piecewise.FullTurn, Visible: true}}},
			{X: 80, Y: 30, R: 10, Arcs: []piecewise.Arc{
				{Start: piecewise.XPi / 2, End: piecewise.XPi * 3 / 2, Visible: false},
				{Start: -piecewise.XPi / 2, End: piecewise.XPi / 2, Visible: true},
			}},
		},
	}
}

func isWhite(img *image.RGBA, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0x8000 && g > 0x8000 && b > 0x8000
}

func TestRasterize(t *testing.T) {
	frame := testFrame()
	img := Rasterize(frame, Style{Foreground: color.White, Background: color.Black, Width: 3})
	test.T(t, img.Bounds(), image.Rect(0, 0, 100, 60))

	test.That(t, isWhite(img, 50, 30), "right side of the full circle")
	test.That(t, isWhite(img, 10, 30), "left side of the full circle")
	test.That(t, isWhite(img, 30, 10), "top of the full circle")
	test.That(t, !isWhite(img, 30, 30), "centre stays empty")
	test.That(t, isWhite(img, 90, 30), "visible right half")
	test.That(t, !isWhite(img, 70, 30), "hidden left half")
	test.That(t, !isWhite(img, 0, 0), "background")
}

func TestRasterizeHidden(t *testing.T) {
	frame := testFrame()
	st := DefaultStyle()
	st.Width = 3
	st.Hidden = color.RGBA{0, 0, 0xff, 0xff}
	img := Rasterize(frame, st)

	r, _, b, _ := img.At(70, 30).RGBA()
	test.That(t, b > 0x8000 && r < 0x8000, "hidden arc painted in the hidden colour")
	test.That(t, isWhite(img, 90, 30))
}

func TestArcPoints(t *testing.T) {
	frame := testFrame()
	shape := frame.Shapes[1]
	arc := shape.Arcs[1]
	pts := ArcPoints(frame, shape, arc)

	test.T(t, len(pts), 37)
	for _, p := range pts {
		d := math.Hypot(p[0]-shape.X, p[1]-(float64(frame.Height)-shape.Y))
		test.Float(t, d, float64(shape.R))
	}
	// the arc runs from the top of the screen to the bottom, so the chart
	// y coordinate decreases
	test.That(t, pts[0][1] > pts[len(pts)-1][1])
	test.Float(t, pts[18][0], 90)
}

func TestChart(t *testing.T) {
	frame := testFrame()
	scatter := Chart(frame, ColorLoop(1)[0])

	var buf bytes.Buffer
	test.Error(t, scatter.Render(&buf))
	html := buf.String()
	test.That(t, len(html) > 0)
	test.That(t, bytes.Contains(buf.Bytes(), []byte("#ff0000")), "arc colour")
}

func TestEncodeGIF(t *testing.T) {
	frame := testFrame()
	frames := []*image.RGBA{
		Rasterize(frame, DefaultStyle()),
		Rasterize(frame, DefaultStyle()),
	}

	var buf bytes.Buffer
	test.Error(t, EncodeGIF(&buf, frames, 50*time.Millisecond))

	anim, err := gif.DecodeAll(&buf)
	test.Error(t, err)
	test.T(t, len(anim.Image), 2)
	test.T(t, anim.Delay, []int{5, 5})
	test.T(t, anim.Image[0].Bounds(), image.Rect(0, 0, 100, 60))
}

func TestGIFDelay(t *testing.T) {
	var tests = []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Millisecond, 1},
		{5 * time.Millisecond, 1},
		{10 * time.Millisecond, 1},
		{11 * time.Millisecond, 2},
		{time.Second, 100},
	}
	for _, tt := range tests {
		test.T(t, gifDelay(tt.d), tt.want, tt.d)
	}
}
