package main

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
	"github.com/tdewolff/test"
)

func testRender(output string) *Render {
	return &Render{
		Width:      160,
		Height:     120,
		Count:      6,
		MinRadius:  0.1,
		MaxRadius:  0.3,
		Speed:      15,
		ColorSpeed: 10,
		NColors:    16,
		Seed:       3,
		MaxRetries: piecewise.DefaultMaxRetries,
		Frames:     4,
		Delay:      40,
		Output:     output,
	}
}

func TestRenderPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	test.Error(t, testRender(dir).Run())

	entries, err := os.ReadDir(dir)
	test.Error(t, err)
	test.T(t, len(entries), 4)
	test.T(t, entries[0].Name(), "frame0000.png")
}

func TestRenderGIF(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.gif")
	test.Error(t, testRender(name).Run())

	b, err := os.ReadFile(name)
	test.Error(t, err)
	anim, err := gif.DecodeAll(bytes.NewReader(b))
	test.Error(t, err)
	test.T(t, len(anim.Image), 4)
	test.T(t, anim.Delay[0], 4)
}

func TestRenderConfig(t *testing.T) {
	cfg := testRender("").config()
	test.T(t, cfg.Delay, 40*time.Millisecond)
	test.T(t, cfg.Count, 6)
	test.T(t, cfg.Seed, int64(3))
}

func TestRenderInvalid(t *testing.T) {
	cmd := testRender("")
	cmd.Frames = 0
	test.That(t, cmd.Run() != nil)

	cmd = testRender("")
	cmd.Count = -1
	test.That(t, cmd.Run() != nil)
}

func TestSummary(t *testing.T) {
	var s summary
	s.add(piecewise.Frame{Stats: piecewise.Stats{Events: 10, Crosses: 2, Restarts: 1}})
	s.add(piecewise.Frame{Stats: piecewise.Stats{Events: 20, Crosses: 4, Restarts: 3, Tweaks: 1}, Stale: true})

	var buf bytes.Buffer
	s.print(&buf)
	out := buf.String()
	test.That(t, strings.Contains(out, "frames:   2 (1 stale)"), out)
	test.That(t, strings.Contains(out, "events:   30 (15.0 per frame)"), out)
	test.That(t, strings.Contains(out, "restarts: 4 (at most 3 in one frame)"), out)
	test.That(t, strings.Contains(out, "tweaks:   1"), out)
}
