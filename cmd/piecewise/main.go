package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/0x0FACED/go-piecewise/pkg/logger"
	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
	"github.com/0x0FACED/go-piecewise/pkg/render"
	"github.com/tdewolff/argp"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Render struct {
	Width      int     `short:"W" default:"640" desc:"Viewport width"`
	Height     int     `short:"H" default:"480" desc:"Viewport height"`
	Count      int     `short:"n" default:"32" desc:"Number of circles"`
	MinRadius  float64 `default:"0.05" desc:"Minimum radius as a fraction of the height"`
	MaxRadius  float64 `default:"0.2" desc:"Maximum radius as a fraction of the height"`
	Speed      int     `short:"s" default:"15" desc:"Circle speed"`
	ColorSpeed int     `default:"10" desc:"Colour change speed, 0 keeps one colour"`
	NColors    int     `default:"256" desc:"Number of colours in the loop"`
	Seed       int64   `default:"1" desc:"Random seed"`
	MaxRetries int     `default:"64" desc:"Sweep restarts per frame before giving up, 0 for no limit"`
	Frames     int     `short:"f" default:"100" desc:"Number of frames"`
	Delay      int     `default:"5" desc:"Frame delay in milliseconds, rounded up to GIF hundredths"`
	Hidden     bool    `desc:"Also draw the hidden arcs, dimmed"`
	Verbose    bool    `short:"v" desc:"Log every frame"`
	Output     string  `short:"o" desc:"Output .gif file or directory for PNG frames"`
}

type Stats struct {
	Width     int     `short:"W" default:"640" desc:"Viewport width"`
	Height    int     `short:"H" default:"480" desc:"Viewport height"`
	Count     int     `short:"n" default:"32" desc:"Number of circles"`
	MinRadius float64 `default:"0.05" desc:"Minimum radius as a fraction of the height"`
	MaxRadius float64 `default:"0.2" desc:"Maximum radius as a fraction of the height"`
	Seed      int64   `default:"1" desc:"Random seed"`
	Frames    int     `short:"f" default:"1000" desc:"Number of frames"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Plane-sweep visibility of overlapping circles")
	root.AddCmd(&Stats{}, "stats", "Run the animation headless and report sweep statistics")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) config() piecewise.Config {
	cfg := piecewise.DefaultConfig()
	cfg.Count = cmd.Count
	cfg.MinRadius = cmd.MinRadius
	cfg.MaxRadius = cmd.MaxRadius
	cfg.Speed = cmd.Speed
	cfg.ColorSpeed = cmd.ColorSpeed
	cfg.NColors = cmd.NColors
	cfg.Seed = cmd.Seed
	cfg.MaxRetries = cmd.MaxRetries
	cfg.Delay = time.Duration(cmd.Delay) * time.Millisecond
	return cfg
}

func (cmd *Render) Run() error {
	if cmd.Frames < 1 {
		return fmt.Errorf("need at least one frame, got %d", cmd.Frames)
	}

	level := zap.InfoLevel
	if cmd.Verbose {
		level = zap.DebugLevel
	}
	log := logger.NewWithLevel(level)
	defer func() {
		fmt.Fprint(os.Stderr, log.String())
	}()

	cfg := cmd.config()
	scene, err := piecewise.NewScene(cfg, cmd.Width, cmd.Height, log)
	if err != nil {
		return err
	}
	colors := render.NewCycle(render.ColorLoop(cfg.NColors), cfg.ColorIterations(), 0)

	st := render.DefaultStyle()
	if cmd.Hidden {
		st.Hidden = color.Gray{Y: 0x40}
	}

	gifOut := strings.EqualFold(filepath.Ext(cmd.Output), ".gif")
	if cmd.Output != "" && !gifOut {
		if err := os.MkdirAll(cmd.Output, 0o755); err != nil {
			return err
		}
	}

	var sum summary
	var images []*image.RGBA
	for n := 0; n < cmd.Frames; n++ {
		frame := scene.Step()
		sum.add(frame)

		if cmd.Output != "" {
			st.Foreground = colors.Color()
			img := render.Rasterize(frame, st)
			if gifOut {
				images = append(images, img)
			} else if err := writePNG(filepath.Join(cmd.Output, fmt.Sprintf("frame%04d.png", n)), img); err != nil {
				return err
			}
		}
		colors.Next()
	}

	if gifOut {
		if err := writeFile(cmd.Output, func(w io.Writer) error {
			return render.EncodeGIF(w, images, cfg.Delay)
		}); err != nil {
			return err
		}
	}

	sum.print(os.Stdout)
	return nil
}

func (cmd *Stats) Run() error {
	r := Render{
		Width:      cmd.Width,
		Height:     cmd.Height,
		Count:      cmd.Count,
		MinRadius:  cmd.MinRadius,
		MaxRadius:  cmd.MaxRadius,
		Speed:      15,
		NColors:    1,
		Seed:       cmd.Seed,
		Frames:     cmd.Frames,
		MaxRetries: piecewise.DefaultMaxRetries,
	}

	scene, err := piecewise.NewScene(r.config(), r.Width, r.Height, nil)
	if err != nil {
		return err
	}
	var sum summary
	for n := 0; n < cmd.Frames; n++ {
		sum.add(scene.Step())
	}
	sum.print(os.Stdout)
	return nil
}

func writePNG(name string, img image.Image) error {
	return writeFile(name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return write(f)
}
