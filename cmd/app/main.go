package main

import (
	"fmt"
	"image/png"
	"net/http"

	"github.com/0x0FACED/go-piecewise/pkg/logger"
	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
	"github.com/0x0FACED/go-piecewise/pkg/render"
	"github.com/0x0FACED/go-piecewise/static"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

// simulate прогоняет сцену p.Frames кадров и возвращает последний кадр
// вместе с цветом, которым его рисовать
func simulate(p params, log *logger.ZapLogger) (piecewise.Frame, colorful.Color, error) {
	scene, err := piecewise.NewScene(p.Config, p.Width, p.Height, log)
	if err != nil {
		return piecewise.Frame{}, colorful.Color{}, err
	}

	colors := render.NewCycle(render.ColorLoop(p.Config.NColors), p.Config.ColorIterations(), 0)

	var frame piecewise.Frame
	stale := 0
	for n := 0; n < p.Frames; n++ {
		frame = scene.Step()
		if frame.Stale {
			stale++
		}
		if n+1 < p.Frames {
			colors.Next()
		}
	}
	log.Info("[app] simulated",
		zap.Int("frames", p.Frames),
		zap.Int("stale", stale),
		zap.Int("crosses", frame.Stats.Crosses),
		zap.Int("restarts", frame.Stats.Restarts))
	return frame, colors.Color(), nil
}

func newLogger(verbose bool) *logger.ZapLogger {
	if verbose {
		return logger.New()
	}
	return logger.NewWithLevel(zap.InfoLevel)
}

// http обработчик страницы с графиком и формой для ввода данных
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	p := defaultParams()
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var err error
		if p, err = parseParams(r.PostForm); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	log := newLogger(p.Verbose)
	defer log.ClearLogs()

	frame, col, err := simulate(p, log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scatter := render.Chart(frame, col)

	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		log.Error("[app] chart render failed", zap.Error(err))
	}

	fmt.Fprintf(w, static.Preview, p.query())
	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	log.UpdateLogs()
	for _, l := range log.Logs {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, static.Part3)
}

// frameHandler отдает последний кадр картинкой
func frameHandler(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame, col, err := simulate(p, logger.Nop())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st := render.DefaultStyle()
	st.Foreground = col
	img := render.Rasterize(frame, st)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", diagramHandler)
	mux.HandleFunc("/frame.png", frameHandler)
	return mux
}

func main() {
	log := logger.NewWithLevel(zap.InfoLevel)
	fmt.Println("Сервер запущен на http://localhost:8080")
	if err := http.ListenAndServe(":8080", newMux()); err != nil {
		log.Error("[app] ListenAndServe", zap.Error(err))
		log.UpdateLogs()
		fmt.Println(log.String())
	}
}
