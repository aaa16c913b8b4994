package render

import (
	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/lucasb-eyer/go-colorful"
)

// sampleStep is the angular distance between two chart points of an arc.
const sampleStep piecewise.Angle = 5 * 64

func prepareScatter(scatter *charts.Scatter, frame piecewise.Frame) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Видимые дуги окружностей",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			Min:  0,
			Max:  frame.Width,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			Min:  0,
			Max:  frame.Height,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// ArcPoints samples arc of shape in chart coordinates, where y grows
// upwards.
func ArcPoints(frame piecewise.Frame, shape piecewise.Shape, arc piecewise.Arc) [][2]float64 {
	var pts [][2]float64
	for a := arc.Start; ; a += sampleStep {
		if a > arc.End {
			a = arc.End
		}
		pts = append(pts, chartPoint(frame, shape, a))
		if a == arc.End {
			break
		}
	}
	return pts
}

func chartPoint(frame piecewise.Frame, shape piecewise.Shape, a piecewise.Angle) [2]float64 {
	x, y := polar(shape, a)
	return [2]float64{x, float64(frame.Height) - y}
}

// Chart plots the circle centres of frame and overlaps one line per
// visible arc, drawn in col.
func Chart(frame piecewise.Frame, col colorful.Color) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, len(frame.Shapes))
	for _, shape := range frame.Shapes {
		points = append(points, opts.ScatterData{
			Value: []float64{shape.X, float64(frame.Height) - shape.Y},
		})
	}

	prepareScatter(scatter, frame)

	scatter.AddSeries("Центры", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, shape := range frame.Shapes {
		for _, arc := range shape.Arcs {
			if !arc.Visible {
				continue
			}
			line := charts.NewLine()
			line.SetGlobalOptions(
				charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
				charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
			)

			pts := ArcPoints(frame, shape, arc)
			data := make([]opts.LineData, 0, len(pts))
			for _, p := range pts {
				data = append(data, opts.LineData{Value: []float64{p[0], p[1]}})
			}
			line.AddSeries("Дуги", data).SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{
					Width: 2,
					Color: col.Hex(),
				}),
			)

			scatter.Overlap(line)
		}
	}

	return scatter
}
