package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
	"go.uber.org/multierr"
)

// params описывает запрос страницы или кадра
type params struct {
	Width, Height int
	Frames        int
	Verbose       bool
	Config        piecewise.Config
}

// пределы для запросов, иначе /frame.png выделит сколько угодно памяти
const (
	maxFrames = 1000
	maxSide   = 5000
	maxCount  = 500
)

func defaultParams() params {
	return params{
		Width:  1000,
		Height: 580,
		Frames: 1,
		Config: piecewise.DefaultConfig(),
	}
}

// parseParams читает поля формы; пустое поле оставляет значение по умолчанию
func parseParams(values url.Values) (params, error) {
	p := defaultParams()
	var err error

	atoi := func(name string, dst *int) {
		if s := values.Get(name); s != "" {
			v, e := strconv.Atoi(s)
			if e != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", name, e))
				return
			}
			*dst = v
		}
	}
	atof := func(name string, dst *float64) {
		if s := values.Get(name); s != "" {
			v, e := strconv.ParseFloat(s, 64)
			if e != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", name, e))
				return
			}
			*dst = v
		}
	}

	atoi("width", &p.Width)
	atoi("height", &p.Height)
	atoi("frames", &p.Frames)
	atoi("count", &p.Config.Count)
	atoi("speed", &p.Config.Speed)
	atof("minradius", &p.Config.MinRadius)
	atof("maxradius", &p.Config.MaxRadius)
	if s := values.Get("seed"); s != "" {
		v, e := strconv.ParseInt(s, 10, 64)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("seed: %w", e))
		} else {
			p.Config.Seed = v
		}
	}
	p.Verbose = values.Get("verbose") == "true"

	inRange := func(name string, v, lo, hi int) {
		if v < lo || v > hi {
			err = multierr.Append(err, fmt.Errorf("%s %d out of range [%d, %d]", name, v, lo, hi))
		}
	}
	inRange("frames", p.Frames, 1, maxFrames)
	inRange("width", p.Width, 1, maxSide)
	inRange("height", p.Height, 1, maxSide)
	inRange("count", p.Config.Count, 0, maxCount)
	return p, err
}

// query кодирует параметры обратно для ссылки на /frame.png
func (p params) query() string {
	v := url.Values{}
	v.Set("width", strconv.Itoa(p.Width))
	v.Set("height", strconv.Itoa(p.Height))
	v.Set("frames", strconv.Itoa(p.Frames))
	v.Set("count", strconv.Itoa(p.Config.Count))
	v.Set("speed", strconv.Itoa(p.Config.Speed))
	v.Set("minradius", strconv.FormatFloat(p.Config.MinRadius, 'g', -1, 64))
	v.Set("maxradius", strconv.FormatFloat(p.Config.MaxRadius, 'g', -1, 64))
	v.Set("seed", strconv.FormatInt(p.Config.Seed, 10))
	return v.Encode()
}
