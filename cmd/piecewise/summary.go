package main

import (
	"fmt"
	"io"

	"github.com/0x0FACED/go-piecewise/pkg/piecewise"
)

// summary accumulates sweep statistics over frames.
type summary struct {
	frames int
	stale  int
	total  piecewise.Stats
	worst  int // most restarts in one frame
}

func (s *summary) add(frame piecewise.Frame) {
	s.frames++
	if frame.Stale {
		s.stale++
	}
	s.total.Events += frame.Stats.Events
	s.total.Crosses += frame.Stats.Crosses
	s.total.Restarts += frame.Stats.Restarts
	s.total.Tweaks += frame.Stats.Tweaks
	if frame.Stats.Restarts > s.worst {
		s.worst = frame.Stats.Restarts
	}
}

func (s *summary) print(w io.Writer) {
	per := func(n int) float64 {
		if s.frames == 0 {
			return 0
		}
		return float64(n) / float64(s.frames)
	}
	fmt.Fprintf(w, "frames:   %d (%d stale)\n", s.frames, s.stale)
	fmt.Fprintf(w, "events:   %d (%.1f per frame)\n", s.total.Events, per(s.total.Events))
	fmt.Fprintf(w, "crosses:  %d (%.1f per frame)\n", s.total.Crosses, per(s.total.Crosses))
	fmt.Fprintf(w, "restarts: %d (at most %d in one frame)\n", s.total.Restarts, s.worst)
	fmt.Fprintf(w, "tweaks:   %d\n", s.total.Tweaks)
}
