package domain

import (
	"sort"
	"time"
)

// Summary holds the four scalar statistics displayed above the dashboard
// table. The presentation layer shows these; it does not compute them.
type Summary struct {
	Count         int     `json:"count"`
	MaxMagnitude  float64 `json:"max_magnitude"`
	MeanMagnitude float64 `json:"mean_magnitude"`
	LastDayCount  int     `json:"last_24h_count"`
}

// Summarize computes table-level statistics. The trailing-24-hour count is
// measured against the package clock so tests can freeze it. An empty input
// yields a zero Summary.
func Summarize(quakes []Earthquake) Summary {
	s := Summary{Count: len(quakes)}
	if len(quakes) == 0 {
		return s
	}

	cutoff := clock.Now().Add(-24 * time.Hour)
	s.MaxMagnitude = quakes[0].Magnitude
	var sum float64
	for _, q := range quakes {
		sum += q.Magnitude
		if q.Magnitude > s.MaxMagnitude {
			s.MaxMagnitude = q.Magnitude
		}
		if q.Time.After(cutoff) {
			s.LastDayCount++
		}
	}
	s.MeanMagnitude = sum / float64(len(quakes))
	return s
}

// Largest returns a copy of the highest-magnitude row, or nil for an empty
// set. Ties keep the earliest-listed row, matching feed order.
func Largest(quakes []Earthquake) *Earthquake {
	if len(quakes) == 0 {
		return nil
	}
	best := quakes[0]
	for _, q := range quakes[1:] {
		if q.Magnitude > best.Magnitude {
			best = q
		}
	}
	return &best
}

// SortedByTime returns a copy sorted by occurrence time ascending, for
// timeline views. The input slice is left in feed order.
func SortedByTime(quakes []Earthquake) []Earthquake {
	out := make([]Earthquake, len(quakes))
	copy(out, quakes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out
}
