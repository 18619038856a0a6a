package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quakeAt(mag float64, ts time.Time) Earthquake {
	return Earthquake{Magnitude: mag, Longitude: 1, Latitude: 2, Time: ts}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	t.Run("empty set", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, Summary{}, s)
	})

	t.Run("count, max, mean, last 24h", func(t *testing.T) {
		quakes := []Earthquake{
			quakeAt(2.0, now.Add(-2*time.Hour)),
			quakeAt(6.0, now.Add(-30*time.Hour)),
			quakeAt(4.0, now.Add(-23*time.Hour)),
		}

		s := Summarize(quakes)

		assert.Equal(t, 3, s.Count)
		assert.Equal(t, 6.0, s.MaxMagnitude)
		assert.Equal(t, 4.0, s.MeanMagnitude)
		assert.Equal(t, 2, s.LastDayCount)
	})

	t.Run("all-negative magnitudes", func(t *testing.T) {
		quakes := []Earthquake{
			quakeAt(-0.5, now),
			quakeAt(-1.2, now),
		}

		s := Summarize(quakes)

		assert.Equal(t, -0.5, s.MaxMagnitude, "max must not default to 0 when magnitudes are negative")
	})
}

func TestLargest(t *testing.T) {
	assert.Nil(t, Largest(nil))

	quakes := []Earthquake{
		quakeAt(3.0, time.UnixMilli(1)),
		quakeAt(5.5, time.UnixMilli(2)),
		quakeAt(5.5, time.UnixMilli(3)),
		quakeAt(1.0, time.UnixMilli(4)),
	}

	largest := Largest(quakes)
	require.NotNil(t, largest)
	assert.Equal(t, 5.5, largest.Magnitude)
	assert.Equal(t, time.UnixMilli(2), largest.Time, "ties keep the earliest-listed row")
}

func TestSortedByTime(t *testing.T) {
	quakes := []Earthquake{
		quakeAt(1.0, time.UnixMilli(300)),
		quakeAt(2.0, time.UnixMilli(100)),
		quakeAt(3.0, time.UnixMilli(200)),
	}

	sorted := SortedByTime(quakes)

	require.Len(t, sorted, 3)
	assert.Equal(t, time.UnixMilli(100), sorted[0].Time)
	assert.Equal(t, time.UnixMilli(200), sorted[1].Time)
	assert.Equal(t, time.UnixMilli(300), sorted[2].Time)

	// Original slice keeps feed order.
	assert.Equal(t, time.UnixMilli(300), quakes[0].Time)
}
