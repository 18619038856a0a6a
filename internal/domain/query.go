package domain

import (
	"fmt"
	"time"
)

// TimeWindow selects how far back a feed query reaches.
type TimeWindow string

const (
	WindowAll       TimeWindow = "all"
	WindowLastHour  TimeWindow = "last_hour"
	WindowLastDay   TimeWindow = "last_day"
	WindowLastWeek  TimeWindow = "last_week"
	WindowLastMonth TimeWindow = "last_month"
)

// MagnitudeFilter selects which events a query is interested in. The min_*
// variants translate to a feed-side minmagnitude parameter; "significant"
// queries the feed unfiltered and is narrowed after normalization instead,
// because the feed has no native significance query term.
type MagnitudeFilter string

const (
	MagnitudeAll         MagnitudeFilter = "all"
	MagnitudeSignificant MagnitudeFilter = "significant"
	MagnitudeMin45       MagnitudeFilter = "min_4_5"
	MagnitudeMin25       MagnitudeFilter = "min_2_5"
	MagnitudeMin10       MagnitudeFilter = "min_1_0"
)

// Result limit bounds, matching the dashboard's slider range.
const (
	MinLimit = 10
	MaxLimit = 1000
)

// QueryParameters describes one fetch against the feed. Constructed once per
// UI interaction and treated as an immutable value.
type QueryParameters struct {
	Window    TimeWindow
	Magnitude MagnitudeFilter
	Limit     int
}

// Validate reports whether the parameter tuple is well-formed.
func (p QueryParameters) Validate() error {
	switch p.Window {
	case WindowAll, WindowLastHour, WindowLastDay, WindowLastWeek, WindowLastMonth:
	default:
		return fmt.Errorf("invalid time window %q", p.Window)
	}
	switch p.Magnitude {
	case MagnitudeAll, MagnitudeSignificant, MagnitudeMin45, MagnitudeMin25, MagnitudeMin10:
	default:
		return fmt.Errorf("invalid magnitude filter %q", p.Magnitude)
	}
	if p.Limit < MinLimit || p.Limit > MaxLimit {
		return fmt.Errorf("limit %d out of range [%d, %d]", p.Limit, MinLimit, MaxLimit)
	}
	return nil
}

// Lookback returns the time-window lower-bound duration and whether one
// applies. WindowAll queries without a lower bound.
func (p QueryParameters) Lookback() (time.Duration, bool) {
	switch p.Window {
	case WindowLastHour:
		return time.Hour, true
	case WindowLastDay:
		return 24 * time.Hour, true
	case WindowLastWeek:
		return 7 * 24 * time.Hour, true
	case WindowLastMonth:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// MinMagnitude returns the feed-side minimum magnitude and whether one
// applies. Both "all" and "significant" omit the parameter.
func (p QueryParameters) MinMagnitude() (float64, bool) {
	switch p.Magnitude {
	case MagnitudeMin45:
		return 4.5, true
	case MagnitudeMin25:
		return 2.5, true
	case MagnitudeMin10:
		return 1.0, true
	default:
		return 0, false
	}
}

// CacheKey serializes the full parameter tuple for cache lookups.
func (p QueryParameters) CacheKey() string {
	return fmt.Sprintf("%s|%s|%d", p.Window, p.Magnitude, p.Limit)
}
