package domain

import "time"

// DefaultSignificanceThreshold mirrors the informal USGS convention for
// selecting "significant" events. Kept configurable; see config.
const DefaultSignificanceThreshold = 600

// Normalize flattens a raw feed payload into earthquake rows.
//
// It is a pure function of its inputs and never errors: a nil payload or an
// absent feature list yields an empty slice, so "no data" renders as an empty
// table rather than a failure. Feed ordering is preserved. Rows missing
// magnitude, longitude, or latitude are dropped outright; the second return
// value reports how many, for diagnostics.
//
// When filter is MagnitudeSignificant, rows are additionally narrowed to
// significance >= sigThreshold after construction. That is the only filtering
// done here — time and minimum-magnitude constraints were already encoded in
// the feed query and are deliberately not recomputed, since feed-side
// filtering may differ subtly from a local reapplication.
func Normalize(payload *FeedPayload, filter MagnitudeFilter, sigThreshold int) ([]Earthquake, int) {
	if payload == nil || payload.Features == nil {
		return []Earthquake{}, 0
	}

	rows := make([]Earthquake, 0, len(payload.Features))
	dropped := 0
	for _, f := range payload.Features {
		row, ok := normalizeFeature(f)
		if !ok {
			dropped++
			continue
		}
		if filter == MagnitudeSignificant && row.Significance < sigThreshold {
			continue
		}
		rows = append(rows, row)
	}
	return rows, dropped
}

// normalizeFeature maps one raw feature onto a row. Defaulting: tsunami,
// significance, and felt become 0 when absent; an absent origin time becomes
// epoch milliseconds 0; depth stays nil when the coordinate triple is short,
// because "unknown depth" is not "zero depth".
func normalizeFeature(f Feature) (Earthquake, bool) {
	coords := f.Geometry.Coordinates
	if f.Properties.Mag == nil || len(coords) < 2 {
		return Earthquake{}, false
	}

	row := Earthquake{
		Magnitude:    *f.Properties.Mag,
		Place:        f.Properties.Place,
		Time:         time.UnixMilli(millisOrZero(f.Properties.Time)),
		Longitude:    coords[0],
		Latitude:     coords[1],
		DetailURL:    f.Properties.URL,
		Tsunami:      intOrZero(f.Properties.Tsunami),
		Significance: intOrZero(f.Properties.Sig),
		Alert:        f.Properties.Alert,
		Felt:         intOrZero(f.Properties.Felt),
		CDI:          f.Properties.CDI,
		MMI:          f.Properties.MMI,
	}
	if len(coords) > 2 {
		depth := coords[2]
		row.DepthKm = &depth
	}
	return row, true
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func millisOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
