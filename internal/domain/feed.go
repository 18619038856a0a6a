package domain

import (
	"context"
	"fmt"
)

// FeedClient fetches a raw payload from the upstream event feed.
type FeedClient interface {
	Fetch(ctx context.Context, params QueryParameters) (*FeedPayload, error)
}

// FetchError is the terminal failure for one fetch cycle: a transport error,
// timeout, non-2xx response, or an unparseable response document. It is
// surfaced to the user as a non-fatal message; there is no automatic retry.
type FetchError struct {
	Status int // HTTP status, 0 when the request never completed
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("feed request failed: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("feed request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FeedPayload is the decoded GeoJSON feature collection. Only the fields the
// normalizer reads are decoded; the schema is not otherwise validated at the
// client boundary.
type FeedPayload struct {
	Features []Feature `json:"features"`
}

// Feature is one raw event record. Property fields are pointers because the
// feed omits or nulls them freely; defaulting rules live in [Normalize].
type Feature struct {
	Properties FeatureProperties `json:"properties"`
	Geometry   FeatureGeometry   `json:"geometry"`
}

type FeatureProperties struct {
	Mag     *float64 `json:"mag"`
	Place   *string  `json:"place"`
	Time    *int64   `json:"time"` // epoch milliseconds
	URL     *string  `json:"url"`
	Tsunami *int     `json:"tsunami"`
	Sig     *int     `json:"sig"`
	Alert   *string  `json:"alert"`
	Felt    *int     `json:"felt"`
	CDI     *float64 `json:"cdi"`
	MMI     *float64 `json:"mmi"`
}

// FeatureGeometry carries the [longitude, latitude, depth] triple. The feed
// sometimes sends fewer than three elements.
type FeatureGeometry struct {
	Coordinates []float64 `json:"coordinates"`
}
