package domain

import "time"

// Earthquake is one normalized row of the dashboard table. Magnitude,
// Longitude, and Latitude are always present; features missing any of them
// never reach this type. Nil pointer fields mean the feed did not report the
// value.
type Earthquake struct {
	Magnitude    float64   `json:"magnitude"`
	Place        *string   `json:"place"`
	Time         time.Time `json:"time"`
	Longitude    float64   `json:"longitude"`
	Latitude     float64   `json:"latitude"`
	DepthKm      *float64  `json:"depth_km"`
	DetailURL    *string   `json:"detail_url"`
	Tsunami      int       `json:"tsunami"`
	Significance int       `json:"significance"`
	Alert        *string   `json:"alert"`
	Felt         int       `json:"felt"`
	CDI          *float64  `json:"cdi"`
	MMI          *float64  `json:"mmi"`
}
