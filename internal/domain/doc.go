// Package domain models earthquake event data from the USGS FDSN event service.
//
// # Data Source
//
// Events come from the USGS Earthquake Hazards Program query endpoint at
// https://earthquake.usgs.gov/fdsnws/event/1/query, requested as GeoJSON.
// Each response is a feature collection; one feature is one earthquake, with
// a "properties" object and a "geometry" object.
//
// # Feed Conventions
//
// Properties (all optional; the feed omits or nulls fields freely):
//
//	mag      magnitude, decimal; may be negative for micro-events
//	place    human-readable location, e.g. "12 km SSE of Ridgecrest, CA"
//	time     origin time in epoch milliseconds
//	url      event detail page
//	tsunami  0/1 flag set when a tsunami message was issued
//	sig      significance score 0–1000, derived by USGS from magnitude,
//	         PAGER alert level, felt reports, and estimated impact
//	alert    PAGER alert level: "green", "yellow", "orange", "red"
//	felt     number of "Did You Feel It?" reports
//	cdi      maximum reported community intensity
//	mmi      maximum estimated instrumental intensity
//
// Geometry:
//
//	coordinates  [longitude, latitude, depth-in-km]; the feed sometimes
//	             sends fewer than three elements, so depth is genuinely
//	             optional and an absent depth is not the same as 0 km.
//
// # Significant Events
//
// USGS publishes a "significant events" feed selected by sig >= 600. The
// query endpoint has no matching parameter, so the significant variant is
// applied here as a post-fetch predicate over normalized rows, with the
// threshold kept configurable. See [Normalize].
//
// # Normalization Rules
//
// A feature becomes a row only when magnitude, longitude, and latitude are
// all present; anything else is dropped, never null-padded. Absent tsunami,
// sig, and felt values default to 0. An absent origin time defaults to epoch
// milliseconds 0. Depth stays nil when the coordinate triple is short. Feed
// ordering is preserved; [SortedByTime] exists for consumers that want an
// explicit timeline order.
package domain
