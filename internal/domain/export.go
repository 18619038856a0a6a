package domain

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader matches the dashboard table's visible columns.
var csvHeader = []string{"time", "magnitude", "place", "latitude", "longitude", "depth", "tsunami"}

// WriteCSV serializes rows in display form: timestamps as local
// "YYYY-MM-DD HH:MM:SS", magnitude to 2 decimal places, latitude and
// longitude to 4, depth to 1 (blank when unknown). The export is lossy only
// with respect to this rounding.
func WriteCSV(w io.Writer, quakes []Earthquake) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, q := range quakes {
		var place string
		if q.Place != nil {
			place = *q.Place
		}
		var depth string
		if q.DepthKm != nil {
			depth = strconv.FormatFloat(*q.DepthKm, 'f', 1, 64)
		}

		record := []string{
			q.Time.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(q.Magnitude, 'f', 2, 64),
			place,
			strconv.FormatFloat(q.Latitude, 'f', 4, 64),
			strconv.FormatFloat(q.Longitude, 'f', 4, 64),
			depth,
			strconv.Itoa(q.Tsunami),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
