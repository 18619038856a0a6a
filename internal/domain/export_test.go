package domain

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	depth := 10.1617
	place := "12 km SSE of Ridgecrest, CA"
	quakes := []Earthquake{
		{
			Magnitude: 6.1234,
			Place:     &place,
			Time:      time.Date(2026, 7, 3, 8, 15, 42, 0, time.Local),
			Longitude: -122.41941,
			Latitude:  37.77493,
			DepthKm:   &depth,
			Tsunami:   1,
		},
		{
			Magnitude: 2.5,
			Time:      time.Date(2026, 7, 3, 9, 0, 0, 0, time.Local),
			Longitude: 10,
			Latitude:  20,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, quakes))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"time", "magnitude", "place", "latitude", "longitude", "depth", "tsunami"}, records[0])
	assert.Equal(t, []string{"2026-07-03 08:15:42", "6.12", place, "37.7749", "-122.4194", "10.2", "1"}, records[1])
	assert.Equal(t, []string{"2026-07-03 09:00:00", "2.50", "", "20.0000", "10.0000", "", "0"}, records[2],
		"unknown place and depth serialize as blank, never 0")
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

// Re-importing the export reproduces the displayed rounded values exactly.
func TestWriteCSV_RoundTrip(t *testing.T) {
	depth := 33.04
	quakes := []Earthquake{{
		Magnitude: 4.567,
		Time:      time.Date(2026, 1, 15, 23, 59, 59, 0, time.Local),
		Longitude: -71.12345,
		Latitude:  -33.98765,
		DepthKm:   &depth,
	}}

	var first bytes.Buffer
	require.NoError(t, WriteCSV(&first, quakes))

	var second bytes.Buffer
	require.NoError(t, WriteCSV(&second, quakes))

	assert.Equal(t, first.String(), second.String())

	records, err := csv.NewReader(strings.NewReader(first.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "4.57", records[1][1])
	assert.Equal(t, "-33.9877", records[1][3])
	assert.Equal(t, "-71.1235", records[1][4])
	assert.Equal(t, "33.0", records[1][5])
}
