package httpapi

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yawtalkstechs/earthquake-data-explorer/internal/domain"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/explorer"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/observability"
)

type stubFeedClient struct {
	payload *domain.FeedPayload
	err     error
	params  domain.QueryParameters
}

func (s *stubFeedClient) Fetch(_ context.Context, params domain.QueryParameters) (*domain.FeedPayload, error) {
	s.params = params
	return s.payload, s.err
}

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func testServer(feed domain.FeedClient) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := explorer.New(feed, domain.DefaultSignificanceThreshold, logger, observability.NewMetricsForTesting())
	return NewServer(":0", svc, svc, observability.NewMetricsForTesting(), logger)
}

func testPayload() *domain.FeedPayload {
	return &domain.FeedPayload{Features: []domain.Feature{{
		Properties: domain.FeatureProperties{Mag: floatPtr(5.1), Time: int64Ptr(1720000000000)},
		Geometry:   domain.FeatureGeometry{Coordinates: []float64{-122.4, 37.8, 12.0}},
	}}}
}

func TestGetEarthquakes(t *testing.T) {
	feed := &stubFeedClient{payload: testPayload()}
	srv := testServer(feed)

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/api/v1/earthquakes", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result explorer.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.Len(t, result.Earthquakes, 1)
	assert.Equal(t, 5.1, result.Earthquakes[0].Magnitude)
	assert.Equal(t, 1, result.Summary.Count)
	require.NotNil(t, result.Largest)

	// Defaults mirror the original dashboard controls.
	assert.Equal(t, domain.WindowLastWeek, feed.params.Window)
	assert.Equal(t, domain.MagnitudeMin45, feed.params.Magnitude)
	assert.Equal(t, 100, feed.params.Limit)
}

func TestGetEarthquakes_ExplicitParameters(t *testing.T) {
	feed := &stubFeedClient{payload: testPayload()}
	srv := testServer(feed)

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet,
		"/api/v1/earthquakes?window=last_hour&magnitude=significant&limit=50", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, domain.WindowLastHour, feed.params.Window)
	assert.Equal(t, domain.MagnitudeSignificant, feed.params.Magnitude)
	assert.Equal(t, 50, feed.params.Limit)
}

func TestGetEarthquakes_Validation(t *testing.T) {
	srv := testServer(&stubFeedClient{payload: testPayload()})

	for _, target := range []string{
		"/api/v1/earthquakes?window=fortnight",
		"/api/v1/earthquakes?magnitude=min_9_0",
		"/api/v1/earthquakes?limit=5",
		"/api/v1/earthquakes?limit=2000",
	} {
		resp, err := srv.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
	}
}

func TestGetEarthquakes_FeedFailure(t *testing.T) {
	feed := &stubFeedClient{err: &domain.FetchError{Err: errors.New("timeout")}}
	srv := testServer(feed)

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/api/v1/earthquakes", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGetEarthquakes_EmptyResultIsNotAnError(t *testing.T) {
	feed := &stubFeedClient{payload: &domain.FeedPayload{Features: []domain.Feature{}}}
	srv := testServer(feed)

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/api/v1/earthquakes", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result explorer.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Empty(t, result.Earthquakes)
	assert.Equal(t, 0, result.Summary.Count)
}

func TestExport(t *testing.T) {
	feed := &stubFeedClient{payload: testPayload()}
	srv := testServer(feed)

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/api/v1/earthquakes/export", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "earthquake_data_")

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "time", records[0][0])
	assert.Equal(t, "5.10", records[1][1])
}

func TestExport_FeedFailure(t *testing.T) {
	feed := &stubFeedClient{err: &domain.FetchError{Err: errors.New("down")}}
	srv := testServer(feed)

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/api/v1/earthquakes/export", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHealthAndReadiness(t *testing.T) {
	feed := &stubFeedClient{payload: testPayload()}
	srv := testServer(feed)

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Not ready until a fetch has succeeded.
	resp, err = srv.Test(httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = srv.Test(httptest.NewRequest(http.MethodGet, "/api/v1/earthquakes", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Test(httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(&stubFeedClient{payload: testPayload()})

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
