// Package usgs implements domain.FeedClient against the USGS FDSN event
// service, plus a TTL cache decorator for it.
package usgs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/yawtalkstechs/earthquake-data-explorer/internal/domain"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/observability"
)

// Client fetches earthquake events from the USGS feed. One request per
// Fetch, bounded by the client timeout; failures surface as
// *domain.FetchError with no automatic retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client. The circuit breaker fails fast during
// feed outages; it never re-issues a request.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "usgs-feed",
		MaxRequests: 3,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: cb,
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch issues one GET against the feed and decodes the GeoJSON payload.
// The payload's schema is not validated here; malformed individual records
// are the normalizer's concern.
func (c *Client) Fetch(ctx context.Context, params domain.QueryParameters) (*domain.FeedPayload, error) {
	fullURL := c.baseURL + "?" + c.buildQuery(params).Encode()

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, fullURL)
	})
	c.metrics.FeedRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.FeedRequests.WithLabelValues("error").Inc()
		c.logger.Warn("feed request failed",
			"window", params.Window,
			"magnitude", params.Magnitude,
			"limit", params.Limit,
			"error", err,
		)
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return nil, fetchErr
		}
		// Breaker-open still means the feed is unreachable for this cycle.
		return nil, &domain.FetchError{Err: err}
	}

	c.metrics.FeedRequests.WithLabelValues("success").Inc()
	return result.(*domain.FeedPayload), nil
}

// buildQuery translates the parameter tuple into feed query parameters:
// fixed geojson format and time ordering, the result limit, an ISO-8601
// starttime lower bound for bounded windows, and minmagnitude for the min_*
// filter variants only.
func (c *Client) buildQuery(params domain.QueryParameters) url.Values {
	values := url.Values{
		"format":  {"geojson"},
		"orderby": {"time"},
		"limit":   {strconv.Itoa(params.Limit)},
	}
	if lookback, ok := params.Lookback(); ok {
		startTime := c.clock.Now().UTC().Add(-lookback)
		values.Set("starttime", startTime.Format(time.RFC3339))
	}
	if minMag, ok := params.MinMagnitude(); ok {
		values.Set("minmagnitude", strconv.FormatFloat(minMag, 'f', 1, 64))
	}
	return values
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*domain.FeedPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.FetchError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", body),
		}
	}

	var payload domain.FeedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("decode payload: %w", err)}
	}
	return &payload, nil
}
