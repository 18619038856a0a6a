// Package explorer orchestrates one dashboard query cycle: fetch the raw
// feed payload, normalize it into rows, and derive summary statistics.
package explorer

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/yawtalkstechs/earthquake-data-explorer/internal/domain"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/observability"
)

// Result is one complete query cycle's output for the presentation layer.
type Result struct {
	Earthquakes []domain.Earthquake `json:"earthquakes"`
	Summary     domain.Summary      `json:"summary"`
	Largest     *domain.Earthquake  `json:"largest,omitempty"`
	DroppedRows int                 `json:"dropped_rows"`
}

// Service ties the feed client and the normalizer together. One fetch, one
// normalization pass, one summary per UI interaction; no background work.
type Service struct {
	feed         domain.FeedClient
	sigThreshold int
	logger       *slog.Logger
	metrics      *observability.Metrics
	ready        atomic.Bool
}

// New creates a Service. sigThreshold selects "significant" events; see
// domain.DefaultSignificanceThreshold.
func New(feed domain.FeedClient, sigThreshold int, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		feed:         feed,
		sigThreshold: sigThreshold,
		logger:       logger,
		metrics:      metrics,
	}
}

// Explore runs one fetch-normalize-summarize cycle. A feed failure is
// terminal for the cycle: the normalizer is never invoked and the error
// propagates to the caller. An empty row set is a valid result, not an
// error.
func (s *Service) Explore(ctx context.Context, params domain.QueryParameters) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	payload, err := s.feed.Fetch(ctx, params)
	if err != nil {
		return Result{}, err
	}
	s.ready.Store(true)

	rows, dropped := domain.Normalize(payload, params.Magnitude, s.sigThreshold)
	s.metrics.RowsNormalized.Add(float64(len(rows)))
	s.metrics.RowsDropped.Add(float64(dropped))
	if dropped > 0 {
		s.logger.Debug("dropped rows missing magnitude or coordinates",
			"dropped", dropped,
			"kept", len(rows),
		)
	}

	return Result{
		Earthquakes: rows,
		Summary:     domain.Summarize(rows),
		Largest:     domain.Largest(rows),
		DroppedRows: dropped,
	}, nil
}

// CheckReadiness reports ready once at least one feed fetch has succeeded.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no successful feed fetch yet")
	}
	return nil
}
