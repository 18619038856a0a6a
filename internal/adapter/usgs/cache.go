package usgs

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/yawtalkstechs/earthquake-data-explorer/internal/domain"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/observability"
)

// CachedClient wraps a FeedClient with a time-to-live cache keyed by the
// full serialized parameter tuple. Entries expire by age, checked at call
// time; a hit within the TTL returns the stored payload without a network
// call. Concurrent identical requests coalesce into one upstream call.
type CachedClient struct {
	inner   domain.FeedClient
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]cacheEntry

	flight singleflight.Group
}

type cacheEntry struct {
	payload   *domain.FeedPayload
	fetchedAt time.Time
}

// NewCachedClient creates a TTL cache decorator around a feed client.
func NewCachedClient(inner domain.FeedClient, ttl time.Duration, metrics *observability.Metrics) *CachedClient {
	return &CachedClient{
		inner:   inner,
		ttl:     ttl,
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		entries: make(map[string]cacheEntry),
	}
}

// SetClock swaps the cache's time source. Pass nil to reset to real time.
func (c *CachedClient) SetClock(clk clockwork.Clock) {
	if clk == nil {
		c.clock = clockwork.NewRealClock()
		return
	}
	c.clock = clk
}

func (c *CachedClient) Fetch(ctx context.Context, params domain.QueryParameters) (*domain.FeedPayload, error) {
	key := params.CacheKey()

	if payload, ok := c.lookup(key); ok {
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return payload, nil
	}
	c.metrics.CacheLookups.WithLabelValues("miss").Inc()

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		// A coalesced caller may have filled the entry between the miss and
		// this point.
		if payload, ok := c.lookup(key); ok {
			return payload, nil
		}
		payload, err := c.inner.Fetch(ctx, params)
		if err != nil {
			// Failures are never cached; the next interaction retriggers
			// a real fetch.
			return nil, err
		}
		c.store(key, payload)
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.FeedPayload), nil
}

func (c *CachedClient) lookup(key string) (*domain.FeedPayload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Since(e.fetchedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

func (c *CachedClient) store(key string, payload *domain.FeedPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{payload: payload, fetchedAt: c.clock.Now()}
}
