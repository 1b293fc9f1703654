// Package perfcache memoizes issuer performance series for the lifetime of
// the process. Both backing resources are fetched lazily on first request,
// and concurrent first requests share a single in-flight fetch.
package perfcache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"CapitolPulse/internal/domain/models"
	"CapitolPulse/internal/loader"
	"CapitolPulse/internal/normalize"
)

const (
	performanceKey = "performance"
	benchmarkKey   = "benchmark"
)

// Metrics records cache outcomes. May be nil.
type Metrics interface {
	RecordCacheHit(cache string)
	RecordCacheMiss(cache string)
}

// ErrSeriesNotFound is returned when an issuer has no performance data.
var ErrSeriesNotFound = fmt.Errorf("perfcache: no series for issuer")

// Cache serves per-issuer performance series and the index benchmark
// series. Successful loads are kept until Clear; failures are surfaced to
// every waiting caller and never cached, so the next request retries.
type Cache struct {
	loader      *loader.Loader
	metrics     Metrics
	benchmarkID string

	group singleflight.Group

	mu        sync.RWMutex
	series    map[string]models.PerformanceSeries
	benchmark *models.PerformanceSeries
}

// New creates an empty cache. benchmarkID is the issuer id the benchmark
// resource is published under.
func New(l *loader.Loader, metrics Metrics, benchmarkID string) *Cache {
	return &Cache{loader: l, metrics: metrics, benchmarkID: benchmarkID}
}

// Series returns the performance series for one issuer, fetching the
// performance resource on first use.
func (c *Cache) Series(ctx context.Context, issuerID string) (models.PerformanceSeries, error) {
	c.mu.RLock()
	byIssuer := c.series
	c.mu.RUnlock()

	if byIssuer == nil {
		c.recordMiss(performanceKey)
		v, err, _ := c.group.Do(performanceKey, func() (interface{}, error) {
			raw, err := c.loader.Performance(ctx)
			if err != nil {
				return nil, err
			}
			m := make(map[string]models.PerformanceSeries, len(raw))
			for _, r := range raw {
				s := normalize.Performance(r)
				m[s.IssuerID] = s
			}
			c.mu.Lock()
			c.series = m
			c.mu.Unlock()
			return m, nil
		})
		// Completed flights are forgotten so a failed fetch is retried by
		// the next caller instead of being served forever.
		c.group.Forget(performanceKey)
		if err != nil {
			return models.PerformanceSeries{}, err
		}
		byIssuer = v.(map[string]models.PerformanceSeries)
	} else {
		c.recordHit(performanceKey)
	}

	s, ok := byIssuer[issuerID]
	if !ok {
		return models.PerformanceSeries{}, fmt.Errorf("%w: %s", ErrSeriesNotFound, issuerID)
	}
	return s, nil
}

// Benchmark returns the index benchmark series, fetching it on first use.
func (c *Cache) Benchmark(ctx context.Context) (models.PerformanceSeries, error) {
	c.mu.RLock()
	cached := c.benchmark
	c.mu.RUnlock()

	if cached != nil {
		c.recordHit(benchmarkKey)
		return *cached, nil
	}

	c.recordMiss(benchmarkKey)
	v, err, _ := c.group.Do(benchmarkKey, func() (interface{}, error) {
		raw, err := c.loader.Benchmark(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			s := normalize.Performance(r)
			if s.IssuerID == c.benchmarkID {
				c.mu.Lock()
				c.benchmark = &s
				c.mu.Unlock()
				return s, nil
			}
		}
		return nil, fmt.Errorf("%w: benchmark %s", ErrSeriesNotFound, c.benchmarkID)
	})
	c.group.Forget(benchmarkKey)
	if err != nil {
		return models.PerformanceSeries{}, err
	}
	return v.(models.PerformanceSeries), nil
}

// Clear drops everything cached. Meant for tests and manual refresh.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.series = nil
	c.benchmark = nil
	c.mu.Unlock()
}

func (c *Cache) recordHit(name string) {
	if c.metrics != nil {
		c.metrics.RecordCacheHit(name)
	}
}

func (c *Cache) recordMiss(name string) {
	if c.metrics != nil {
		c.metrics.RecordCacheMiss(name)
	}
}
