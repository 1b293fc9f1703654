// Package loader fetches the raw JSON disclosure documents. One fetch per
// call, no retry: failure handling belongs to the caller, and avoiding
// redundant calls is the cache manager's job for secondary datasets.
package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"CapitolPulse/internal/domain/models"
	xhttp "CapitolPulse/pkg/http"
)

// Metrics records fetch outcomes. Implementations may be nil.
type Metrics interface {
	RecordLoad(resource string, seconds float64)
	RecordLoadError(resource string)
}

// LoadError is a transport failure or non-success status for a resource.
type LoadError struct {
	Resource string
	Status   string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("load %s: %s", e.Resource, e.Status)
	}
	return fmt.Sprintf("load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError is a malformed JSON body. Callers treat it like a LoadError.
type ParseError struct {
	Resource string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Resources names the JSON documents relative to the base URL.
type Resources struct {
	Politicians  string
	Transactions string
	Issuers      string
	Committees   string
	States       string
	Performance  string
	Benchmark    string
}

// Loader fetches and parses raw record arrays.
type Loader struct {
	client    *xhttp.Client
	baseURL   string
	resources Resources
	metrics   Metrics
}

// New creates a loader for the given base URL.
func New(client *xhttp.Client, baseURL string, resources Resources, metrics Metrics) *Loader {
	return &Loader{
		client:    client,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		resources: resources,
		metrics:   metrics,
	}
}

func (l *Loader) load(ctx context.Context, resource string, dest interface{}) error {
	start := time.Now()
	err := l.client.GetJSON(ctx, l.baseURL+"/"+resource, dest)
	if err != nil {
		if l.metrics != nil {
			l.metrics.RecordLoadError(resource)
		}
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return &LoadError{Resource: resource, Status: se.Status, Err: err}
		}
		var de *xhttp.DecodeError
		if errors.As(err, &de) {
			return &ParseError{Resource: resource, Err: de.Err}
		}
		return &LoadError{Resource: resource, Err: err}
	}
	if l.metrics != nil {
		l.metrics.RecordLoad(resource, time.Since(start).Seconds())
	}
	return nil
}

func (l *Loader) Politicians(ctx context.Context) ([]models.RawPolitician, error) {
	var out []models.RawPolitician
	if err := l.load(ctx, l.resources.Politicians, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) Transactions(ctx context.Context) ([]models.RawTransaction, error) {
	var out []models.RawTransaction
	if err := l.load(ctx, l.resources.Transactions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) Issuers(ctx context.Context) ([]models.RawIssuer, error) {
	var out []models.RawIssuer
	if err := l.load(ctx, l.resources.Issuers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) Committees(ctx context.Context) ([]models.RawCommittee, error) {
	var out []models.RawCommittee
	if err := l.load(ctx, l.resources.Committees, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) States(ctx context.Context) ([]models.RawState, error) {
	var out []models.RawState
	if err := l.load(ctx, l.resources.States, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) Performance(ctx context.Context) ([]models.RawIssuerPerformance, error) {
	var out []models.RawIssuerPerformance
	if err := l.load(ctx, l.resources.Performance, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) Benchmark(ctx context.Context) ([]models.RawIssuerPerformance, error) {
	var out []models.RawIssuerPerformance
	if err := l.load(ctx, l.resources.Benchmark, &out); err != nil {
		return nil, err
	}
	return out, nil
}
