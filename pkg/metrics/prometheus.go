package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes the pipeline's Prometheus metrics.
type Recorder struct {
	loadsTotal   *prometheus.CounterVec
	loadErrors   *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	cacheHits    *prometheus.CounterVec
	cacheMisses  *prometheus.CounterVec
	datasetSize  *prometheus.GaugeVec
}

// New registers and returns the metrics recorder.
func New() *Recorder {
	return &Recorder{
		loadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capitolpulse_resource_loads_total",
				Help: "Total number of raw resource fetches",
			},
			[]string{"resource"},
		),
		loadErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capitolpulse_resource_load_errors_total",
				Help: "Total number of failed raw resource fetches",
			},
			[]string{"resource"},
		),
		loadDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "capitolpulse_resource_load_duration_seconds",
				Help:    "Duration of raw resource fetch and parse",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capitolpulse_cache_hits_total",
				Help: "Memoized secondary dataset hits",
			},
			[]string{"dataset"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capitolpulse_cache_misses_total",
				Help: "Memoized secondary dataset misses triggering a load",
			},
			[]string{"dataset"},
		),
		datasetSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "capitolpulse_dataset_entities",
				Help: "Entities held per normalized collection",
			},
			[]string{"collection"},
		),
	}
}

func (r *Recorder) RecordLoad(resource string, seconds float64) {
	r.loadsTotal.WithLabelValues(resource).Inc()
	r.loadDuration.WithLabelValues(resource).Observe(seconds)
}

func (r *Recorder) RecordLoadError(resource string) {
	r.loadErrors.WithLabelValues(resource).Inc()
}

func (r *Recorder) RecordCacheHit(dataset string) {
	r.cacheHits.WithLabelValues(dataset).Inc()
}

func (r *Recorder) RecordCacheMiss(dataset string) {
	r.cacheMisses.WithLabelValues(dataset).Inc()
}

func (r *Recorder) RecordDatasetSize(collection string, n int) {
	r.datasetSize.WithLabelValues(collection).Set(float64(n))
}
