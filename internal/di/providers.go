package di

import (
	"fmt"

	"CapitolPulse/internal/dataset"
	"CapitolPulse/internal/handler/api"
	"CapitolPulse/internal/loader"
	"CapitolPulse/internal/perfcache"
	"CapitolPulse/pkg/config"
	xhttp "CapitolPulse/pkg/http"
	applogger "CapitolPulse/pkg/logger"
	"CapitolPulse/pkg/metrics"
	"CapitolPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideHTTPClient creates the outbound JSON client.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Data.RequestTimeout))
}

// ProvideLoader creates the raw resource loader.
func ProvideLoader(cfg *config.Config, client *xhttp.Client, rec *metrics.Recorder) *loader.Loader {
	res := loader.Resources{
		Politicians:  cfg.Data.Resources.Politicians,
		Transactions: cfg.Data.Resources.Transactions,
		Issuers:      cfg.Data.Resources.Issuers,
		Committees:   cfg.Data.Resources.Committees,
		States:       cfg.Data.Resources.States,
		Performance:  cfg.Data.Resources.Performance,
		Benchmark:    cfg.Data.Resources.Benchmark,
	}
	return loader.New(client, cfg.Data.BaseURL, res, rec)
}

// ProvideStore creates the dataset snapshot store.
func ProvideStore(l *loader.Loader, rec *metrics.Recorder) *dataset.Store {
	return dataset.New(l, rec)
}

// ProvidePerfCache creates the performance series cache.
func ProvidePerfCache(cfg *config.Config, l *loader.Loader, rec *metrics.Recorder) *perfcache.Cache {
	return perfcache.New(l, rec, cfg.Data.BenchmarkIssuerID)
}

// ProvideAPIHandler creates the read API handler.
func ProvideAPIHandler(logger *applogger.Logger, store *dataset.Store, perf *perfcache.Cache) xhttp.Handler {
	return api.NewHandler(logger, store, perf)
}

// ProvideApp assembles the application.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, store *dataset.Store, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, store, handler)
}
