// Package api exposes the read API over the loaded dataset.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"CapitolPulse/internal/dataset"
	"CapitolPulse/internal/perfcache"
	xlogger "CapitolPulse/pkg/logger"
)

// Handler serves every dataset route. All routes are read-only.
type Handler struct {
	logger *xlogger.Logger
	store  *dataset.Store
	perf   *perfcache.Cache
}

func NewHandler(logger *xlogger.Logger, store *dataset.Store, perf *perfcache.Cache) *Handler {
	return &Handler{logger: logger, store: store, perf: perf}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api", h.requireDataset)
	g.GET("/politicians", h.ListPoliticians)
	g.GET("/politicians/:id", h.GetPolitician)
	g.GET("/politicians/:id/trades", h.ListPoliticianTrades)
	g.GET("/trades", h.ListTrades)
	g.GET("/issuers", h.ListIssuers)
	g.GET("/issuers/:id", h.GetIssuer)
	g.GET("/issuers/:id/trades", h.ListIssuerTrades)
	g.GET("/issuers/:id/performance", h.GetIssuerPerformance)
	g.GET("/benchmark", h.GetBenchmark)
	g.GET("/sectors", h.ListSectors)
	g.GET("/committees", h.ListCommittees)
	g.GET("/committees/:id", h.GetCommittee)
	g.GET("/states", h.ListStates)
	g.GET("/states/:id", h.GetState)
	g.GET("/stats", h.GetStats)
	g.GET("/traits", h.ListTraits)
	g.GET("/trade-labels", h.ListTradeLabels)
}

// requireDataset rejects dataset routes until the initial load has
// finished, so no request ever observes a partial snapshot.
func (h *Handler) requireDataset(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.store.Ready() {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "loading",
			})
		}
		return next(c)
	}
}

// Health reports liveness and whether the dataset is ready.
func (h *Handler) Health(c echo.Context) error {
	status := "ok"
	if !h.store.Ready() {
		status = "loading"
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}
