package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"CapitolPulse/internal/dataset"
	"CapitolPulse/internal/domain/models"
	"CapitolPulse/internal/perfcache"
	xhttp "CapitolPulse/pkg/http"
	xlogger "CapitolPulse/pkg/logger"
)

func (h *Handler) ListIssuers(c echo.Context) error {
	req := &models.ListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	all := h.store.Issuers()
	rows := dataset.Page(all, req.Offset(), req.Size)
	return xhttp.ListResponse(c, rows, int64(len(all)))
}

func (h *Handler) GetIssuer(c echo.Context) error {
	req := &models.IDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	is, ok := h.store.IssuerByID(req.ID)
	if !ok {
		return xhttp.NotFoundResponse(c, "issuer not found")
	}
	return xhttp.SuccessResponse(c, is)
}

func (h *Handler) ListIssuerTrades(c echo.Context) error {
	req := &models.IDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if _, ok := h.store.IssuerByID(req.ID); !ok {
		return xhttp.NotFoundResponse(c, "issuer not found")
	}

	trades := h.store.TradesForIssuer(req.ID)
	return xhttp.ListResponse(c, trades, int64(len(trades)))
}

func (h *Handler) GetIssuerPerformance(c echo.Context) error {
	req := &models.IDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	series, err := h.perf.Series(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, perfcache.ErrSeriesNotFound) {
			return xhttp.NotFoundResponse(c, "no performance data for issuer")
		}
		h.logger.Error("performance fetch failed", xlogger.String("issuer", req.ID), xlogger.Error(err))
		return xhttp.UnavailableResponse(c, "performance data unavailable")
	}
	return xhttp.SuccessResponse(c, series)
}

func (h *Handler) GetBenchmark(c echo.Context) error {
	series, err := h.perf.Benchmark(c.Request().Context())
	if err != nil {
		if errors.Is(err, perfcache.ErrSeriesNotFound) {
			return xhttp.NotFoundResponse(c, "benchmark series missing")
		}
		h.logger.Error("benchmark fetch failed", xlogger.Error(err))
		return xhttp.UnavailableResponse(c, "benchmark data unavailable")
	}
	return xhttp.SuccessResponse(c, series)
}

func (h *Handler) ListSectors(c echo.Context) error {
	sectors := h.store.Sectors()
	return xhttp.ListResponse(c, sectors, int64(len(sectors)))
}
