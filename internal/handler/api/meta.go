package api

import (
	"github.com/labstack/echo/v4"

	"CapitolPulse/internal/classify"
	xhttp "CapitolPulse/pkg/http"
)

func (h *Handler) GetStats(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.store.Stats())
}

func (h *Handler) ListTraits(c echo.Context) error {
	return xhttp.SuccessResponse(c, classify.TraitsGroupedByCategory())
}

func (h *Handler) ListTradeLabels(c echo.Context) error {
	return xhttp.SuccessResponse(c, classify.TradeLabelsGroupedByCategory())
}
