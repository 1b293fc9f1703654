package api

import (
	"github.com/labstack/echo/v4"

	"CapitolPulse/internal/classify"
	"CapitolPulse/internal/dataset"
	"CapitolPulse/internal/domain/models"
	xhttp "CapitolPulse/pkg/http"
)

// labeledTrade is a trade plus its derived labels, the shape the list
// endpoints return.
type labeledTrade struct {
	models.Trade
	Labels []classify.TradeLabelID `json:"labels"`
}

func withLabels(trades []models.Trade) []labeledTrade {
	out := make([]labeledTrade, len(trades))
	for i, t := range trades {
		out[i] = labeledTrade{Trade: t, Labels: classify.DeriveTradeLabels(t)}
	}
	return out
}

func (h *Handler) ListTrades(c echo.Context) error {
	req := &models.TradeListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	all := h.store.FilterTrades(dataset.TradeFilter{
		PoliticianID: req.Politician,
		IssuerID:     req.Issuer,
		Sector:       req.Sector,
		From:         req.From,
		To:           req.To,
	})
	rows := withLabels(dataset.Page(all, req.Offset(), req.Size))
	return xhttp.ListResponse(c, rows, int64(len(all)))
}
