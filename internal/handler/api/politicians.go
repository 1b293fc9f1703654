package api

import (
	"github.com/labstack/echo/v4"

	"CapitolPulse/internal/classify"
	"CapitolPulse/internal/dataset"
	"CapitolPulse/internal/domain/models"
	xhttp "CapitolPulse/pkg/http"
)

// politicianDetail is a politician plus its resolved trait catalog entries.
type politicianDetail struct {
	models.Politician
	TraitDetails []classify.Trait `json:"traitDetails"`
}

func (h *Handler) ListPoliticians(c echo.Context) error {
	req := &models.ListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	all := h.store.Politicians()
	rows := dataset.Page(all, req.Offset(), req.Size)
	return xhttp.ListResponse(c, rows, int64(len(all)))
}

func (h *Handler) GetPolitician(c echo.Context) error {
	req := &models.IDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	p, ok := h.store.PoliticianByID(req.ID)
	if !ok {
		return xhttp.NotFoundResponse(c, "politician not found")
	}

	details := make([]classify.Trait, 0, len(p.Traits))
	for _, id := range p.Traits {
		if t, ok := classify.GetTrait(classify.TraitID(id)); ok {
			details = append(details, t)
		}
	}
	return xhttp.SuccessResponse(c, politicianDetail{Politician: p, TraitDetails: details})
}

func (h *Handler) ListPoliticianTrades(c echo.Context) error {
	req := &models.IDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if _, ok := h.store.PoliticianByID(req.ID); !ok {
		return xhttp.NotFoundResponse(c, "politician not found")
	}

	trades := h.store.TradesForPolitician(req.ID)
	return xhttp.ListResponse(c, trades, int64(len(trades)))
}
