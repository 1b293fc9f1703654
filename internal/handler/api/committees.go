package api

import (
	"github.com/labstack/echo/v4"

	"CapitolPulse/internal/domain/models"
	"CapitolPulse/internal/normalize"
	xhttp "CapitolPulse/pkg/http"
)

func (h *Handler) ListCommittees(c echo.Context) error {
	req := &models.CommitteeListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	var rows []models.Committee
	if req.Chamber != "" {
		rows = h.store.CommitteesByChamber(normalize.MapCommitteeChamber(req.Chamber))
	} else {
		rows = h.store.Committees()
	}
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *Handler) GetCommittee(c echo.Context) error {
	req := &models.IDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	committee, ok := h.store.CommitteeByID(req.ID)
	if !ok {
		return xhttp.NotFoundResponse(c, "committee not found")
	}
	return xhttp.SuccessResponse(c, committee)
}

func (h *Handler) ListStates(c echo.Context) error {
	req := &models.StateListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	var rows []models.State
	switch req.Sort {
	case "trades":
		rows = h.store.StatesSortedByTrades()
	case "politicians":
		rows = h.store.StatesSortedByPoliticians()
	default:
		rows = h.store.States()
	}
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *Handler) GetState(c echo.Context) error {
	req := &models.IDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	state, ok := h.store.StateByID(req.ID)
	if !ok {
		return xhttp.NotFoundResponse(c, "state not found")
	}
	return xhttp.SuccessResponse(c, state)
}
