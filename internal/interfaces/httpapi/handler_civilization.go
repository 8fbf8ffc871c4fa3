package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-admin/internal/usecase"
)

func (h *Handler) ListCivilizations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCivilizations", routeAttr(r))
	defer span.End()

	items, err := h.civilizationService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list civilizations failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, civilizationToDTO))
}

func (h *Handler) CreateCivilization(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCivilization", routeAttr(r))
	defer span.End()

	var req civilizationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "create civilization rejected", err)
		return
	}

	item, err := h.civilizationService.Create(ctx, usecase.CivilizationInput{Name: req.Name, Description: req.Description})
	if err != nil {
		h.fail(ctx, w, "create civilization failed", err, "name", req.Name)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, civilizationToDTO(item))
}

// UpdateCivilization clears the stored description when the body omits it.
func (h *Handler) UpdateCivilization(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCivilization", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "update civilization rejected", err)
		return
	}

	var req civilizationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "update civilization rejected", err, "civilization_id", id)
		return
	}

	item, err := h.civilizationService.Update(ctx, id, usecase.CivilizationInput{Name: req.Name, Description: req.Description})
	if err != nil {
		h.fail(ctx, w, "update civilization failed", err, "civilization_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, civilizationToDTO(item))
}

func (h *Handler) DeleteCivilization(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCivilization", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "delete civilization rejected", err)
		return
	}

	if err := h.civilizationService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete civilization failed", err, "civilization_id", id)
		return
	}

	writeDeleted(ctx, w)
}
