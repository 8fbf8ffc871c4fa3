package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-admin/internal/usecase"
)

func (h *Handler) ListMaps(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMaps", routeAttr(r))
	defer span.End()

	items, err := h.mapService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list maps failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, mapToDTO))
}

func (h *Handler) CreateMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMap", routeAttr(r))
	defer span.End()

	var req mapRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "create map rejected", err)
		return
	}

	item, err := h.mapService.Create(ctx, usecase.MapInput{Name: req.Name})
	if err != nil {
		h.fail(ctx, w, "create map failed", err, "name", req.Name)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, mapToDTO(item))
}

func (h *Handler) UpdateMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMap", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "update map rejected", err)
		return
	}

	var req mapRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "update map rejected", err, "map_id", id)
		return
	}

	item, err := h.mapService.Update(ctx, id, usecase.MapInput{Name: req.Name})
	if err != nil {
		h.fail(ctx, w, "update map failed", err, "map_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapToDTO(item))
}

func (h *Handler) DeleteMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMap", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "delete map rejected", err)
		return
	}

	if err := h.mapService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete map failed", err, "map_id", id)
		return
	}

	writeDeleted(ctx, w)
}
