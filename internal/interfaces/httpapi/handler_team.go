package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-admin/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams", routeAttr(r))
	defer span.End()

	items, err := h.teamService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, teamToDTO))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam", routeAttr(r))
	defer span.End()

	var req teamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "create team rejected", err)
		return
	}

	item, err := h.teamService.Create(ctx, usecase.TeamInput{Name: req.Name})
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "name", req.Name)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "update team rejected", err)
		return
	}

	var req teamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "update team rejected", err, "team_id", id)
		return
	}

	item, err := h.teamService.Update(ctx, id, usecase.TeamInput{Name: req.Name})
	if err != nil {
		h.fail(ctx, w, "update team failed", err, "team_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "delete team rejected", err)
		return
	}

	if err := h.teamService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete team failed", err, "team_id", id)
		return
	}

	writeDeleted(ctx, w)
}
