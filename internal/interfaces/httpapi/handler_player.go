package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-admin/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers", routeAttr(r))
	defer span.End()

	items, err := h.playerService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerToDTO))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer", routeAttr(r))
	defer span.End()

	var req playerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "create player rejected", err)
		return
	}

	item, err := h.playerService.Create(ctx, usecase.PlayerInput{Name: req.Name, TeamID: int64(req.TeamID)})
	if err != nil {
		h.fail(ctx, w, "create player failed", err, "team_id", int64(req.TeamID))
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "update player rejected", err)
		return
	}

	var req playerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "update player rejected", err, "player_id", id)
		return
	}

	item, err := h.playerService.Update(ctx, id, usecase.PlayerInput{Name: req.Name, TeamID: int64(req.TeamID)})
	if err != nil {
		h.fail(ctx, w, "update player failed", err, "player_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "delete player rejected", err)
		return
	}

	if err := h.playerService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete player failed", err, "player_id", id)
		return
	}

	writeDeleted(ctx, w)
}
