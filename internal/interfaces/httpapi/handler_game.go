package httpapi

import "net/http"

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames", routeAttr(r))
	defer span.End()

	items, err := h.gameService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list games failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, gameSummaryToDTO))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "get game rejected", err)
		return
	}

	item, err := h.gameService.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get game failed", err, "game_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame", routeAttr(r))
	defer span.End()

	var req gameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "create game rejected", err)
		return
	}

	input := req.toInput()
	item, err := h.gameService.Create(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create game failed", err, "participants", len(input.Players))
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(item))
}

// UpdateGame replaces the participant set only when the body carries a
// players key; an empty array clears it.
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "update game rejected", err)
		return
	}

	var req gameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "update game rejected", err, "game_id", id)
		return
	}

	input := req.toInput()
	item, err := h.gameService.Update(ctx, id, input)
	if err != nil {
		h.fail(ctx, w, "update game failed", err,
			"game_id", id,
			"replace_players", input.ReplacePlayers,
		)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame", routeAttr(r))
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "delete game rejected", err)
		return
	}

	if err := h.gameService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete game failed", err, "game_id", id)
		return
	}

	writeDeleted(ctx, w)
}
