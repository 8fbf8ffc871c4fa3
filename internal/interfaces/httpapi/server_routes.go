package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /teams", handler.ListTeams)
	mux.HandleFunc("POST /teams", handler.CreateTeam)
	mux.HandleFunc("PUT /teams/{id}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /teams/{id}", handler.DeleteTeam)

	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("POST /players", handler.CreatePlayer)
	mux.HandleFunc("PUT /players/{id}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /players/{id}", handler.DeletePlayer)

	mux.HandleFunc("GET /civs", handler.ListCivilizations)
	mux.HandleFunc("POST /civs", handler.CreateCivilization)
	mux.HandleFunc("PUT /civs/{id}", handler.UpdateCivilization)
	mux.HandleFunc("DELETE /civs/{id}", handler.DeleteCivilization)

	mux.HandleFunc("GET /maps", handler.ListMaps)
	mux.HandleFunc("POST /maps", handler.CreateMap)
	mux.HandleFunc("PUT /maps/{id}", handler.UpdateMap)
	mux.HandleFunc("DELETE /maps/{id}", handler.DeleteMap)

	mux.HandleFunc("GET /games", handler.ListGames)
	mux.HandleFunc("POST /games", handler.CreateGame)
	mux.HandleFunc("GET /games/{id}", handler.GetGame)
	mux.HandleFunc("PUT /games/{id}", handler.UpdateGame)
	mux.HandleFunc("DELETE /games/{id}", handler.DeleteGame)
}
