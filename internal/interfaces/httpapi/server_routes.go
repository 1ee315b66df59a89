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

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
	mux.HandleFunc("GET /v1/filters/options", handler.ListFilterOptions)
	mux.HandleFunc("GET /v1/session/filters", handler.GetSessionFilters)
	mux.HandleFunc("PUT /v1/session/filters", handler.PutSessionFilters)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/history", handler.GetTeamHistory)
	mux.HandleFunc("GET /v1/teams/{teamID}/history/chart", handler.GetTeamHistoryChart)
	mux.HandleFunc("GET /v1/teams/{teamID}/compare/{otherTeamID}", handler.CompareTeams)

	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/{gameID}/leaderboard", handler.GetGameLeaderboard)
	mux.HandleFunc("GET /v1/games/{gameID}/leaderboard/export", handler.ExportGameLeaderboard)
	mux.HandleFunc("GET /v1/games/{gameID}/rounds/compare", handler.CompareGameRounds)
	mux.HandleFunc("GET /v1/games/{gameID}/rounds/compare/chart", handler.GetGameRoundsChart)

	mux.HandleFunc("GET /v1/standings/top-teams", handler.ListTopTeams)
	mux.HandleFunc("GET /v1/standings/top-finishes", handler.ListTopFinishes)
	mux.HandleFunc("GET /v1/standings/round-averages", handler.GetRoundAverages)
}
