package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.Health)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /pdf/equipos", handler.TeamsReport)
	mux.HandleFunc("GET /pdf/jugadores-por-equipo", handler.PlayersByTeamReport)
	mux.HandleFunc("GET /pdf/historial-partidos", handler.MatchHistoryReport)
	mux.HandleFunc("GET /pdf/roster", handler.RosterReport)
	mux.HandleFunc("GET /pdf/scouting", handler.ScoutingReport)
	mux.HandleFunc("GET /pdf/lideres", handler.LeadersReport)
}
