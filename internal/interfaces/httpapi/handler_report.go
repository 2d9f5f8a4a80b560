package httpapi

import (
	"net/http"

	"github.com/riskibarqy/marcador-reportes/internal/domain/leader"
	"github.com/riskibarqy/marcador-reportes/internal/domain/team"
)

// Report handlers forward the caller's Authorization header untouched; the
// backend decides what the caller may read.

func (h *Handler) TeamsReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.TeamsReport")
	defer span.End()

	query := bindTeamsReportQuery(r.URL.Query())
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.teamReports.Build(ctx, team.Filter{Search: query.Search, City: query.City}, r.Header.Get("Authorization"))
	if err != nil {
		h.logger.WarnContext(ctx, "build teams report failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writePDF(w, report)
}

func (h *Handler) PlayersByTeamReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.PlayersByTeamReport")
	defer span.End()

	query, err := bindPlayersByTeamQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, query)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.playerReports.BuildByTeam(ctx, *query.TeamID, r.Header.Get("Authorization"))
	if err != nil {
		h.logger.WarnContext(ctx, "build players report failed", "team_id", *query.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writePDF(w, report)
}

func (h *Handler) MatchHistoryReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.MatchHistoryReport")
	defer span.End()

	query, err := bindMatchHistoryQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, query)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.matchReports.BuildHistory(ctx, query.SeasonID, r.Header.Get("Authorization"))
	if err != nil {
		h.logger.WarnContext(ctx, "build match history report failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writePDF(w, report)
}

func (h *Handler) RosterReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RosterReport")
	defer span.End()

	query, err := bindRosterQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, query)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.matchReports.BuildRoster(ctx, *query.MatchID, r.Header.Get("Authorization"))
	if err != nil {
		h.logger.WarnContext(ctx, "build roster report failed", "match_id", *query.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writePDF(w, report)
}

func (h *Handler) ScoutingReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ScoutingReport")
	defer span.End()

	query, err := bindScoutingQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, query)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.playerReports.BuildScouting(ctx, *query.PlayerID, r.Header.Get("Authorization"))
	if err != nil {
		h.logger.WarnContext(ctx, "build scouting report failed", "player_id", *query.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writePDF(w, report)
}

func (h *Handler) LeadersReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.LeadersReport")
	defer span.End()

	query, err := bindLeadersQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, query)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.leaderReports.BuildReport(ctx, leader.Metric(query.Metric), query.TeamID, r.Header.Get("Authorization"))
	if err != nil {
		h.logger.WarnContext(ctx, "build leaders report failed", "metric", query.Metric, "error", err)
		writeError(ctx, w, err)
		return
	}
	writePDF(w, report)
}
