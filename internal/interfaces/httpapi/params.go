package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/marcador-reportes/internal/domain/leader"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

type teamsReportQuery struct {
	Search string `validate:"max=200"`
	City   string `validate:"max=200"`
}

type playersByTeamQuery struct {
	TeamID *int64 `validate:"required,gt=0"`
}

type matchHistoryQuery struct {
	SeasonID *int64 `validate:"omitempty,gt=0"`
}

type rosterQuery struct {
	MatchID *int64 `validate:"required,gt=0"`
}

type scoutingQuery struct {
	PlayerID *int64 `validate:"required,gt=0"`
}

// leadersQuery accepts equipoId=0 as "no team filter".
type leadersQuery struct {
	Metric string `validate:"required,oneof=puntos faltas"`
	TeamID *int64 `validate:"omitempty,gte=0"`
}

func bindTeamsReportQuery(values url.Values) teamsReportQuery {
	return teamsReportQuery{
		Search: strings.TrimSpace(values.Get("search")),
		City:   strings.TrimSpace(values.Get("ciudad")),
	}
}

func bindPlayersByTeamQuery(values url.Values) (playersByTeamQuery, error) {
	teamID, err := queryInt64(values, "equipoId")
	return playersByTeamQuery{TeamID: teamID}, err
}

func bindMatchHistoryQuery(values url.Values) (matchHistoryQuery, error) {
	seasonID, err := queryInt64(values, "temporadaId")
	return matchHistoryQuery{SeasonID: seasonID}, err
}

func bindRosterQuery(values url.Values) (rosterQuery, error) {
	matchID, err := queryInt64(values, "partidoId")
	return rosterQuery{MatchID: matchID}, err
}

func bindScoutingQuery(values url.Values) (scoutingQuery, error) {
	playerID, err := queryInt64(values, "jugadorId")
	return scoutingQuery{PlayerID: playerID}, err
}

func bindLeadersQuery(values url.Values) (leadersQuery, error) {
	metric := strings.ToLower(strings.TrimSpace(values.Get("metric")))
	if metric == "" {
		metric = string(leader.MetricPoints)
	}
	teamID, err := queryInt64(values, "equipoId")
	return leadersQuery{Metric: metric, TeamID: teamID}, err
}

// queryInt64 reads an optional integer parameter; absent or blank is nil.
func queryInt64(values url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}
