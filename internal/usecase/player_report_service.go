package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/marcador-reportes/internal/domain/player"
	"github.com/riskibarqy/marcador-reportes/internal/platform/pdfreport"
)

const (
	playersByTeamTitle = "Reporte de Jugadores por Equipo"
	scoutingTitle      = "Scouting – Jugador"
)

var playerColumns = []string{"#", "Jugador", "Posición", "Número", "Edad", "Estatura (cm)", "Nacionalidad"}
var playerWidths = []float64{30, 130, 75, 55, 45, 90, 95}

type PlayerReportService struct {
	players player.Repository
	opts    ReportOptions
}

func NewPlayerReportService(players player.Repository, opts ReportOptions) *PlayerReportService {
	return &PlayerReportService{
		players: players,
		opts:    opts.normalized(),
	}
}

// BuildByTeam renders the squad list of one team.
func (s *PlayerReportService) BuildByTeam(ctx context.Context, teamID int64, authorization string) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.BuildByTeam")
	defer span.End()

	players, err := s.players.ListPlayers(ctx, &teamID, authorization)
	if err != nil {
		return Report{}, errors.Wrapf(err, "list players of team %d", teamID)
	}

	rows := make([][]pdfreport.Cell, 0, len(players))
	for i, item := range players {
		rows = append(rows, textRow(
			strconv.Itoa(i+1),
			item.Name,
			item.Position,
			item.Number,
			item.Age,
			item.Height,
			item.Nationality,
		))
	}

	content, err := s.opts.renderTable(tableReport{
		Title:     playersByTeamTitle,
		Subtitle:  fmt.Sprintf("Equipo Id: %d", teamID),
		Columns:   playerColumns,
		Widths:    playerWidths,
		BodyAlign: map[int]pdfreport.Align{1: pdfreport.AlignLeft},
		Rows:      rows,
	})
	if err != nil {
		return Report{}, err
	}

	return Report{Filename: fmt.Sprintf("JugadoresXEquipo_%d.pdf", teamID), Content: content}, nil
}

// BuildScouting renders the one-row metrics sheet of a player. No stats
// source is wired yet, so every metric prints as zero.
func (s *PlayerReportService) BuildScouting(ctx context.Context, playerID int64, authorization string) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.BuildScouting")
	defer span.End()

	item, err := s.players.GetPlayer(ctx, playerID, authorization)
	if err != nil {
		return Report{}, errors.Wrapf(err, "get player %d", playerID)
	}

	var stats player.Stats
	content, err := s.opts.renderTable(tableReport{
		Title: scoutingTitle,
		Subtitle: fmt.Sprintf("%s • %s • %s  |  Edad: %s  |  Estatura: %s cm",
			item.Name, item.Position, item.TeamLabel(), item.Age, item.Height),
		Columns: stats.Columns(),
		Widths:  []float64{44, 44, 44, 44, 44, 44, 44, 44, 44, 44, 44},
		Rows:    [][]pdfreport.Cell{textRow(stats.Values()...)},
	})
	if err != nil {
		return Report{}, err
	}

	return Report{Filename: fmt.Sprintf("scouting_jugador_%d.pdf", playerID), Content: content}, nil
}
