package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/marcador-reportes/internal/domain/match"
	"github.com/riskibarqy/marcador-reportes/internal/platform/pdfreport"
)

const (
	historyTitle    = "Historial de partidos"
	historyFilename = "Historial_Partidos.pdf"
)

var historyColumns = []string{"#", "Fecha/Hora", "Local", "Visitante", "Marcador"}
var historyWidths = []float64{30, 110, 140, 140, 80}

var rosterColumns = []string{"#", "EquipoId", "Jugador", "Posición"}
var rosterWidths = []float64{30, 80, 220, 120}

type MatchReportService struct {
	matches match.Repository
	opts    ReportOptions
}

func NewMatchReportService(matches match.Repository, opts ReportOptions) *MatchReportService {
	return &MatchReportService{
		matches: matches,
		opts:    opts.normalized(),
	}
}

// BuildHistory renders played matches of one season, or of all seasons when
// seasonID is nil.
func (s *MatchReportService) BuildHistory(ctx context.Context, seasonID *int64, authorization string) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchReportService.BuildHistory")
	defer span.End()

	matches, err := s.matches.ListHistory(ctx, seasonID, authorization)
	if err != nil {
		return Report{}, errors.Wrap(err, "list match history")
	}

	rows := make([][]pdfreport.Cell, 0, len(matches))
	for _, item := range matches {
		rows = append(rows, textRow(
			strconv.Itoa(item.Seq),
			item.Kickoff(),
			item.HomeTeam,
			item.AwayTeam,
			item.Score(),
		))
	}

	season := "todas"
	if seasonID != nil {
		season = strconv.FormatInt(*seasonID, 10)
	}

	content, err := s.opts.renderTable(tableReport{
		Title:     historyTitle,
		Subtitle:  "Temporada: " + season,
		Columns:   historyColumns,
		Widths:    historyWidths,
		BodyAlign: map[int]pdfreport.Align{2: pdfreport.AlignLeft, 3: pdfreport.AlignLeft},
		Rows:      rows,
	})
	if err != nil {
		return Report{}, err
	}

	return Report{Filename: historyFilename, Content: content}, nil
}

// BuildRoster renders the players registered for one match.
func (s *MatchReportService) BuildRoster(ctx context.Context, matchID int64, authorization string) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchReportService.BuildRoster")
	defer span.End()

	roster, err := s.matches.ListRoster(ctx, matchID, authorization)
	if err != nil {
		return Report{}, errors.Wrapf(err, "list roster of match %d", matchID)
	}

	rows := make([][]pdfreport.Cell, 0, len(roster))
	for i, item := range roster {
		rows = append(rows, textRow(strconv.Itoa(i+1), item.TeamID, item.PlayerName, item.Position))
	}

	content, err := s.opts.renderTable(tableReport{
		Title:     fmt.Sprintf("Roster – Partido %d", matchID),
		Columns:   rosterColumns,
		Widths:    rosterWidths,
		BodyAlign: map[int]pdfreport.Align{2: pdfreport.AlignLeft},
		Rows:      rows,
	})
	if err != nil {
		return Report{}, err
	}

	return Report{Filename: fmt.Sprintf("Roster_Partido_%d.pdf", matchID), Content: content}, nil
}
