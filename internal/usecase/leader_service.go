package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/marcador-reportes/internal/domain/leader"
	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
	"github.com/riskibarqy/marcador-reportes/internal/platform/pdfreport"
)

const (
	leadersFilename  = "lideres.pdf"
	leadersTitleSize = 24
)

var leaderColumns = []string{"#", "Jugador", "Equipo", "Posición", "Valor"}
var leaderWidths = []float64{24, 200, 150, 80, 60}
var leaderBodyAlign = map[int]pdfreport.Align{
	1: pdfreport.AlignLeft,
	2: pdfreport.AlignLeft,
	3: pdfreport.AlignLeft,
}

type LeaderService struct {
	leaders leader.Repository
	opts    ReportOptions
	logger  *logging.Logger
}

func NewLeaderService(leaders leader.Repository, opts ReportOptions, logger *logging.Logger) *LeaderService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderService{
		leaders: leaders,
		opts:    opts.normalized(),
		logger:  logger,
	}
}

// Resolve returns the ranked entries for metric. The dedicated leaders
// endpoint is trusted as-is; when it fails for any reason the player list is
// ranked locally instead. Only a failure of that fallback is returned.
func (s *LeaderService) Resolve(ctx context.Context, metric leader.Metric, teamID *int64, authorization string) ([]leader.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderService.Resolve")
	defer span.End()

	if !metric.Valid() {
		return nil, errors.Wrapf(ErrInvalidInput, "unknown metric %q", metric)
	}
	if teamID != nil && *teamID == 0 {
		teamID = nil
	}

	entries, err := s.leaders.ListLeaders(ctx, metric, teamID, authorization)
	if err == nil {
		return entries, nil
	}
	s.logger.WarnContext(ctx, "leaders endpoint unavailable, ranking players locally",
		"metric", string(metric),
		"error", err,
	)

	entries, err = s.leaders.ListPlayerTotals(ctx, metric, teamID, authorization)
	if err != nil {
		return nil, errors.Wrap(err, "list player totals")
	}
	leader.SortDescending(entries)
	return entries, nil
}

// BuildReport renders the podium and ranking tables on a letter page.
func (s *LeaderService) BuildReport(ctx context.Context, metric leader.Metric, teamID *int64, authorization string) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderService.BuildReport")
	defer span.End()

	entries, err := s.Resolve(ctx, metric, teamID, authorization)
	if err != nil {
		return Report{}, err
	}
	board := leader.Split(entries)

	title := "Líderes – " + metric.Label()
	if teamID != nil && *teamID != 0 {
		title += fmt.Sprintf(" (Equipo %d)", *teamID)
	}

	doc := s.opts.document(pdfreport.PageLetter, title)
	doc.Header(pdfreport.Header{
		Title:             title,
		TitleSize:         leadersTitleSize,
		Attribution:       s.opts.LeadersAttribution,
		AttributionItalic: true,
	})
	if len(board.Top) > 0 {
		doc.Section("Top 3")
		doc.Table(leaderTable(board.Top, 1, pdfreport.LeadersTopStyle()))
		doc.Spacer(14)
	}
	if len(board.Ranking) > 0 {
		doc.Section("Ranking")
		doc.Table(leaderTable(board.Ranking, leader.TopSize+1, pdfreport.LeadersRankingStyle()))
	}

	content, err := doc.Bytes()
	if err != nil {
		return Report{}, errors.Wrap(err, "render leaders report")
	}
	return Report{Filename: leadersFilename, Content: content}, nil
}

func leaderTable(entries []leader.Entry, firstPosition int, style pdfreport.TableStyle) pdfreport.Table {
	rows := make([][]pdfreport.Cell, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, textRow(
			strconv.Itoa(firstPosition+i),
			entry.PlayerName,
			entry.TeamName,
			entry.Position,
			entry.DisplayValue(),
		))
	}
	return pdfreport.Table{
		Columns:   leaderColumns,
		Widths:    leaderWidths,
		BodyAlign: leaderBodyAlign,
		Rows:      rows,
		Style:     style,
	}
}
