package usecase

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/marcador-reportes/internal/domain/team"
	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
	"github.com/riskibarqy/marcador-reportes/internal/platform/logo"
	"github.com/riskibarqy/marcador-reportes/internal/platform/pdfreport"
	"github.com/riskibarqy/marcador-reportes/internal/platform/resilience"
)

const (
	teamsReportTitle    = "Reporte de Equipos Registrados"
	teamsReportFilename = "Equipos_Registrados.pdf"
	teamLogoSize        = 30
)

var teamColumns = []string{"Logo", "Id", "Equipo", "Ciudad", "Puntos", "Faltas"}
var teamWidths = []float64{50, 30, 120, 80, 50, 50}

type TeamReportService struct {
	teams  team.Repository
	logos  team.LogoSource
	opts   ReportOptions
	logger *logging.Logger
}

func NewTeamReportService(teams team.Repository, logos team.LogoSource, opts ReportOptions, logger *logging.Logger) *TeamReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamReportService{
		teams:  teams,
		logos:  logos,
		opts:   opts.normalized(),
		logger: logger,
	}
}

// Build renders every team matching filter, one crest per row.
func (s *TeamReportService) Build(ctx context.Context, filter team.Filter, authorization string) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamReportService.Build")
	defer span.End()

	teams, err := s.teams.ListTeams(ctx, filter, authorization)
	if err != nil {
		return Report{}, errors.Wrap(err, "list teams")
	}

	logos := s.resolveLogos(ctx, teams)

	rows := make([][]pdfreport.Cell, 0, len(teams))
	for i, item := range teams {
		rows = append(rows, []pdfreport.Cell{
			pdfreport.Logo(logos[i], teamLogoSize, LogoPlaceholder),
			pdfreport.Text(item.ID),
			pdfreport.Text(item.Name),
			pdfreport.Text(item.City),
			pdfreport.Text(item.Points),
			pdfreport.Text(item.Fouls),
		})
	}

	content, err := s.opts.renderTable(tableReport{
		Title:   teamsReportTitle,
		Columns: teamColumns,
		Widths:  teamWidths,
		Rows:    rows,
	})
	if err != nil {
		return Report{}, err
	}

	return Report{Filename: teamsReportFilename, Content: content}, nil
}

// resolveLogos fetches crests concurrently and returns them in row order.
// A team with a logo URL uses only the remote image; a team without one
// falls back to the bundled asset named after it.
func (s *TeamReportService) resolveLogos(ctx context.Context, teams []team.Team) []logo.Outcome {
	out := make([]logo.Outcome, len(teams))
	if len(teams) == 0 {
		return out
	}

	var flights resilience.SingleFlight[logo.Outcome]
	resolve := func(i int) {
		item := teams[i]
		if !item.HasLogoURL() {
			out[i] = logo.LoadAsset(s.opts.AssetsDir, item.Name)
		} else {
			out[i], _, _ = flights.Do(item.LogoURL, func() (logo.Outcome, error) {
				return s.logos.FetchLogo(ctx, item.LogoURL), nil
			})
		}
		if !out[i].OK() {
			s.logger.DebugContext(ctx, "team logo unavailable", "team_id", item.ID, "reason", out[i].Reason)
		}
	}

	pool, err := ants.NewPool(min(s.opts.LogoWorkers, len(teams)))
	if err != nil {
		s.logger.WarnContext(ctx, "create logo worker pool failed, resolving inline", "error", err)
		for i := range teams {
			resolve(i)
		}
		return out
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := range teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			resolve(i)
		}); err != nil {
			workers.Done()
			resolve(i)
		}
	}
	workers.Wait()

	return out
}
