package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/marcador-reportes/internal/domain/match"
	matchmock "github.com/riskibarqy/marcador-reportes/internal/mocks/domain/match"
)

func TestMatchReportService_BuildHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seasonID *int64
		subtitle string
	}{
		{name: "all seasons", seasonID: nil, subtitle: "Temporada: todas"},
		{name: "one season", seasonID: int64Ptr(2024), subtitle: "Temporada: 2024"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matchRepo := matchmock.NewRepository(t)
			matchRepo.
				On("ListHistory", mock.Anything, tt.seasonID, "").
				Return([]match.Match{
					{Seq: 1, KickoffRaw: "2025-03-14T19:30:00Z", HomeTeam: "Tigres", AwayTeam: "Equipo 9", HomeScore: "80", AwayScore: "75"},
					{Seq: 3, KickoffRaw: "pendiente", HomeTeam: "Leones", AwayTeam: "Pumas", HomeScore: "0", AwayScore: "0"},
				}, nil).
				Once()

			service := NewMatchReportService(matchRepo, plainReportOptions(t))
			report, err := service.BuildHistory(context.Background(), tt.seasonID, "")
			if err != nil {
				t.Fatalf("build history report: %v", err)
			}
			if report.Filename != "Historial_Partidos.pdf" {
				t.Fatalf("unexpected filename: %q", report.Filename)
			}
			assertPDFContains(t, report.Content,
				tt.subtitle,
				"(2025-03-14 19:30)",
				"(80 - 75)",
				"(pendiente)",
				"(3)",
			)
		})
	}
}

func TestMatchReportService_BuildRoster(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	matchRepo.
		On("ListRoster", mock.Anything, int64(12), "Bearer abc").
		Return([]match.RosterEntry{{TeamID: "4", PlayerName: "Ana", Position: "Base"}}, nil).
		Once()

	service := NewMatchReportService(matchRepo, plainReportOptions(t))
	report, err := service.BuildRoster(context.Background(), 12, "Bearer abc")
	if err != nil {
		t.Fatalf("build roster report: %v", err)
	}
	if report.Filename != "Roster_Partido_12.pdf" {
		t.Fatalf("unexpected filename: %q", report.Filename)
	}
	assertPDFContains(t, report.Content, "Roster \x96 Partido 12", "(EquipoId)", "(Ana)")
}
