package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/marcador-reportes/internal/domain/leader"
	"github.com/riskibarqy/marcador-reportes/internal/domain/match"
	"github.com/riskibarqy/marcador-reportes/internal/domain/player"
	"github.com/riskibarqy/marcador-reportes/internal/domain/team"
	leadermock "github.com/riskibarqy/marcador-reportes/internal/mocks/domain/leader"
	matchmock "github.com/riskibarqy/marcador-reportes/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/marcador-reportes/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/marcador-reportes/internal/mocks/domain/team"
	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

type routerFixture struct {
	teams   *teammock.Repository
	logos   *teammock.LogoSource
	players *playermock.Repository
	matches *matchmock.Repository
	leaders *leadermock.Repository
	router  http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		teams:   teammock.NewRepository(t),
		logos:   teammock.NewLogoSource(t),
		players: playermock.NewRepository(t),
		matches: matchmock.NewRepository(t),
		leaders: leadermock.NewRepository(t),
	}

	opts := usecase.DefaultReportOptions()
	opts.Compress = false
	opts.AssetsDir = t.TempDir()
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewTeamReportService(f.teams, f.logos, opts, logger),
		usecase.NewPlayerReportService(f.players, opts),
		usecase.NewMatchReportService(f.matches, opts),
		usecase.NewLeaderService(f.leaders, opts, logger),
		logger,
	)
	f.router = NewRouter(handler, logger, true, nil)
	return f
}

func (f *routerFixture) get(t *testing.T, target, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func assertPDFResponse(t *testing.T, rec *httptest.ResponseRecorder, filename string) {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="`+filename+`"` {
		t.Fatalf("unexpected content disposition: %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf body")
	}
}

func TestRouter_SystemRoutes(t *testing.T) {
	f := newRouterFixture(t)

	if rec := f.get(t, "/", ""); rec.Code != http.StatusOK || rec.Body.String() != rootMessage {
		t.Fatalf("unexpected root response: %d %q", rec.Code, rec.Body.String())
	}
	if rec := f.get(t, "/health", ""); rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
	if rec := f.get(t, "/openapi.yaml", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/pdf/lideres") {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}
	if rec := f.get(t, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected unknown path to 404, got %d", rec.Code)
	}
}

func TestRouter_TeamsReportForwardsFiltersAndAuthorization(t *testing.T) {
	f := newRouterFixture(t)
	f.teams.
		On("ListTeams", mock.Anything, team.Filter{Search: "tig", City: "Lima"}, "Bearer abc").
		Return([]team.Team{}, nil).
		Once()

	rec := f.get(t, "/pdf/equipos?search=tig&ciudad=Lima", "Bearer abc")
	assertPDFResponse(t, rec, "Equipos_Registrados.pdf")
}

func TestRouter_PlayersByTeamRequiresTeamID(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{"/pdf/jugadores-por-equipo", "/pdf/jugadores-por-equipo?equipoId=abc", "/pdf/jugadores-por-equipo?equipoId=0"} {
		if rec := f.get(t, target, ""); rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", target, rec.Code)
		}
	}
	f.players.AssertNotCalled(t, "ListPlayers", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_PlayersByTeamReport(t *testing.T) {
	f := newRouterFixture(t)
	teamID := int64(4)
	f.players.
		On("ListPlayers", mock.Anything, &teamID, "").
		Return([]player.Player{{Name: "Ana", Position: "Base", Number: "7"}}, nil).
		Once()

	rec := f.get(t, "/pdf/jugadores-por-equipo?equipoId=4", "")
	assertPDFResponse(t, rec, "JugadoresXEquipo_4.pdf")
}

func TestRouter_UpstreamNotFoundIsPassedThrough(t *testing.T) {
	f := newRouterFixture(t)
	f.matches.
		On("ListRoster", mock.Anything, int64(99), "").
		Return(nil, usecase.NewUpstreamError("http://backend/api/partidos/99/roster", http.StatusNotFound, "partido no encontrado")).
		Once()

	rec := f.get(t, "/pdf/roster?partidoId=99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/partidos/99/roster") {
		t.Fatalf("expected failing path in detail, got %s", rec.Body.String())
	}
}

func TestRouter_MatchHistoryTransportFailure(t *testing.T) {
	f := newRouterFixture(t)
	f.matches.
		On("ListHistory", mock.Anything, (*int64)(nil), "").
		Return(nil, &usecase.TransportError{URL: "http://backend/api/partidos/historial", Err: errors.New("connection refused")}).
		Once()

	if rec := f.get(t, "/pdf/historial-partidos", ""); rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestRouter_ScoutingReport(t *testing.T) {
	f := newRouterFixture(t)
	f.players.
		On("GetPlayer", mock.Anything, int64(42), "").
		Return(player.Player{ID: "42", Name: "Ana"}, nil).
		Once()

	rec := f.get(t, "/pdf/scouting?jugadorId=42", "")
	assertPDFResponse(t, rec, "scouting_jugador_42.pdf")
}

func TestRouter_LeadersDefaultsToPoints(t *testing.T) {
	f := newRouterFixture(t)
	f.leaders.
		On("ListLeaders", mock.Anything, leader.MetricPoints, (*int64)(nil), "").
		Return([]leader.Entry{{PlayerName: "Ana", Value: 30, ValueText: "30"}}, nil).
		Once()

	rec := f.get(t, "/pdf/lideres", "")
	assertPDFResponse(t, rec, "lideres.pdf")
}

func TestRouter_LeadersRejectsUnknownMetric(t *testing.T) {
	f := newRouterFixture(t)

	if rec := f.get(t, "/pdf/lideres?metric=asistencias", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_RosterReport(t *testing.T) {
	f := newRouterFixture(t)
	f.matches.
		On("ListRoster", mock.Anything, int64(7), "").
		Return([]match.RosterEntry{{TeamID: "1", PlayerName: "Ana", Position: "Base"}}, nil).
		Once()

	rec := f.get(t, "/pdf/roster?partidoId=7", "")
	assertPDFResponse(t, rec, "Roster_Partido_7.pdf")
}
