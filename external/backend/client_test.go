package backend

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/marcador-reportes/internal/domain/leader"
	"github.com/riskibarqy/marcador-reportes/internal/domain/team"
	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
	"github.com/riskibarqy/marcador-reportes/internal/platform/resilience"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL + "/",
		Logger:     logging.NewNop(),
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsoniter.NewEncoder(w).Encode(payload); err != nil {
		t.Errorf("encode fixture: %v", err)
	}
}

func teamFilter(search, city string) team.Filter {
	return team.Filter{Search: search, City: city}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestClientListTeams_ForwardsFiltersAndAuthorization(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/equipos" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "tig" {
			t.Errorf("unexpected search: %q", got)
		}
		if got := r.URL.Query().Get("ciudad"); got != "Lima" {
			t.Errorf("unexpected ciudad: %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("unexpected authorization: %q", got)
		}
		writeJSON(t, w, http.StatusOK, []any{
			map[string]any{"Id": 1, "Nombre": "Tigres", "Ciudad": "Lima", "Puntos": 12, "Faltas": 3, "LogoUrl": " http://cdn/t.png "},
			map[string]any{"id": 2, "nombre": "Leones", "puntos": 0},
			"not an object",
		})
	})

	teams, err := client.ListTeams(context.Background(), teamFilter("tig", "Lima"), "Bearer abc")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected non-object entries to be skipped, got=%d", len(teams))
	}
	if teams[0].Name != "Tigres" || teams[0].Points != "12" || teams[0].LogoURL != "http://cdn/t.png" {
		t.Fatalf("unexpected first team: %+v", teams[0])
	}
	if teams[1].ID != "2" || teams[1].City != usecase.Placeholder || teams[1].Points != "0" || teams[1].HasLogoURL() {
		t.Fatalf("unexpected second team: %+v", teams[1])
	}
}

func TestClientListTeams_OmitsEmptyFiltersAndAuthorization(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got=%q", r.URL.RawQuery)
		}
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("expected no authorization header")
		}
		writeJSON(t, w, http.StatusOK, []any{})
	})

	teams, err := client.ListTeams(context.Background(), teamFilter("", ""), "")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected empty list, got=%d", len(teams))
	}
}

func TestClientGet_UpstreamErrorKeepsStatusAndTruncatesBody(t *testing.T) {
	t.Parallel()

	body := bytes.Repeat([]byte("x"), 500)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(body)
	})

	_, err := client.ListPlayers(context.Background(), int64Ptr(9), "")
	upstream, ok := usecase.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected upstream error, got=%v", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", upstream.StatusCode)
	}
	if len(upstream.Body) != usecase.UpstreamBodyLimit {
		t.Fatalf("expected body truncated to %d, got=%d", usecase.UpstreamBodyLimit, len(upstream.Body))
	}
}

func TestClientGet_TransportErrorOnTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Timeout:    50 * time.Millisecond,
		Logger:     logging.NewNop(),
	})

	_, err := client.ListTeams(context.Background(), teamFilter("", ""), "")
	if _, ok := usecase.AsTransportError(err); !ok {
		t.Fatalf("expected transport error, got=%v", err)
	}
}

func TestClientGet_RejectsNonListPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"message": "ok"})
	})

	_, err := client.ListTeams(context.Background(), teamFilter("", ""), "")
	if !errors.Is(err, usecase.ErrUnexpectedPayload) {
		t.Fatalf("expected unexpected payload error, got=%v", err)
	}
}

func TestClientListHistory_ItemsEnvelopeAndFallbackNames(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("temporadaId"); got != "3" {
			t.Errorf("unexpected temporadaId: %q", got)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"items": []any{
			map[string]any{
				"Id": 10, "FechaHora": "2024-05-01T18:30:00Z",
				"EquipoLocalNombre": "Tigres", "EquipoVisitanteNombre": "Leones",
				"MarcadorLocal": 80, "PuntosVisitante": 75,
			},
			nil,
			map[string]any{
				"id": 11, "equipoLocalNombre": "local", "equipoLocalId": 4,
				"EquipoVisitanteId": 5,
			},
		}})
	})

	matches, err := client.ListHistory(context.Background(), int64Ptr(3), "")
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected two matches, got=%d", len(matches))
	}
	first := matches[0]
	if first.Seq != 1 || first.HomeTeam != "Tigres" || first.AwayTeam != "Leones" || first.Score() != "80 - 75" {
		t.Fatalf("unexpected first match: %+v", first)
	}
	second := matches[1]
	if second.Seq != 3 {
		t.Fatalf("expected upstream position to be kept, got=%d", second.Seq)
	}
	if second.HomeTeam != "Equipo 4" {
		t.Fatalf("expected role label replaced, got=%q", second.HomeTeam)
	}
	if second.AwayTeam != "5" {
		t.Fatalf("expected id fallback for away team, got=%q", second.AwayTeam)
	}
	if second.Score() != "0 - 0" {
		t.Fatalf("unexpected default score: %q", second.Score())
	}
}

func TestClientListRosterAndGetPlayer_SubstituteID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/partidos/7/roster":
			writeJSON(t, w, http.StatusOK, []any{
				map[string]any{"EquipoId": 1, "JugadorNombre": "Ana"},
			})
		case "/api/jugadores/42":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"nombre": "Ana", "Posicion": "Base", "Numero": 7, "Edad": 24, "Estatura": 178,
				"EquipoNombre": "Tigres",
			})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	roster, err := client.ListRoster(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(roster) != 1 || roster[0].PlayerName != "Ana" || roster[0].Position != usecase.Placeholder {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	got, err := client.GetPlayer(context.Background(), 42, "")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Name != "Ana" || got.Number != "7" || got.Nationality != usecase.Placeholder || got.TeamLabel() != "Tigres" {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestClientListLeaders_RequiresArray(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.URL.Query().Get("metric"); got != "faltas" {
			t.Errorf("unexpected metric: %q", got)
		}
		if calls.Load() == 1 {
			writeJSON(t, w, http.StatusOK, map[string]any{"items": []any{}})
			return
		}
		writeJSON(t, w, http.StatusOK, []any{
			map[string]any{"Nombre": "Ana", "EquipoNombre": "Tigres", "Valor": 12.5},
		})
	})

	if _, err := client.ListLeaders(context.Background(), leader.MetricFouls, nil, ""); !errors.Is(err, usecase.ErrUnexpectedPayload) {
		t.Fatalf("expected object payload to be rejected, got=%v", err)
	}

	entries, err := client.ListLeaders(context.Background(), leader.MetricFouls, nil, "")
	if err != nil {
		t.Fatalf("list leaders: %v", err)
	}
	if len(entries) != 1 || entries[0].Value != 12.5 || entries[0].Position != leaderPositionPlaceholder {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestClientListPlayerTotals_ReadsMetricField(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/jugadores" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("equipoId"); got != "2" {
			t.Errorf("unexpected equipoId: %q", got)
		}
		writeJSON(t, w, http.StatusOK, []any{
			map[string]any{"Nombre": "Ana", "Puntos": 30, "Faltas": 2},
			map[string]any{"nombre": "Eva", "puntos": 41},
		})
	})

	entries, err := client.ListPlayerTotals(context.Background(), leader.MetricPoints, int64Ptr(2), "")
	if err != nil {
		t.Fatalf("list totals: %v", err)
	}
	if len(entries) != 2 || entries[0].Value != 30 || entries[1].Value != 41 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if entries[1].ValueText != "41" {
		t.Fatalf("expected upstream number text, got=%q", entries[1].ValueText)
	}
}

func TestClient_CircuitBreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.ListTeams(context.Background(), teamFilter("", ""), ""); err == nil {
			t.Fatalf("expected upstream error")
		}
	}

	_, err := client.ListTeams(context.Background(), teamFilter("", ""), "")
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got=%v", err)
	}
	if _, ok := usecase.AsTransportError(err); !ok {
		t.Fatalf("expected open circuit to surface as transport error")
	}
	if calls.Load() != 2 {
		t.Fatalf("expected rejected request to skip upstream, calls=%d", calls.Load())
	}
}

func TestClientFetchLogo(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var crest bytes.Buffer
	if err := png.Encode(&crest, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("logo requests must not carry credentials")
		}
		switch r.URL.Path {
		case "/crest.png":
			_, _ = w.Write(crest.Bytes())
		case "/html":
			_, _ = w.Write([]byte("<html></html>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	if out := client.FetchLogo(context.Background(), client.baseURL+"/crest.png"); !out.OK() {
		t.Fatalf("expected crest, got placeholder: %s", out.Reason)
	}
	for _, raw := range []string{client.baseURL + "/html", client.baseURL + "/missing", "ftp://example.com/a.png", "::"} {
		if out := client.FetchLogo(context.Background(), raw); out.OK() {
			t.Fatalf("expected placeholder for %q", raw)
		}
	}
}
