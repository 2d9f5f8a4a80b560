package app

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/marcador-reportes/external/backend"
	"github.com/riskibarqy/marcador-reportes/internal/config"
	"github.com/riskibarqy/marcador-reportes/internal/interfaces/httpapi"
	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
	"github.com/riskibarqy/marcador-reportes/internal/platform/resilience"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

// NewHTTPServer wires the backend client, the report use cases and the router.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, errors.New("http server addr cannot be empty")
	}

	client := backend.NewClient(BackendConfig(cfg, logger.Named("backend")))

	opts := ReportOptions(cfg)
	teamReports := usecase.NewTeamReportService(client, client, opts, logger.Named("teams"))
	playerReports := usecase.NewPlayerReportService(client, opts)
	matchReports := usecase.NewMatchReportService(client, opts)
	leaderReports := usecase.NewLeaderService(client, opts, logger.Named("leaders"))

	handler := httpapi.NewHandler(teamReports, playerReports, matchReports, leaderReports, logger)
	router := httpapi.NewRouter(handler, logger.Named("http"), cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func BackendConfig(cfg config.Config, logger *logging.Logger) backend.ClientConfig {
	return backend.ClientConfig{
		BaseURL: cfg.BackendBaseURL,
		Paths: backend.Paths{
			Teams:        cfg.TeamsPath,
			Players:      cfg.PlayersPath,
			MatchHistory: cfg.MatchHistoryPath,
			MatchRoster:  cfg.MatchRosterPath,
			PlayerDetail: cfg.PlayerDetailPath,
			Leaders:      cfg.LeadersPath,
		},
		Timeout:        cfg.UpstreamTimeout,
		LeadersTimeout: cfg.LeadersTimeout,
		LogoTimeout:    cfg.LogoTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.UpstreamCircuit.Enabled,
			FailureThreshold: cfg.UpstreamCircuit.FailureCount,
			OpenTimeout:      cfg.UpstreamCircuit.OpenTimeout,
			HalfOpenMaxReq:   cfg.UpstreamCircuit.HalfOpenMaxReqs,
		},
	}
}

func ReportOptions(cfg config.Config) usecase.ReportOptions {
	opts := usecase.DefaultReportOptions()
	if cfg.ReportAttribution != "" {
		opts.Attribution = cfg.ReportAttribution
	}
	opts.Compress = cfg.ReportCompress
	if cfg.AssetsDir != "" {
		opts.AssetsDir = cfg.AssetsDir
	}
	if cfg.LogoWorkers > 0 {
		opts.LogoWorkers = cfg.LogoWorkers
	}
	return opts
}
