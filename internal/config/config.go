package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	LogFormat          logging.Format
	SwaggerEnabled     bool
	PprofEnabled       bool
	PprofAddr          string

	BackendBaseURL   string
	TeamsPath        string
	PlayersPath      string
	MatchHistoryPath string
	MatchRosterPath  string
	PlayerDetailPath string
	LeadersPath      string
	UpstreamTimeout  time.Duration
	LeadersTimeout   time.Duration
	UpstreamCircuit  CircuitConfig

	LogoTimeout       time.Duration
	LogoWorkers       int
	AssetsDir         string
	ReportAttribution string
	ReportCompress    bool

	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// CircuitConfig mirrors resilience.CircuitBreakerConfig without importing it.
type CircuitConfig struct {
	Enabled         bool
	FailureCount    int
	OpenTimeout     time.Duration
	HalfOpenMaxReqs int
}

const (
	defaultBackendBaseURL   = "http://localhost:5130"
	defaultTeamsPath        = "/api/equipos"
	defaultPlayersPath      = "/api/jugadores"
	defaultMatchHistoryPath = "/api/partidos/historial"
	defaultMatchRosterPath  = "/api/partidos/{id}/roster"
	defaultPlayerDetailPath = "/api/jugadores/{id}"
	defaultLeadersPath      = "/api/estadisticas/lideres"
	defaultAttribution      = "Generado por MarcadorReportesPDF-Fase3"
)

// Load reads the process environment, after merging an optional .env file.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := loadDotEnv(getEnv("APP_ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	// Leader fallbacks chain two upstream calls before rendering.
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "60s")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	backendBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("BACK_BASE", defaultBackendBaseURL)), "/")
	if backendBaseURL == "" {
		return Config{}, fmt.Errorf("BACK_BASE cannot be empty")
	}

	upstreamTimeout, err := getEnvAsDuration("UPSTREAM_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	leadersTimeout, err := getEnvAsDuration("LEADERS_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	logoTimeout, err := getEnvAsDuration("LOGO_TIMEOUT", "5s")
	if err != nil {
		return Config{}, err
	}

	logoWorkers, err := getEnvAsInt("LOGO_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOGO_WORKERS: %w", err)
	}
	if logoWorkers < 1 {
		return Config{}, fmt.Errorf("LOGO_WORKERS must be >= 1")
	}

	circuit, err := loadCircuit("UPSTREAM_CIRCUIT")
	if err != nil {
		return Config{}, err
	}

	reportCompress, err := strconv.ParseBool(getEnv("REPORT_COMPRESS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_COMPRESS: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	logFormat := logging.FormatJSON
	if appEnv == EnvDev {
		logFormat = logging.FormatConsole
	}
	if raw := strings.TrimSpace(getEnv("APP_LOG_FORMAT", "")); raw != "" {
		logFormat = logging.Format(strings.ToLower(raw))
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "marcador-reportes"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           resolveHTTPAddr(),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:          logFormat,
		SwaggerEnabled:     swaggerEnabled,
		PprofEnabled:       pprofEnabled,
		PprofAddr:          pprofAddr,

		BackendBaseURL:   backendBaseURL,
		TeamsPath:        getEnv("EQUIPOS_PATH", defaultTeamsPath),
		PlayersPath:      getEnv("PLAYERS_BY_TEAM", defaultPlayersPath),
		MatchHistoryPath: normalizeHistoryPath(getEnv("MATCH_HISTORY", defaultMatchHistoryPath)),
		MatchRosterPath:  getEnv("MATCH_ROSTER_PATH", defaultMatchRosterPath),
		PlayerDetailPath: getEnv("PLAYER_DETAIL_PATH", defaultPlayerDetailPath),
		LeadersPath:      getEnv("LEADERS_PATH", defaultLeadersPath),
		UpstreamTimeout:  upstreamTimeout,
		LeadersTimeout:   leadersTimeout,
		UpstreamCircuit:  circuit,

		LogoTimeout:       logoTimeout,
		LogoWorkers:       logoWorkers,
		AssetsDir:         getEnv("ASSETS_DIR", "assets"),
		ReportAttribution: getEnv("REPORT_ATTRIBUTION", defaultAttribution),
		ReportCompress:    reportCompress,

		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	for key, path := range map[string]string{
		"MATCH_ROSTER_PATH":  cfg.MatchRosterPath,
		"PLAYER_DETAIL_PATH": cfg.PlayerDetailPath,
	} {
		if !strings.Contains(path, "{id}") {
			return Config{}, fmt.Errorf("%s must contain {id}", key)
		}
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadCircuit(prefix string) (CircuitConfig, error) {
	enabled, err := strconv.ParseBool(getEnv(prefix+"_ENABLED", "false"))
	if err != nil {
		return CircuitConfig{}, fmt.Errorf("parse %s_ENABLED: %w", prefix, err)
	}
	failureCount, err := getEnvAsInt(prefix+"_FAILURE_COUNT", 5)
	if err != nil {
		return CircuitConfig{}, fmt.Errorf("parse %s_FAILURE_COUNT: %w", prefix, err)
	}
	if failureCount < 1 {
		return CircuitConfig{}, fmt.Errorf("%s_FAILURE_COUNT must be >= 1", prefix)
	}
	openTimeout, err := getEnvAsDuration(prefix+"_OPEN_TIMEOUT", "15s")
	if err != nil {
		return CircuitConfig{}, err
	}
	halfOpenMaxReq, err := getEnvAsInt(prefix+"_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return CircuitConfig{}, fmt.Errorf("parse %s_HALF_OPEN_MAX_REQ: %w", prefix, err)
	}
	if halfOpenMaxReq < 1 {
		return CircuitConfig{}, fmt.Errorf("%s_HALF_OPEN_MAX_REQ must be >= 1", prefix)
	}

	return CircuitConfig{
		Enabled:         enabled,
		FailureCount:    failureCount,
		OpenTimeout:     openTimeout,
		HalfOpenMaxReqs: halfOpenMaxReq,
	}, nil
}

// resolveHTTPAddr prefers APP_HTTP_ADDR and falls back to a bare PORT.
func resolveHTTPAddr() string {
	if addr := strings.TrimSpace(os.Getenv("APP_HTTP_ADDR")); addr != "" {
		return addr
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return ":" + strings.TrimPrefix(port, ":")
	}
	return ":5055"
}

// normalizeHistoryPath maps the legacy "historico" route onto the current one.
func normalizeHistoryPath(path string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(path), "/")
	if strings.HasSuffix(trimmed, "historico") {
		return defaultMatchHistoryPath
	}
	return path
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
