// Package backend reads teams, players, matches and leaderboards from the
// league REST backend and normalizes them into domain values.
package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
	"github.com/riskibarqy/marcador-reportes/internal/platform/resilience"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

const (
	defaultBaseURL        = "http://localhost:5130"
	defaultTimeout        = 30 * time.Second
	defaultLeadersTimeout = 20 * time.Second
	defaultLogoTimeout    = 5 * time.Second

	maxResponseBytes = 6 << 20
	maxLogoBytes     = 5 << 20

	idPlaceholder = "{id}"
)

// Numbers stay json.Number so report cells keep the upstream text.
var upstreamJSON = sonic.Config{UseNumber: true}.Froze()

// Paths are the backend resource paths. MatchRoster and PlayerDetail carry an
// {id} placeholder.
type Paths struct {
	Teams        string
	Players      string
	MatchHistory string
	MatchRoster  string
	PlayerDetail string
	Leaders      string
}

func DefaultPaths() Paths {
	return Paths{
		Teams:        "/api/equipos",
		Players:      "/api/jugadores",
		MatchHistory: "/api/partidos/historial",
		MatchRoster:  "/api/partidos/{id}/roster",
		PlayerDetail: "/api/jugadores/{id}",
		Leaders:      "/api/estadisticas/lideres",
	}
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Paths          Paths
	Timeout        time.Duration
	LeadersTimeout time.Duration
	LogoTimeout    time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	paths          Paths
	timeout        time.Duration
	leadersTimeout time.Duration
	logoTimeout    time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	flight         resilience.SingleFlight[response]
}

type response struct {
	status int
	body   []byte
}

// request is one GET against the backend.
type request struct {
	path          string
	query         url.Values
	authorization string
	timeout       time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	paths := mergePaths(cfg.Paths, DefaultPaths())
	client := &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		paths:          paths,
		timeout:        positiveOr(cfg.Timeout, defaultTimeout),
		leadersTimeout: positiveOr(cfg.LeadersTimeout, defaultLeadersTimeout),
		logoTimeout:    positiveOr(cfg.LogoTimeout, defaultLogoTimeout),
		logger:         logger,
	}
	client.breaker = resilience.NewNamedCircuitBreaker("league-backend", cfg.CircuitBreaker, func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
	})
	return client
}

// Get issues an authenticated GET against path and decodes the JSON body.
// A non-2xx answer is returned as *usecase.UpstreamError; a network failure
// or timeout as *usecase.TransportError.
func (c *Client) Get(ctx context.Context, path string, query url.Values, authorization string) (any, error) {
	resp, err := c.do(ctx, request{path: path, query: query, authorization: authorization, timeout: c.timeout})
	if err != nil {
		return nil, err
	}
	return decode(c.baseURL+path, resp.body)
}

func (c *Client) do(ctx context.Context, req request) (response, error) {
	endpoint := c.baseURL + req.path
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "league backend circuit breaker rejected request", "url", endpoint, "state", c.breaker.State())
		return response{}, &usecase.TransportError{URL: endpoint, Err: err}
	}

	fullURL := endpoint
	if encoded := req.query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// Identical concurrent reads share one round trip; the token is part of
	// the key so callers never see each other's data.
	key := fullURL + "\x00" + req.authorization
	resp, err, _ := c.flight.Do(key, func() (response, error) {
		resp, reqErr := c.execute(ctx, endpoint, fullURL, req)
		if isBreakerFailure(resp, reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return resp, reqErr
	})
	if err != nil {
		return response{}, err
	}
	if resp.status < 200 || resp.status >= 300 {
		return resp, usecase.NewUpstreamError(endpoint, resp.status, string(resp.body))
	}
	return resp, nil
}

func (c *Client) execute(ctx context.Context, endpoint, fullURL string, req request) (response, error) {
	ctx, cancel := context.WithTimeout(ctx, req.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return response{}, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.authorization != "" {
		httpReq.Header.Set("Authorization", req.authorization)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "league backend request failed", "url", endpoint, "error", err)
		return response{}, &usecase.TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.WarnContext(ctx, "league backend response truncated", "url", endpoint, "error", err)
		return response{}, &usecase.TransportError{URL: endpoint, Err: errors.Wrap(err, "read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "league backend returned error status", "url", endpoint, "status", resp.StatusCode)
	}
	return response{status: resp.StatusCode, body: body}, nil
}

func decode(endpoint string, body []byte) (any, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	var out any
	if err := upstreamJSON.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrapf(usecase.ErrUnexpectedPayload, "decode %s: %v", endpoint, err)
	}
	return out, nil
}

// isBreakerFailure counts only outages: transport errors and 5xx answers.
func isBreakerFailure(resp response, err error) bool {
	if err != nil {
		_, ok := usecase.AsTransportError(err)
		return ok
	}
	return resp.status >= http.StatusInternalServerError
}

func resourcePath(template string, id int64) string {
	return strings.ReplaceAll(template, idPlaceholder, strconv.FormatInt(id, 10))
}

func mergePaths(paths, defaults Paths) Paths {
	return Paths{
		Teams:        firstNonEmpty(paths.Teams, defaults.Teams),
		Players:      firstNonEmpty(paths.Players, defaults.Players),
		MatchHistory: firstNonEmpty(paths.MatchHistory, defaults.MatchHistory),
		MatchRoster:  firstNonEmpty(paths.MatchRoster, defaults.MatchRoster),
		PlayerDetail: firstNonEmpty(paths.PlayerDetail, defaults.PlayerDetail),
		Leaders:      firstNonEmpty(paths.Leaders, defaults.Leaders),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if v := strings.TrimSpace(value); v != "" {
			return v
		}
	}
	return ""
}

func positiveOr(v, fallback time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return fallback
}
