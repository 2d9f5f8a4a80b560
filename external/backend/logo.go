package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/riskibarqy/marcador-reportes/internal/platform/logo"
)

// FetchLogo downloads a crest with the short logo timeout. It never sends the
// caller's credentials and never fails: anything but a decodable image from
// a 200 answer becomes a placeholder outcome.
func (c *Client) FetchLogo(ctx context.Context, rawURL string) logo.Outcome {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return logo.Placeholder("invalid logo url %q", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, c.logoTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return logo.Placeholder("build logo request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return logo.Placeholder("fetch logo: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return logo.Placeholder("logo status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return logo.Placeholder("read logo: %v", err)
	}
	return logo.Sniff(data)
}
