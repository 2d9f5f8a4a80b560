package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/marcador-reportes/internal/domain/leader"
	"github.com/riskibarqy/marcador-reportes/internal/domain/match"
	"github.com/riskibarqy/marcador-reportes/internal/domain/player"
	"github.com/riskibarqy/marcador-reportes/internal/domain/team"
	"github.com/riskibarqy/marcador-reportes/internal/platform/fieldmap"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

var (
	_ team.Repository   = (*Client)(nil)
	_ team.LogoSource   = (*Client)(nil)
	_ player.Repository = (*Client)(nil)
	_ match.Repository  = (*Client)(nil)
	_ leader.Repository = (*Client)(nil)
)

func (c *Client) ListTeams(ctx context.Context, filter team.Filter, authorization string) ([]team.Team, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.City != "" {
		query.Set("ciudad", filter.City)
	}

	records, _, err := c.list(ctx, c.paths.Teams, query, authorization)
	if err != nil {
		return nil, err
	}
	out := make([]team.Team, 0, len(records))
	for _, rec := range records {
		out = append(out, toTeam(rec))
	}
	return out, nil
}

func (c *Client) ListPlayers(ctx context.Context, teamID *int64, authorization string) ([]player.Player, error) {
	query := url.Values{}
	setID(query, "equipoId", teamID)

	records, _, err := c.list(ctx, c.paths.Players, query, authorization)
	if err != nil {
		return nil, err
	}
	out := make([]player.Player, 0, len(records))
	for _, rec := range records {
		out = append(out, toPlayer(rec))
	}
	return out, nil
}

func (c *Client) GetPlayer(ctx context.Context, playerID int64, authorization string) (player.Player, error) {
	path := resourcePath(c.paths.PlayerDetail, playerID)
	payload, err := c.Get(ctx, path, nil, authorization)
	if err != nil {
		return player.Player{}, err
	}

	switch typed := payload.(type) {
	case nil:
		return toPlayer(fieldmap.Record{}), nil
	case map[string]any:
		return toPlayer(fieldmap.Record(typed)), nil
	default:
		return player.Player{}, errors.Wrapf(usecase.ErrUnexpectedPayload, "%s: expected object, got %T", c.baseURL+path, payload)
	}
}

func (c *Client) ListHistory(ctx context.Context, seasonID *int64, authorization string) ([]match.Match, error) {
	query := url.Values{}
	setID(query, "temporadaId", seasonID)

	records, positions, err := c.list(ctx, c.paths.MatchHistory, query, authorization)
	if err != nil {
		return nil, err
	}
	out := make([]match.Match, 0, len(records))
	for i, rec := range records {
		out = append(out, toMatch(rec, positions[i]))
	}
	return out, nil
}

func (c *Client) ListRoster(ctx context.Context, matchID int64, authorization string) ([]match.RosterEntry, error) {
	records, _, err := c.list(ctx, resourcePath(c.paths.MatchRoster, matchID), nil, authorization)
	if err != nil {
		return nil, err
	}
	out := make([]match.RosterEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, toRosterEntry(rec))
	}
	return out, nil
}

// ListLeaders only trusts a 200 answer carrying a JSON array.
func (c *Client) ListLeaders(ctx context.Context, metric leader.Metric, teamID *int64, authorization string) ([]leader.Entry, error) {
	query := url.Values{}
	query.Set("metric", string(metric))
	setID(query, "equipoId", teamID)

	endpoint := c.baseURL + c.paths.Leaders
	resp, err := c.do(ctx, request{path: c.paths.Leaders, query: query, authorization: authorization, timeout: c.leadersTimeout})
	if err != nil {
		return nil, err
	}
	if resp.status != 200 {
		return nil, usecase.NewUpstreamError(endpoint, resp.status, string(resp.body))
	}
	payload, err := decode(endpoint, resp.body)
	if err != nil {
		return nil, err
	}
	items, ok := payload.([]any)
	if !ok {
		return nil, errors.Wrapf(usecase.ErrUnexpectedPayload, "%s: expected array, got %T", endpoint, payload)
	}

	records, _ := fieldmap.Records(items)
	out := make([]leader.Entry, 0, len(records))
	for _, rec := range records {
		out = append(out, toLeaderEntry(rec))
	}
	return out, nil
}

func (c *Client) ListPlayerTotals(ctx context.Context, metric leader.Metric, teamID *int64, authorization string) ([]leader.Entry, error) {
	query := url.Values{}
	setID(query, "equipoId", teamID)

	resp, err := c.do(ctx, request{path: c.paths.Players, query: query, authorization: authorization, timeout: c.leadersTimeout})
	if err != nil {
		return nil, err
	}
	payload, err := decode(c.baseURL+c.paths.Players, resp.body)
	if err != nil {
		return nil, err
	}
	items, err := listItems(c.baseURL+c.paths.Players, payload)
	if err != nil {
		return nil, err
	}

	records, _ := fieldmap.Records(items)
	out := make([]leader.Entry, 0, len(records))
	for _, rec := range records {
		out = append(out, toPlayerTotal(rec, metric))
	}
	return out, nil
}

// list fetches a collection and returns its object entries with their
// 1-based positions in the upstream array.
func (c *Client) list(ctx context.Context, path string, query url.Values, authorization string) ([]fieldmap.Record, []int, error) {
	payload, err := c.Get(ctx, path, query, authorization)
	if err != nil {
		return nil, nil, err
	}
	items, err := listItems(c.baseURL+path, payload)
	if err != nil {
		return nil, nil, err
	}
	records, positions := fieldmap.Records(items)
	return records, positions, nil
}

// listItems accepts a bare array, an object wrapping it under "items", or
// null for an empty collection.
func listItems(endpoint string, payload any) ([]any, error) {
	switch typed := payload.(type) {
	case nil:
		return nil, nil
	case []any:
		return typed, nil
	case map[string]any:
		switch items := typed["items"].(type) {
		case []any:
			return items, nil
		case nil:
			if _, present := typed["items"]; present {
				return nil, nil
			}
		}
	}
	return nil, errors.Wrapf(usecase.ErrUnexpectedPayload, "%s: expected array, got %T", endpoint, payload)
}

func setID(query url.Values, key string, id *int64) {
	if id == nil {
		return
	}
	query.Set(key, strconv.FormatInt(*id, 10))
}
