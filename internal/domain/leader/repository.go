package leader

import "context"

// Repository describes leaderboard reads from the league backend.
type Repository interface {
	// ListLeaders calls the dedicated leaders endpoint. Any error, including
	// a non-200 status or an unexpected payload shape, means the caller
	// should fall back to ListPlayerTotals.
	ListLeaders(ctx context.Context, metric Metric, teamID *int64, authorization string) ([]Entry, error)
	// ListPlayerTotals returns unsorted per-player totals for metric.
	ListPlayerTotals(ctx context.Context, metric Metric, teamID *int64, authorization string) ([]Entry, error)
}
