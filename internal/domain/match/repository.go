package match

import "context"

// Repository describes match reads from the league backend.
type Repository interface {
	// ListHistory returns matches of seasonID, or of every season when nil.
	ListHistory(ctx context.Context, seasonID *int64, authorization string) ([]Match, error)
	ListRoster(ctx context.Context, matchID int64, authorization string) ([]RosterEntry, error)
}
