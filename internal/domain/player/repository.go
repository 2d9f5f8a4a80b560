package player

import "context"

// Repository describes player reads from the league backend.
type Repository interface {
	// ListPlayers returns every player, or only those of teamID when set.
	ListPlayers(ctx context.Context, teamID *int64, authorization string) ([]Player, error)
	GetPlayer(ctx context.Context, playerID int64, authorization string) (Player, error)
}
