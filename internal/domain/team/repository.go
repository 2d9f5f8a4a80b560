package team

import (
	"context"

	"github.com/riskibarqy/marcador-reportes/internal/platform/logo"
)

// Repository describes the team listing the report use cases need.
type Repository interface {
	ListTeams(ctx context.Context, filter Filter, authorization string) ([]Team, error)
}

// LogoSource fetches remote crests. Implementations never fail; a broken
// image comes back as a placeholder outcome.
type LogoSource interface {
	FetchLogo(ctx context.Context, rawURL string) logo.Outcome
}
