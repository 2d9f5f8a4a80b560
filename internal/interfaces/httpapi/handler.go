package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/marcador-reportes/internal/platform/logging"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

type Handler struct {
	teamReports   *usecase.TeamReportService
	playerReports *usecase.PlayerReportService
	matchReports  *usecase.MatchReportService
	leaderReports *usecase.LeaderService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	teamReports *usecase.TeamReportService,
	playerReports *usecase.PlayerReportService,
	matchReports *usecase.MatchReportService,
	leaderReports *usecase.LeaderService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamReports:   teamReports,
		playerReports: playerReports,
		matchReports:  matchReports,
		leaderReports: leaderReports,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
