package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/platform/logging"
	"github.com/quizplease/statsboard/internal/usecase"
)

const sessionHeader = "X-Session-ID"

type Handler struct {
	overviewService    *usecase.OverviewService
	teamService        *usecase.TeamService
	leaderboardService *usecase.LeaderboardService
	standingsService   *usecase.StandingsService
	comparisonService  *usecase.ComparisonService
	sessionService     *usecase.SessionService
	chartService       *usecase.ChartService
	exportService      *usecase.ExportService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	overviewService *usecase.OverviewService,
	teamService *usecase.TeamService,
	leaderboardService *usecase.LeaderboardService,
	standingsService *usecase.StandingsService,
	comparisonService *usecase.ComparisonService,
	sessionService *usecase.SessionService,
	chartService *usecase.ChartService,
	exportService *usecase.ExportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		overviewService:    overviewService,
		teamService:        teamService,
		leaderboardService: leaderboardService,
		standingsService:   standingsService,
		comparisonService:  comparisonService,
		sessionService:     sessionService,
		chartService:       chartService,
		exportService:      exportService,
		logger:             logger,
		validator:          validator.New(),
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

// filterFromRequest resolves the active filter: explicit query parameters win;
// otherwise the session-held selection applies; a request with neither gets
// the zero filter.
func (h *Handler) filterFromRequest(ctx context.Context, r *http.Request) game.Filter {
	query := r.URL.Query()
	filter := game.Filter{
		GameNames:  trimValues(query["game_name"]),
		Categories: trimValues(query["category"]),
		Venues:     trimValues(query["venue"]),
	}
	if !filter.IsZero() {
		return filter
	}

	sessionID := strings.TrimSpace(r.Header.Get(sessionHeader))
	if sessionID == "" {
		return game.Filter{}
	}

	stored, err := h.sessionService.Filters(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "session filters unavailable", "error", err)
		return game.Filter{}
	}
	return stored
}

func trimValues(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

// degradeOrError reports a failed read: caller faults surface as 4xx, store
// faults are logged and answered with the flagged-empty payload.
func (h *Handler) degradeOrError(ctx context.Context, w http.ResponseWriter, err error, msg string, emptyData any) {
	if isCallerFault(err) {
		writeError(ctx, w, err)
		return
	}
	h.logger.ErrorContext(ctx, msg, "error", err)
	writeDegraded(ctx, w, emptyData)
}
