package httpapi

import (
	"fmt"
	"net/http"

	"github.com/quizplease/statsboard/internal/usecase"
)

func (h *Handler) GetGameLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameLeaderboard")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.leaderboardService.GameLeaderboard(ctx, gameID)
	if err != nil {
		h.degradeOrError(ctx, w, err, "get game leaderboard failed", usecase.Leaderboard{
			Rounds: []string{},
		})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) ExportGameLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportGameLeaderboard")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	workbook, err := h.exportService.GameLeaderboardXLSX(ctx, gameID)
	if err != nil {
		h.logger.ErrorContext(ctx, "export game leaderboard failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"leaderboard-%d.xlsx\"", gameID))
	_, _ = w.Write(workbook)
}

func (h *Handler) CompareGameRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareGameRounds")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID, err := queryInt(r, "team_id", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if teamID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: team_id query parameter is required", usecase.ErrInvalidInput))
		return
	}

	comparison, err := h.comparisonService.RoundComparison(ctx, gameID, int64(teamID))
	if err != nil {
		h.degradeOrError(ctx, w, err, "compare game rounds failed", usecase.RoundComparison{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparison)
}

func (h *Handler) GetGameRoundsChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameRoundsChart")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID, err := queryInt(r, "team_id", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if teamID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: team_id query parameter is required", usecase.ErrInvalidInput))
		return
	}

	png, err := h.chartService.RoundComparisonChart(ctx, gameID, int64(teamID))
	if err != nil {
		h.logger.ErrorContext(ctx, "render game rounds chart failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
