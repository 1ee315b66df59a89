package httpapi

import (
	"net/http"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.degradeOrError(ctx, w, err, "list teams failed", []teamDTO{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(ctx, teams, teamToDTO))
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistory")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := h.filterFromRequest(ctx, r)
	history, err := h.teamService.TeamHistory(ctx, teamID, filter)
	if err != nil {
		h.degradeOrError(ctx, w, err, "get team history failed", []historyRecordDTO{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(ctx, history, historyRecordToDTO))
}

func (h *Handler) GetTeamHistoryChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistoryChart")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := h.filterFromRequest(ctx, r)
	png, err := h.chartService.TeamHistoryChart(ctx, teamID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "render team history chart failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	otherTeamID, err := pathID(r, "otherTeamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := h.filterFromRequest(ctx, r)
	comparison, err := h.comparisonService.CompareTeams(ctx, teamID, otherTeamID, filter)
	if err != nil {
		h.degradeOrError(ctx, w, err, "compare teams failed", nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparison)
}
