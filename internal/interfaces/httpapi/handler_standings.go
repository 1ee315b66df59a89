package httpapi

import (
	"net/http"

	"github.com/quizplease/statsboard/internal/usecase"
)

type topTeamsQuery struct {
	Limit int `validate:"gte=5,lte=100"`
}

type topFinishesQuery struct {
	TopN int `validate:"oneof=1 3 5 10"`
}

func (h *Handler) ListTopTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopTeams")
	defer span.End()

	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, topTeamsQuery{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := h.filterFromRequest(ctx, r)
	items, err := h.standingsService.TopTeams(ctx, filter, limit)
	if err != nil {
		h.degradeOrError(ctx, w, err, "list top teams failed", []teamStandingDTO{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(ctx, items, teamStandingToDTO))
}

func (h *Handler) ListTopFinishes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopFinishes")
	defer span.End()

	topN, err := queryInt(r, "top_n", 3)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, topFinishesQuery{TopN: topN}); err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := h.filterFromRequest(ctx, r)
	items, err := h.standingsService.TopFinishes(ctx, topN, filter)
	if err != nil {
		h.degradeOrError(ctx, w, err, "list top finishes failed", []finishCountDTO{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(ctx, items, finishCountToDTO))
}

func (h *Handler) GetRoundAverages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundAverages")
	defer span.End()

	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, topTeamsQuery{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := h.filterFromRequest(ctx, r)
	matrix, err := h.standingsService.RoundAverageMatrix(ctx, filter, limit)
	if err != nil {
		h.degradeOrError(ctx, w, err, "get round averages failed", usecase.RoundAverageMatrix{
			Rounds: []string{},
		})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matrix)
}
