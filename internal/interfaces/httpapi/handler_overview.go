package httpapi

import (
	"net/http"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	filter := h.filterFromRequest(ctx, r)
	summary, err := h.overviewService.Summary(ctx, filter)
	if err != nil {
		h.degradeOrError(ctx, w, err, "get overview failed", summaryDTO{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) ListFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFilterOptions")
	defer span.End()

	options, err := h.overviewService.FilterOptions(ctx)
	if err != nil {
		h.degradeOrError(ctx, w, err, "list filter options failed", filterOptionsDTO{
			GameNames:  []string{},
			Categories: []string{},
			Venues:     []string{},
		})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filterOptionsToDTO(options))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	filter := h.filterFromRequest(ctx, r)
	games, err := h.overviewService.ListGames(ctx, filter)
	if err != nil {
		h.degradeOrError(ctx, w, err, "list games failed", []gameDTO{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(ctx, games, gameToDTO))
}
