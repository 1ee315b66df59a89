package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/quizplease/statsboard/internal/usecase"
)

func (h *Handler) GetSessionFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSessionFilters")
	defer span.End()

	sessionID := strings.TrimSpace(r.Header.Get(sessionHeader))
	filter, err := h.sessionService.Filters(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filterToDTO(filter))
}

func (h *Handler) PutSessionFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutSessionFilters")
	defer span.End()

	sessionID := strings.TrimSpace(r.Header.Get(sessionHeader))

	var req filterDTO
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.sessionService.SaveFilters(ctx, sessionID, req.toFilter()); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, req)
}
