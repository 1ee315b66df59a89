package session

import (
	"context"

	"github.com/quizplease/statsboard/internal/domain/game"
)

// Repository keeps each session's current filter selection between
// interactions. State is per session; nothing is shared across sessions.
type Repository interface {
	GetFilters(ctx context.Context, sessionID string) (game.Filter, bool, error)
	SaveFilters(ctx context.Context, sessionID string, filter game.Filter) error
}
