package memory

import (
	"context"
	"sync"

	"github.com/quizplease/statsboard/internal/domain/game"
)

// SessionRepository keeps per-session filter selections in process memory.
// Sessions are ephemeral; a restart clears all selections.
type SessionRepository struct {
	mu      sync.RWMutex
	filters map[string]game.Filter
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{filters: make(map[string]game.Filter)}
}

func (r *SessionRepository) GetFilters(_ context.Context, sessionID string) (game.Filter, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter, ok := r.filters[sessionID]
	return filter, ok, nil
}

func (r *SessionRepository) SaveFilters(_ context.Context, sessionID string, filter game.Filter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.filters[sessionID] = filter
	return nil
}
