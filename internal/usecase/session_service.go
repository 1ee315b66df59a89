package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/session"
)

// SessionService keeps each caller's filter selection between requests, so a
// dashboard client can set filters once and have every later view honor them.
type SessionService struct {
	sessionRepo session.Repository
}

func NewSessionService(sessionRepo session.Repository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

// Filters returns the selection held for the session; a session without a
// stored selection gets the zero filter (match everything).
func (s *SessionService) Filters(ctx context.Context, sessionID string) (game.Filter, error) {
	ctx, span := startUsecaseSpan(ctx, "SessionService.Filters")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return game.Filter{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	filter, _, err := s.sessionRepo.GetFilters(ctx, sessionID)
	if err != nil {
		return game.Filter{}, fmt.Errorf("get session filters: %w", err)
	}
	return filter, nil
}

func (s *SessionService) SaveFilters(ctx context.Context, sessionID string, filter game.Filter) error {
	ctx, span := startUsecaseSpan(ctx, "SessionService.SaveFilters")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	if err := s.sessionRepo.SaveFilters(ctx, sessionID, normalizeFilter(filter)); err != nil {
		return fmt.Errorf("save session filters: %w", err)
	}
	return nil
}

// normalizeFilter drops blank values so an all-blank selection round-trips as
// the zero filter.
func normalizeFilter(filter game.Filter) game.Filter {
	return game.Filter{
		GameNames:  trimNonEmpty(filter.GameNames),
		Categories: trimNonEmpty(filter.Categories),
		Venues:     trimNonEmpty(filter.Venues),
	}
}

func trimNonEmpty(values []string) []string {
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
