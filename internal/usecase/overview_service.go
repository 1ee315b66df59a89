package usecase

import (
	"context"
	"fmt"

	"github.com/quizplease/statsboard/internal/domain/game"
)

// OverviewService serves the dashboard's headline view: summary aggregates,
// the game list and the filter option lists.
type OverviewService struct {
	gameRepo game.Repository
}

func NewOverviewService(gameRepo game.Repository) *OverviewService {
	return &OverviewService{gameRepo: gameRepo}
}

func (s *OverviewService) Summary(ctx context.Context, filter game.Filter) (game.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "OverviewService.Summary")
	defer span.End()

	summary, err := s.gameRepo.Summary(ctx, filter)
	if err != nil {
		return game.Summary{}, fmt.Errorf("get summary: %w", err)
	}
	return summary, nil
}

func (s *OverviewService) ListGames(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "OverviewService.ListGames")
	defer span.End()

	games, err := s.gameRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (s *OverviewService) FilterOptions(ctx context.Context) (game.FilterOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "OverviewService.FilterOptions")
	defer span.End()

	options, err := s.gameRepo.FilterOptions(ctx)
	if err != nil {
		return game.FilterOptions{}, fmt.Errorf("list filter options: %w", err)
	}
	return options, nil
}
