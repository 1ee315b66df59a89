package standings

import (
	"context"

	"github.com/quizplease/statsboard/internal/domain/game"
)

type Repository interface {
	ListTopTeams(ctx context.Context, filter game.Filter, limit int) ([]TeamStanding, error)
	ListTopFinishes(ctx context.Context, topN int, filter game.Filter) ([]FinishCount, error)
	ListRoundAverages(ctx context.Context, filter game.Filter) ([]RoundAverage, error)
}
