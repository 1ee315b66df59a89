package results

import (
	"context"

	"github.com/quizplease/statsboard/internal/domain/game"
)

type Repository interface {
	ListGameResults(ctx context.Context, gameID int64) ([]GameResultRow, error)
	ListTeamHistory(ctx context.Context, teamID int64, filter game.Filter) ([]TeamGameRecord, error)
}
