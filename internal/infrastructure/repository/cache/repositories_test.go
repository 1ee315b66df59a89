package cache

import (
	"context"
	"testing"
	"time"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/standings"
	platformcache "github.com/quizplease/statsboard/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGameRepo struct {
	listCalls    int
	optionsCalls int
	summaryCalls int
}

func (r *countingGameRepo) List(_ context.Context, _ game.Filter) ([]game.Game, error) {
	r.listCalls++
	return []game.Game{{ID: 1, Name: "Classic"}}, nil
}

func (r *countingGameRepo) FilterOptions(_ context.Context) (game.FilterOptions, error) {
	r.optionsCalls++
	return game.FilterOptions{GameNames: []string{"Classic"}}, nil
}

func (r *countingGameRepo) Summary(_ context.Context, _ game.Filter) (game.Summary, error) {
	r.summaryCalls++
	return game.Summary{TotalGames: 3}, nil
}

type countingStandingsRepo struct {
	topTeamsCalls int
}

func (r *countingStandingsRepo) ListTopTeams(_ context.Context, _ game.Filter, _ int) ([]standings.TeamStanding, error) {
	r.topTeamsCalls++
	return []standings.TeamStanding{{Team: "Quizzards"}}, nil
}

func (r *countingStandingsRepo) ListTopFinishes(_ context.Context, _ int, _ game.Filter) ([]standings.FinishCount, error) {
	return nil, nil
}

func (r *countingStandingsRepo) ListRoundAverages(_ context.Context, _ game.Filter) ([]standings.RoundAverage, error) {
	return nil, nil
}

func TestGameRepository_RepeatedCallsHitCache(t *testing.T) {
	next := &countingGameRepo{}
	repo := NewGameRepository(next, platformcache.NewStore(time.Minute))
	ctx := context.Background()
	filter := game.Filter{GameNames: []string{"Classic"}}

	first, err := repo.List(ctx, filter)
	require.NoError(t, err)
	second, err := repo.List(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.listCalls)
}

func TestGameRepository_FilterValueOrderSharesEntry(t *testing.T) {
	next := &countingGameRepo{}
	repo := NewGameRepository(next, platformcache.NewStore(time.Minute))
	ctx := context.Background()

	_, err := repo.List(ctx, game.Filter{GameNames: []string{"Classic", "Music"}})
	require.NoError(t, err)
	_, err = repo.List(ctx, game.Filter{GameNames: []string{"Music", "Classic"}})
	require.NoError(t, err)

	assert.Equal(t, 1, next.listCalls)
}

func TestGameRepository_DistinctFiltersGetDistinctEntries(t *testing.T) {
	next := &countingGameRepo{}
	repo := NewGameRepository(next, platformcache.NewStore(time.Minute))
	ctx := context.Background()

	_, err := repo.Summary(ctx, game.Filter{})
	require.NoError(t, err)
	_, err = repo.Summary(ctx, game.Filter{Venues: []string{"Arena"}})
	require.NoError(t, err)

	assert.Equal(t, 2, next.summaryCalls)
}

func TestStandingsRepository_LimitIsPartOfKey(t *testing.T) {
	next := &countingStandingsRepo{}
	repo := NewStandingsRepository(next, platformcache.NewStore(time.Minute))
	ctx := context.Background()

	_, err := repo.ListTopTeams(ctx, game.Filter{}, 10)
	require.NoError(t, err)
	_, err = repo.ListTopTeams(ctx, game.Filter{}, 20)
	require.NoError(t, err)
	_, err = repo.ListTopTeams(ctx, game.Filter{}, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, next.topTeamsCalls)
}
