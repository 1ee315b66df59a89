package usecase

import (
	"context"
	"testing"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResultsRepo struct {
	gameResults []results.GameResultRow
	histories   map[int64][]results.TeamGameRecord
}

func (r *stubResultsRepo) ListGameResults(_ context.Context, _ int64) ([]results.GameResultRow, error) {
	return r.gameResults, nil
}

func (r *stubResultsRepo) ListTeamHistory(_ context.Context, teamID int64, _ game.Filter) ([]results.TeamGameRecord, error) {
	return r.histories[teamID], nil
}

func sptr(s string) *string   { return &s }
func fptr(f float64) *float64 { return &f }

func resultRow(team string, rank int, total float64, round string, score float64) results.GameResultRow {
	return results.GameResultRow{
		Team:       team,
		Rank:       rank,
		TotalScore: total,
		RoundName:  sptr(round),
		Score:      fptr(score),
	}
}

func TestGameLeaderboard_PivotShape(t *testing.T) {
	repo := &stubResultsRepo{gameResults: []results.GameResultRow{
		resultRow("Alpha", 1, 50, "Round 1", 10),
		resultRow("Alpha", 1, 50, "Round 2", 12),
		resultRow("Beta", 2, 40, "Round 1", 9),
		resultRow("Beta", 2, 40, "Round 2", 8),
		resultRow("Gamma", 3, 30, "Round 1", 7),
	}}
	service := NewLeaderboardService(repo)

	board, err := service.GameLeaderboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Round 1", "Round 2"}, board.Rounds)
	require.Len(t, board.Rows, 3)
	for _, row := range board.Rows {
		assert.Len(t, row.Scores, 2)
	}

	assert.Equal(t, "Alpha", board.Winner)
	assert.Equal(t, 50.0, board.HighestTotal)

	// Gamma never played Round 2; the cell stays absent, not zero.
	gamma := board.Rows[2]
	assert.Equal(t, "Gamma", gamma.Team)
	require.NotNil(t, gamma.Scores[0])
	assert.Equal(t, 7.0, *gamma.Scores[0])
	assert.Nil(t, gamma.Scores[1])
}

func TestGameLeaderboard_TiedRanksKeepStoreOrder(t *testing.T) {
	repo := &stubResultsRepo{gameResults: []results.GameResultRow{
		resultRow("First", 1, 44, "Round 1", 11),
		resultRow("AlsoFirst", 1, 44, "Round 1", 11),
		resultRow("Third", 3, 20, "Round 1", 5),
	}}
	service := NewLeaderboardService(repo)

	board, err := service.GameLeaderboard(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, board.Rows, 3)
	assert.Equal(t, "First", board.Rows[0].Team)
	assert.Equal(t, "AlsoFirst", board.Rows[1].Team)
	assert.Equal(t, "First", board.Winner)
}

func TestGameLeaderboard_NaturalRoundColumnOrder(t *testing.T) {
	repo := &stubResultsRepo{gameResults: []results.GameResultRow{
		resultRow("Alpha", 1, 30, "Round 10", 10),
		resultRow("Alpha", 1, 30, "Round 2", 10),
		resultRow("Alpha", 1, 30, "Bonus", 10),
	}}
	service := NewLeaderboardService(repo)

	board, err := service.GameLeaderboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Round 2", "Round 10", "Bonus"}, board.Rounds)
}

func TestGameLeaderboard_TeamWithoutRoundScores(t *testing.T) {
	repo := &stubResultsRepo{gameResults: []results.GameResultRow{
		resultRow("Alpha", 1, 30, "Round 1", 10),
		{Team: "Quiet", Rank: 2, TotalScore: 20},
	}}
	service := NewLeaderboardService(repo)

	board, err := service.GameLeaderboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, board.Rows, 2)
	assert.Equal(t, "Quiet", board.Rows[1].Team)
	assert.Nil(t, board.Rows[1].Scores[0])
}

func TestGameLeaderboard_EmptyGame(t *testing.T) {
	service := NewLeaderboardService(&stubResultsRepo{})

	board, err := service.GameLeaderboard(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, board.Rows)
	assert.Empty(t, board.Winner)
}

func TestGameLeaderboard_InvalidGameID(t *testing.T) {
	service := NewLeaderboardService(&stubResultsRepo{})

	_, err := service.GameLeaderboard(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
