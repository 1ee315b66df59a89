package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
	"github.com/quizplease/statsboard/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTeamRepo struct {
	teams []team.Team
}

func (r *stubTeamRepo) List(_ context.Context) ([]team.Team, error) {
	return r.teams, nil
}

func comparisonFixture(histories map[int64][]results.TeamGameRecord, gameResults []results.GameResultRow) *ComparisonService {
	return NewComparisonService(
		&stubTeamRepo{teams: []team.Team{
			{ID: 1, Name: "Alpha"},
			{ID: 2, Name: "Beta"},
		}},
		&stubResultsRepo{histories: histories, gameResults: gameResults},
	)
}

func historyRecord(gameID int64, rank int, total float64) results.TeamGameRecord {
	return results.TeamGameRecord{
		GameID:     gameID,
		GameDate:   time.Date(2026, time.January, int(gameID), 19, 0, 0, 0, time.UTC),
		Rank:       rank,
		TotalScore: total,
	}
}

func TestRoundComparison_Triplets(t *testing.T) {
	service := comparisonFixture(nil, []results.GameResultRow{
		resultRow("Beta", 1, 50, "Round 1", 12),
		resultRow("Beta", 1, 50, "Round 2", 10),
		resultRow("Alpha", 2, 40, "Round 1", 8),
		resultRow("Alpha", 2, 40, "Round 2", 11),
	})

	comparison, err := service.RoundComparison(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "Alpha", comparison.Team)
	assert.Equal(t, "Beta", comparison.Winner)
	require.Len(t, comparison.Rounds, 2)

	first := comparison.Rounds[0]
	assert.Equal(t, "Round 1", first.Round)
	assert.Equal(t, 8.0, first.TeamScore)
	assert.Equal(t, 12.0, first.WinnerScore)
	assert.Equal(t, 12.0, first.MaxScore)
	assert.Equal(t, []string{"Beta"}, first.MaxScorers)

	// Alpha beat the winner in Round 2 and takes the round maximum.
	second := comparison.Rounds[1]
	assert.Equal(t, 11.0, second.TeamScore)
	assert.Equal(t, 10.0, second.WinnerScore)
	assert.Equal(t, 11.0, second.MaxScore)
	assert.Equal(t, []string{"Alpha"}, second.MaxScorers)
}

func TestRoundComparison_TiedMaximumListsAllScorers(t *testing.T) {
	service := comparisonFixture(nil, []results.GameResultRow{
		resultRow("Beta", 1, 20, "Round 1", 10),
		resultRow("Alpha", 2, 18, "Round 1", 10),
	})

	comparison, err := service.RoundComparison(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, comparison.Rounds, 1)
	assert.Equal(t, []string{"Beta", "Alpha"}, comparison.Rounds[0].MaxScorers)
}

func TestRoundComparison_AbsentScoreChartsAsZero(t *testing.T) {
	service := comparisonFixture(nil, []results.GameResultRow{
		resultRow("Beta", 1, 20, "Round 1", 10),
		{Team: "Alpha", Rank: 2, TotalScore: 5},
	})

	comparison, err := service.RoundComparison(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, comparison.Rounds, 1)
	assert.Equal(t, 0.0, comparison.Rounds[0].TeamScore)
}

func TestHeadToHead_WinsSumToCommonGames(t *testing.T) {
	service := comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {
			historyRecord(1, 1, 50),
			historyRecord(2, 3, 30),
			historyRecord(3, 2, 40), // tied rank, higher total
			historyRecord(4, 2, 35), // tied rank and total, lower id
			historyRecord(9, 1, 60), // not played by Beta
		},
		2: {
			historyRecord(1, 2, 45),
			historyRecord(2, 1, 55),
			historyRecord(3, 2, 38),
			historyRecord(4, 2, 35),
		},
	}, nil)

	h2h, err := service.HeadToHead(context.Background(), 1, 2, game.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 4, h2h.CommonGames)
	assert.Equal(t, 3, h2h.TeamAWins)
	assert.Equal(t, 1, h2h.TeamBWins)
	assert.Equal(t, h2h.CommonGames, h2h.TeamAWins+h2h.TeamBWins)
	assert.Equal(t, "Alpha", h2h.TeamA)
	assert.Equal(t, "Beta", h2h.TeamB)
}

func TestHeadToHead_SameTeamRejected(t *testing.T) {
	service := comparisonFixture(nil, nil)

	_, err := service.HeadToHead(context.Background(), 1, 1, game.Filter{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompareTeams_RadarInversion(t *testing.T) {
	service := comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {historyRecord(1, 3, 30)},
		2: {historyRecord(1, 7, 10)},
	}, nil)

	comparison, err := service.CompareTeams(context.Background(), 1, 2, game.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3.0, comparison.TeamA.AvgRank)
	assert.Equal(t, 7.0, comparison.TeamB.AvgRank)
	assert.Equal(t, 7.0, comparison.RadarA.InvertedAvgRank)
	assert.Equal(t, 3.0, comparison.RadarB.InvertedAvgRank)
}

func TestCompareTeams_RankCeilingGrowsPastTen(t *testing.T) {
	service := comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {historyRecord(1, 4, 30)},
		2: {historyRecord(1, 15, 10)},
	}, nil)

	comparison, err := service.CompareTeams(context.Background(), 1, 2, game.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 11.0, comparison.RadarA.InvertedAvgRank)
	assert.Equal(t, 0.0, comparison.RadarB.InvertedAvgRank)
}

func TestCompareTeams_Metrics(t *testing.T) {
	service := comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {
			historyRecord(1, 1, 50),
			historyRecord(2, 5, 30),
			historyRecord(3, 3, 40),
		},
		2: {historyRecord(1, 2, 45)},
	}, nil)

	comparison, err := service.CompareTeams(context.Background(), 1, 2, game.Filter{})
	require.NoError(t, err)

	a := comparison.TeamA
	assert.Equal(t, 3, a.GamesPlayed)
	assert.Equal(t, 120.0, a.TotalPoints)
	assert.Equal(t, 40.0, a.AvgPoints)
	assert.Equal(t, 3.0, a.AvgRank)
	assert.Equal(t, 1, a.BestRank)
	assert.Equal(t, 5, a.WorstRank)
	assert.InDelta(t, 66.67, a.Top3Rate, 0.01)
}

func TestCompareTeams_UnknownTeam(t *testing.T) {
	service := comparisonFixture(nil, nil)

	_, err := service.CompareTeams(context.Background(), 1, 42, game.Filter{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamDynamics_SortedAscWithMedian(t *testing.T) {
	service := comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {
			historyRecord(3, 2, 40),
			historyRecord(1, 1, 50),
			historyRecord(2, 3, 30),
		},
	}, nil)

	dynamics, err := service.TeamDynamics(context.Background(), 1, game.Filter{})
	require.NoError(t, err)

	require.Len(t, dynamics.Games, 3)
	assert.Equal(t, int64(1), dynamics.Games[0].GameID)
	assert.Equal(t, int64(3), dynamics.Games[2].GameID)
	assert.Equal(t, 40.0, dynamics.MedianScore)
}

func TestTeamDynamics_EvenCountMedian(t *testing.T) {
	service := comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {
			historyRecord(1, 1, 50),
			historyRecord(2, 2, 30),
		},
	}, nil)

	dynamics, err := service.TeamDynamics(context.Background(), 1, game.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 40.0, dynamics.MedianScore)
}
