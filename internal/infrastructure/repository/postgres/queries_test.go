package postgres

import (
	"testing"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameFilterConditions_EmptyFilterAddsNothing(t *testing.T) {
	conditions := gameFilterConditions("g", game.Filter{})
	assert.Empty(t, conditions)

	query, args, err := buildGameListQuery(game.Filter{})
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildGameListQuery_WithFilter(t *testing.T) {
	filter := game.Filter{
		GameNames: []string{"Classic", "Music"},
		Venues:    []string{"Downtown Pub"},
	}

	query, args, err := buildGameListQuery(filter)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, game_date, game_name, game_number, category, venue"+
			" FROM quizplease.games"+
			" WHERE game_name IN ($1, $2) AND venue IN ($3)"+
			" ORDER BY game_date DESC, id DESC",
		query,
	)
	assert.Equal(t, []any{"Classic", "Music", "Downtown Pub"}, args)
}

func TestBuildSummaryQuery_FilterArgsFlowIntoCTE(t *testing.T) {
	filter := game.Filter{Categories: []string{"Classic"}}

	query, args, err := buildSummaryQuery(filter)
	require.NoError(t, err)
	assert.Contains(t, query, "WITH filtered_games AS (")
	assert.Contains(t, query, "category IN ($1)")
	assert.Contains(t, query, "COALESCE((SELECT AVG(team_count)::float8 FROM game_counts), 0)")
	assert.Equal(t, []any{"Classic"}, args)
}

func TestBuildTopTeamsQuery(t *testing.T) {
	query, args, err := buildTopTeamsQuery(game.Filter{Venues: []string{"Arena"}}, 10)
	require.NoError(t, err)
	assert.Contains(t, query, "ROUND(AVG(tgp.total_score), 1)::float8 AS avg_points")
	assert.Contains(t, query, "GROUP BY t.id, t.name")
	assert.Contains(t, query, "ORDER BY total_points DESC")
	assert.Contains(t, query, "LIMIT 10")
	assert.Equal(t, []any{"Arena"}, args)
}

func TestBuildTopTeamsQuery_NoLimit(t *testing.T) {
	query, _, err := buildTopTeamsQuery(game.Filter{}, 0)
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}

func TestBuildTopFinishesQuery_RankBoundComesFirst(t *testing.T) {
	query, args, err := buildTopFinishesQuery(3, game.Filter{GameNames: []string{"Classic"}})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE tgp.rank <= $1 AND g.game_name IN ($2)")
	assert.Equal(t, []any{3, "Classic"}, args)
}

func TestBuildRoundAveragesQuery(t *testing.T) {
	query, args, err := buildRoundAveragesQuery(game.Filter{})
	require.NoError(t, err)
	assert.Contains(t, query, "JOIN quizplease.round_scores rs ON tgp.id = rs.participation_id")
	assert.Contains(t, query, "GROUP BY t.name, rs.round_name")
	assert.Empty(t, args)
}

func TestBuildGameResultsQuery_LeftJoinKeepsUnscoredTeams(t *testing.T) {
	query, args, err := buildGameResultsQuery(42)
	require.NoError(t, err)
	assert.Contains(t, query, "LEFT JOIN quizplease.round_scores rs")
	assert.Contains(t, query, "WHERE tgp.game_id = $1")
	assert.Contains(t, query, "ORDER BY tgp.rank ASC, rs.round_name")
	assert.Equal(t, []any{int64(42)}, args)
}

func TestBuildTeamHistoryQuery(t *testing.T) {
	query, args, err := buildTeamHistoryQuery(7, game.Filter{Categories: []string{"Music"}})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE tgp.team_id = $1 AND g.category IN ($2)")
	assert.Contains(t, query, "ORDER BY g.game_date DESC, g.id DESC")
	assert.Equal(t, []any{int64(7), "Music"}, args)
}
