package postgres

import (
	"context"
	"fmt"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
	qb "github.com/quizplease/statsboard/internal/platform/querybuilder"
)

type ResultsRepository struct {
	client *Client
}

func NewResultsRepository(client *Client) *ResultsRepository {
	return &ResultsRepository{client: client}
}

// ListGameResults returns one row per (team, round) pair. The left join keeps
// teams without round scores present with NULL round fields so every ranked
// team appears on the leaderboard.
func (r *ResultsRepository) ListGameResults(ctx context.Context, gameID int64) ([]results.GameResultRow, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildGameResultsQuery(gameID)
	if err != nil {
		return nil, fmt.Errorf("build game results query: %w", err)
	}

	var rows []gameResultRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list game results: %w", err)
	}

	out := make([]results.GameResultRow, 0, len(rows))
	for _, row := range rows {
		item := results.GameResultRow{
			Team:       row.Name,
			Rank:       row.Rank,
			TotalScore: row.TotalScore,
		}
		if row.RoundName.Valid {
			name := row.RoundName.String
			item.RoundName = &name
		}
		if row.Score.Valid {
			score := row.Score.Float64
			item.Score = &score
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ResultsRepository) ListTeamHistory(ctx context.Context, teamID int64, filter game.Filter) ([]results.TeamGameRecord, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildTeamHistoryQuery(teamID, filter)
	if err != nil {
		return nil, fmt.Errorf("build team history query: %w", err)
	}

	var rows []teamHistoryRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team history: %w", err)
	}

	out := make([]results.TeamGameRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, results.TeamGameRecord{
			GameID:     row.GameID,
			GameDate:   row.GameDate,
			GameName:   row.GameName,
			Rank:       row.Rank,
			TotalScore: row.TotalScore,
			Venue:      row.Venue,
		})
	}
	return out, nil
}

func buildGameResultsQuery(gameID int64) (string, []any, error) {
	return qb.Select(
		"t.name",
		"tgp.rank",
		"tgp.total_score::float8 AS total_score",
		"rs.round_name",
		"rs.score::float8 AS score",
	).From("quizplease.team_game_participations tgp" +
		" JOIN quizplease.teams t ON tgp.team_id = t.id" +
		" LEFT JOIN quizplease.round_scores rs ON tgp.id = rs.participation_id").
		Where(qb.Eq("tgp.game_id", gameID)).
		OrderBy("tgp.rank ASC", "rs.round_name").
		ToSQL()
}

func buildTeamHistoryQuery(teamID int64, filter game.Filter) (string, []any, error) {
	conditions := append(
		[]qb.Condition{qb.Eq("tgp.team_id", teamID)},
		gameFilterConditions("g", filter)...,
	)

	return qb.Select(
		"g.id AS game_id",
		"g.game_date",
		"g.game_name",
		"tgp.rank",
		"tgp.total_score::float8 AS total_score",
		"g.venue",
	).From("quizplease.team_game_participations tgp"+
		" JOIN quizplease.games g ON tgp.game_id = g.id").
		Where(conditions...).
		OrderBy("g.game_date DESC", "g.id DESC").
		ToSQL()
}
