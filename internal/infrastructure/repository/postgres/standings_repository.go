package postgres

import (
	"context"
	"fmt"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/standings"
	qb "github.com/quizplease/statsboard/internal/platform/querybuilder"
)

const participationJoin = "quizplease.teams t" +
	" JOIN quizplease.team_game_participations tgp ON t.id = tgp.team_id" +
	" JOIN quizplease.games g ON tgp.game_id = g.id"

type StandingsRepository struct {
	client *Client
}

func NewStandingsRepository(client *Client) *StandingsRepository {
	return &StandingsRepository{client: client}
}

func (r *StandingsRepository) ListTopTeams(ctx context.Context, filter game.Filter, limit int) ([]standings.TeamStanding, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildTopTeamsQuery(filter, limit)
	if err != nil {
		return nil, fmt.Errorf("build top teams query: %w", err)
	}

	var rows []teamStandingRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list top teams: %w", err)
	}

	out := make([]standings.TeamStanding, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.TeamStanding{
			TeamID:      row.TeamID,
			Team:        row.Name,
			GamesPlayed: row.GamesPlayed,
			TotalPoints: row.TotalPoints,
			AvgPoints:   row.AvgPoints,
		})
	}
	return out, nil
}

func (r *StandingsRepository) ListTopFinishes(ctx context.Context, topN int, filter game.Filter) ([]standings.FinishCount, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildTopFinishesQuery(topN, filter)
	if err != nil {
		return nil, fmt.Errorf("build top finishes query: %w", err)
	}

	var rows []finishCountRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list top finishes: %w", err)
	}

	out := make([]standings.FinishCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.FinishCount{Team: row.Name, Finishes: row.FinishCount})
	}
	return out, nil
}

func (r *StandingsRepository) ListRoundAverages(ctx context.Context, filter game.Filter) ([]standings.RoundAverage, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildRoundAveragesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build round averages query: %w", err)
	}

	var rows []roundAverageRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list round averages: %w", err)
	}

	out := make([]standings.RoundAverage, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.RoundAverage{
			Team:      row.Name,
			RoundName: row.RoundName,
			AvgScore:  row.AvgScore,
		})
	}
	return out, nil
}

func buildTopTeamsQuery(filter game.Filter, limit int) (string, []any, error) {
	builder := qb.Select(
		"t.id",
		"t.name",
		"COUNT(tgp.game_id) AS games_played",
		"SUM(tgp.total_score)::float8 AS total_points",
		"ROUND(AVG(tgp.total_score), 1)::float8 AS avg_points",
	).From(participationJoin).
		Where(gameFilterConditions("g", filter)...).
		GroupBy("t.id", "t.name").
		OrderBy("total_points DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}
	return builder.ToSQL()
}

func buildTopFinishesQuery(topN int, filter game.Filter) (string, []any, error) {
	conditions := append(
		[]qb.Condition{qb.Expr("tgp.rank <= ?", topN)},
		gameFilterConditions("g", filter)...,
	)

	return qb.Select("t.name", "COUNT(*) AS finish_count").
		From(participationJoin).
		Where(conditions...).
		GroupBy("t.name").
		OrderBy("finish_count DESC").
		ToSQL()
}

func buildRoundAveragesQuery(filter game.Filter) (string, []any, error) {
	return qb.Select("t.name", "rs.round_name", "AVG(rs.score)::float8 AS avg_score").
		From(participationJoin + " JOIN quizplease.round_scores rs ON tgp.id = rs.participation_id").
		Where(gameFilterConditions("g", filter)...).
		GroupBy("t.name", "rs.round_name").
		ToSQL()
}
