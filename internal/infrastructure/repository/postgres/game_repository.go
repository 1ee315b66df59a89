package postgres

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/quizplease/statsboard/internal/domain/game"
	qb "github.com/quizplease/statsboard/internal/platform/querybuilder"
	"github.com/sourcegraph/conc/pool"
)

type GameRepository struct {
	client *Client
}

func NewGameRepository(client *Client) *GameRepository {
	return &GameRepository{client: client}
}

func (r *GameRepository) List(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildGameListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, game.Game{
			ID:       row.ID,
			Date:     row.GameDate,
			Name:     row.GameName,
			Number:   row.GameNum,
			Category: row.Category,
			Venue:    row.Venue,
		})
	}
	return out, nil
}

// FilterOptions runs the three DISTINCT queries concurrently; the option
// lists are independent and together populate the selection controls.
func (r *GameRepository) FilterOptions(ctx context.Context) (game.FilterOptions, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return game.FilterOptions{}, err
	}

	var (
		mu      sync.Mutex
		options game.FilterOptions
	)

	p := pool.New().WithContext(ctx)
	for _, target := range []struct {
		column string
		assign func([]string)
	}{
		{"game_name", func(v []string) { options.GameNames = v }},
		{"category", func(v []string) { options.Categories = v }},
		{"venue", func(v []string) { options.Venues = v }},
	} {
		target := target
		p.Go(func(ctx context.Context) error {
			query := fmt.Sprintf(
				"SELECT DISTINCT %s FROM quizplease.games WHERE %s IS NOT NULL ORDER BY %s",
				target.column, target.column, target.column,
			)
			var values []string
			if err := db.SelectContext(ctx, &values, query); err != nil {
				return fmt.Errorf("list distinct %s: %w", target.column, err)
			}
			mu.Lock()
			target.assign(values)
			mu.Unlock()
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return game.FilterOptions{}, err
	}
	return options, nil
}

func (r *GameRepository) Summary(ctx context.Context, filter game.Filter) (game.Summary, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return game.Summary{}, err
	}

	query, args, err := buildSummaryQuery(filter)
	if err != nil {
		return game.Summary{}, fmt.Errorf("build summary query: %w", err)
	}

	var row summaryRow
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		return game.Summary{}, fmt.Errorf("get summary: %w", err)
	}

	summary := game.Summary{
		TotalGames:      row.TotalGames,
		AvgTeamsPerGame: row.AvgTeams,
	}
	if row.LatestGame.Valid {
		latest := row.LatestGame.Time
		summary.LatestGameDate = &latest
	}
	return summary, nil
}

func buildGameListQuery(filter game.Filter) (string, []any, error) {
	return qb.Select("id", "game_date", "game_name", "game_number", "category", "venue").
		From("quizplease.games").
		Where(gameFilterConditions("", filter)...).
		OrderBy("game_date DESC", "id DESC").
		ToSQL()
}

func buildSummaryQuery(filter game.Filter) (string, []any, error) {
	inner, args, err := qb.Select("id", "game_date").
		From("quizplease.games").
		Where(gameFilterConditions("", filter)...).
		ToSQL()
	if err != nil {
		return "", nil, err
	}

	var buf strings.Builder
	buf.WriteString("WITH filtered_games AS (")
	buf.WriteString(inner)
	buf.WriteString("), game_counts AS (")
	buf.WriteString("SELECT game_id, COUNT(*) AS team_count FROM quizplease.team_game_participations")
	buf.WriteString(" WHERE game_id IN (SELECT id FROM filtered_games) GROUP BY game_id)")
	buf.WriteString(" SELECT")
	buf.WriteString(" (SELECT COUNT(*) FROM filtered_games) AS total_games,")
	buf.WriteString(" COALESCE((SELECT AVG(team_count)::float8 FROM game_counts), 0) AS avg_teams,")
	buf.WriteString(" (SELECT MAX(game_date) FROM filtered_games) AS latest_game")

	return buf.String(), args, nil
}
