package postgres

import (
	"context"
	"fmt"

	"github.com/quizplease/statsboard/internal/domain/team"
	qb "github.com/quizplease/statsboard/internal/platform/querybuilder"
)

type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select("id", "name").
		From("quizplease.teams").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
