package usecase

import (
	"context"
	"fmt"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
	"github.com/quizplease/statsboard/internal/domain/team"
)

type TeamService struct {
	teamRepo    team.Repository
	resultsRepo results.Repository
}

func NewTeamService(teamRepo team.Repository, resultsRepo results.Repository) *TeamService {
	return &TeamService{
		teamRepo:    teamRepo,
		resultsRepo: resultsRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) TeamHistory(ctx context.Context, teamID int64, filter game.Filter) ([]results.TeamGameRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.TeamHistory")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	history, err := s.resultsRepo.ListTeamHistory(ctx, teamID, filter)
	if err != nil {
		return nil, fmt.Errorf("list team history: %w", err)
	}
	return history, nil
}
