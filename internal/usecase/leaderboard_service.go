package usecase

import (
	"context"
	"fmt"

	"github.com/quizplease/statsboard/internal/domain/results"
)

// LeaderboardRow is one team's line on a game leaderboard. Scores aligns with
// the leaderboard's Rounds; a nil cell means the team has no recorded score
// for that round.
type LeaderboardRow struct {
	Rank   int        `json:"rank"`
	Team   string     `json:"team"`
	Total  float64    `json:"total"`
	Scores []*float64 `json:"scores"`
}

// Leaderboard is the pivoted result table for one game: one row per team,
// one column per round, ordered by rank with ties kept in store order.
type Leaderboard struct {
	Rounds       []string         `json:"rounds"`
	Rows         []LeaderboardRow `json:"rows"`
	Winner       string           `json:"winner,omitempty"`
	HighestTotal float64          `json:"highest_total"`
}

type LeaderboardService struct {
	resultsRepo results.Repository
}

func NewLeaderboardService(resultsRepo results.Repository) *LeaderboardService {
	return &LeaderboardService{resultsRepo: resultsRepo}
}

func (s *LeaderboardService) GameLeaderboard(ctx context.Context, gameID int64) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "LeaderboardService.GameLeaderboard")
	defer span.End()

	if gameID <= 0 {
		return Leaderboard{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	rows, err := s.resultsRepo.ListGameResults(ctx, gameID)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list game results: %w", err)
	}

	return pivotLeaderboard(rows), nil
}

// pivotLeaderboard reshapes (team, round) result rows into the leaderboard
// table. Input arrives ordered by rank, so teams surface in rank order with
// tied teams keeping their relative store order.
func pivotLeaderboard(rows []results.GameResultRow) Leaderboard {
	var roundNames []string
	for _, row := range rows {
		if row.RoundName != nil {
			roundNames = append(roundNames, *row.RoundName)
		}
	}
	rounds := orderRoundNames(collectRoundNames(roundNames))

	roundIndex := make(map[string]int, len(rounds))
	for i, name := range rounds {
		roundIndex[name] = i
	}

	var (
		board     Leaderboard
		teamIndex = make(map[string]int)
	)
	board.Rounds = rounds

	for _, row := range rows {
		idx, ok := teamIndex[row.Team]
		if !ok {
			idx = len(board.Rows)
			teamIndex[row.Team] = idx
			board.Rows = append(board.Rows, LeaderboardRow{
				Rank:   row.Rank,
				Team:   row.Team,
				Total:  row.TotalScore,
				Scores: make([]*float64, len(rounds)),
			})
		}
		if row.RoundName == nil || row.Score == nil {
			continue
		}
		if col, ok := roundIndex[*row.RoundName]; ok {
			score := *row.Score
			board.Rows[idx].Scores[col] = &score
		}
	}

	if len(board.Rows) > 0 {
		board.Winner = board.Rows[0].Team
		board.HighestTotal = board.Rows[0].Total
	}
	for _, row := range board.Rows {
		if row.Total > board.HighestTotal {
			board.HighestTotal = row.Total
		}
	}
	return board
}
