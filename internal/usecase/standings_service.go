package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/standings"
)

// RoundAverageMatrixRow is one team's line in the round-average matrix.
// Averages aligns with the matrix Rounds; nil means the team never played
// that round under the active filter.
type RoundAverageMatrixRow struct {
	Rank     int        `json:"rank"`
	Team     string     `json:"team"`
	Averages []*float64 `json:"averages"`
	TotalAvg float64    `json:"total_avg"`
}

type RoundAverageMatrix struct {
	Rounds []string                `json:"rounds"`
	Rows   []RoundAverageMatrixRow `json:"rows"`
}

type StandingsService struct {
	standingsRepo standings.Repository
}

func NewStandingsService(standingsRepo standings.Repository) *StandingsService {
	return &StandingsService{standingsRepo: standingsRepo}
}

func (s *StandingsService) TopTeams(ctx context.Context, filter game.Filter, limit int) ([]standings.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.TopTeams")
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	items, err := s.standingsRepo.ListTopTeams(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("list top teams: %w", err)
	}
	return items, nil
}

func (s *StandingsService) TopFinishes(ctx context.Context, topN int, filter game.Filter) ([]standings.FinishCount, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.TopFinishes")
	defer span.End()

	if topN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive", ErrInvalidInput)
	}

	items, err := s.standingsRepo.ListTopFinishes(ctx, topN, filter)
	if err != nil {
		return nil, fmt.Errorf("list top finishes: %w", err)
	}
	return items, nil
}

// RoundAverageMatrix pivots per-round averages into a team-by-round table for
// the strongest teams under the filter. Rows sort by overall average and get
// a 1-based display rank.
func (s *StandingsService) RoundAverageMatrix(ctx context.Context, filter game.Filter, limit int) (RoundAverageMatrix, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.RoundAverageMatrix")
	defer span.End()

	if limit < 0 {
		return RoundAverageMatrix{}, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	topTeams, err := s.standingsRepo.ListTopTeams(ctx, filter, limit)
	if err != nil {
		return RoundAverageMatrix{}, fmt.Errorf("list top teams: %w", err)
	}

	averages, err := s.standingsRepo.ListRoundAverages(ctx, filter)
	if err != nil {
		return RoundAverageMatrix{}, fmt.Errorf("list round averages: %w", err)
	}

	return pivotRoundAverages(topTeams, averages), nil
}

func pivotRoundAverages(topTeams []standings.TeamStanding, averages []standings.RoundAverage) RoundAverageMatrix {
	included := make(map[string]struct{}, len(topTeams))
	for _, t := range topTeams {
		included[t.Team] = struct{}{}
	}

	var roundNames []string
	for _, avg := range averages {
		if _, ok := included[avg.Team]; ok {
			roundNames = append(roundNames, avg.RoundName)
		}
	}
	rounds := orderRoundNames(collectRoundNames(roundNames))

	roundIndex := make(map[string]int, len(rounds))
	for i, name := range rounds {
		roundIndex[name] = i
	}

	var matrix RoundAverageMatrix
	matrix.Rounds = rounds

	teamIndex := make(map[string]int, len(topTeams))
	for _, t := range topTeams {
		teamIndex[t.Team] = len(matrix.Rows)
		matrix.Rows = append(matrix.Rows, RoundAverageMatrixRow{
			Team:     t.Team,
			Averages: make([]*float64, len(rounds)),
		})
	}

	for _, avg := range averages {
		idx, ok := teamIndex[avg.Team]
		if !ok {
			continue
		}
		if col, ok := roundIndex[avg.RoundName]; ok {
			score := avg.AvgScore
			matrix.Rows[idx].Averages[col] = &score
		}
	}

	for i := range matrix.Rows {
		matrix.Rows[i].TotalAvg = meanPresent(matrix.Rows[i].Averages)
	}
	sort.SliceStable(matrix.Rows, func(i, j int) bool {
		return matrix.Rows[i].TotalAvg > matrix.Rows[j].TotalAvg
	})
	for i := range matrix.Rows {
		matrix.Rows[i].Rank = i + 1
	}
	return matrix
}

// meanPresent averages only the cells a team actually has; missing rounds do
// not drag the overall average toward zero.
func meanPresent(cells []*float64) float64 {
	sum := 0.0
	count := 0
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		sum += *cell
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
