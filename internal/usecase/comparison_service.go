package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
	"github.com/quizplease/statsboard/internal/domain/team"
)

// RoundTriplet holds one round's scores for the compared team, the game
// winner and the round's best result. Absent scores chart as 0.
type RoundTriplet struct {
	Round       string   `json:"round"`
	TeamScore   float64  `json:"team_score"`
	WinnerScore float64  `json:"winner_score"`
	MaxScore    float64  `json:"max_score"`
	MaxScorers  []string `json:"max_scorers"`
}

type RoundComparison struct {
	Team   string         `json:"team"`
	Winner string         `json:"winner,omitempty"`
	Rounds []RoundTriplet `json:"rounds"`
}

// TeamMetrics are one team's aggregates over its (filtered) game history.
type TeamMetrics struct {
	TeamID      int64   `json:"team_id"`
	Team        string  `json:"team"`
	GamesPlayed int     `json:"games_played"`
	TotalPoints float64 `json:"total_points"`
	AvgPoints   float64 `json:"avg_points"`
	AvgRank     float64 `json:"avg_rank"`
	BestRank    int     `json:"best_rank"`
	WorstRank   int     `json:"worst_rank"`
	Top3Rate    float64 `json:"top3_rate_pct"`
}

// RadarAxes are normalized so that larger is better on every axis. Average
// rank is inverted against a shared ceiling of at least 10.
type RadarAxes struct {
	AvgPoints       float64 `json:"avg_points"`
	InvertedAvgRank float64 `json:"inverted_avg_rank"`
	Top3Rate        float64 `json:"top3_rate_pct"`
}

type HeadToHead struct {
	CommonGames int    `json:"common_games"`
	TeamAWins   int    `json:"team_a_wins"`
	TeamBWins   int    `json:"team_b_wins"`
	TeamA       string `json:"team_a"`
	TeamB       string `json:"team_b"`
}

type TeamComparison struct {
	TeamA      TeamMetrics `json:"team_a"`
	TeamB      TeamMetrics `json:"team_b"`
	RadarA     RadarAxes   `json:"radar_a"`
	RadarB     RadarAxes   `json:"radar_b"`
	HeadToHead HeadToHead  `json:"head_to_head"`
}

// TeamDynamics is a team's game history ordered oldest first, with the
// median total score for the reference rule on the chart.
type TeamDynamics struct {
	Team        string                   `json:"team"`
	Games       []results.TeamGameRecord `json:"games"`
	MedianScore float64                  `json:"median_score"`
}

type ComparisonService struct {
	teamRepo    team.Repository
	resultsRepo results.Repository
}

func NewComparisonService(teamRepo team.Repository, resultsRepo results.Repository) *ComparisonService {
	return &ComparisonService{
		teamRepo:    teamRepo,
		resultsRepo: resultsRepo,
	}
}

// RoundComparison builds per-round triplets for one team in one game.
func (s *ComparisonService) RoundComparison(ctx context.Context, gameID, teamID int64) (RoundComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "ComparisonService.RoundComparison")
	defer span.End()

	if gameID <= 0 {
		return RoundComparison{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	if teamID <= 0 {
		return RoundComparison{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	teamName, err := s.teamName(ctx, teamID)
	if err != nil {
		return RoundComparison{}, err
	}

	rows, err := s.resultsRepo.ListGameResults(ctx, gameID)
	if err != nil {
		return RoundComparison{}, fmt.Errorf("list game results: %w", err)
	}

	return buildRoundComparison(teamName, rows), nil
}

// HeadToHead tallies wins over the games both teams played. The lower rank
// wins a game; an equal rank goes to the higher total score, and a still
// equal game to the team with the lower id, so every common game is decided.
func (s *ComparisonService) HeadToHead(ctx context.Context, teamAID, teamBID int64, filter game.Filter) (HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "ComparisonService.HeadToHead")
	defer span.End()

	if teamAID <= 0 || teamBID <= 0 {
		return HeadToHead{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if teamAID == teamBID {
		return HeadToHead{}, fmt.Errorf("%w: cannot compare a team with itself", ErrInvalidInput)
	}

	nameA, err := s.teamName(ctx, teamAID)
	if err != nil {
		return HeadToHead{}, err
	}
	nameB, err := s.teamName(ctx, teamBID)
	if err != nil {
		return HeadToHead{}, err
	}

	historyA, err := s.resultsRepo.ListTeamHistory(ctx, teamAID, filter)
	if err != nil {
		return HeadToHead{}, fmt.Errorf("list team history: %w", err)
	}
	historyB, err := s.resultsRepo.ListTeamHistory(ctx, teamBID, filter)
	if err != nil {
		return HeadToHead{}, fmt.Errorf("list team history: %w", err)
	}

	h2h := tallyHeadToHead(teamAID, teamBID, historyA, historyB)
	h2h.TeamA = nameA
	h2h.TeamB = nameB
	return h2h, nil
}

// CompareTeams assembles side-by-side metrics, radar axes and the
// head-to-head record for two teams.
func (s *ComparisonService) CompareTeams(ctx context.Context, teamAID, teamBID int64, filter game.Filter) (TeamComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "ComparisonService.CompareTeams")
	defer span.End()

	if teamAID <= 0 || teamBID <= 0 {
		return TeamComparison{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if teamAID == teamBID {
		return TeamComparison{}, fmt.Errorf("%w: cannot compare a team with itself", ErrInvalidInput)
	}

	nameA, err := s.teamName(ctx, teamAID)
	if err != nil {
		return TeamComparison{}, err
	}
	nameB, err := s.teamName(ctx, teamBID)
	if err != nil {
		return TeamComparison{}, err
	}

	historyA, err := s.resultsRepo.ListTeamHistory(ctx, teamAID, filter)
	if err != nil {
		return TeamComparison{}, fmt.Errorf("list team history: %w", err)
	}
	historyB, err := s.resultsRepo.ListTeamHistory(ctx, teamBID, filter)
	if err != nil {
		return TeamComparison{}, fmt.Errorf("list team history: %w", err)
	}

	metricsA := computeTeamMetrics(teamAID, nameA, historyA)
	metricsB := computeTeamMetrics(teamBID, nameB, historyB)
	radarA, radarB := buildRadarAxes(metricsA, metricsB)

	h2h := tallyHeadToHead(teamAID, teamBID, historyA, historyB)
	h2h.TeamA = nameA
	h2h.TeamB = nameB

	return TeamComparison{
		TeamA:      metricsA,
		TeamB:      metricsB,
		RadarA:     radarA,
		RadarB:     radarB,
		HeadToHead: h2h,
	}, nil
}

// TeamDynamics returns a team's history oldest first with the median total
// score.
func (s *ComparisonService) TeamDynamics(ctx context.Context, teamID int64, filter game.Filter) (TeamDynamics, error) {
	ctx, span := startUsecaseSpan(ctx, "ComparisonService.TeamDynamics")
	defer span.End()

	if teamID <= 0 {
		return TeamDynamics{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	name, err := s.teamName(ctx, teamID)
	if err != nil {
		return TeamDynamics{}, err
	}

	history, err := s.resultsRepo.ListTeamHistory(ctx, teamID, filter)
	if err != nil {
		return TeamDynamics{}, fmt.Errorf("list team history: %w", err)
	}

	games := append([]results.TeamGameRecord(nil), history...)
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].GameDate.Equal(games[j].GameDate) {
			return games[i].GameDate.Before(games[j].GameDate)
		}
		return games[i].GameID < games[j].GameID
	})

	return TeamDynamics{
		Team:        name,
		Games:       games,
		MedianScore: medianTotalScore(games),
	}, nil
}

func (s *ComparisonService) teamName(ctx context.Context, teamID int64) (string, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list teams: %w", err)
	}
	for _, t := range teams {
		if t.ID == teamID {
			return t.Name, nil
		}
	}
	return "", fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
}

func buildRoundComparison(teamName string, rows []results.GameResultRow) RoundComparison {
	comparison := RoundComparison{Team: teamName}

	for _, row := range rows {
		if row.Rank == 1 {
			comparison.Winner = row.Team
			break
		}
	}

	var roundNames []string
	for _, row := range rows {
		if row.RoundName != nil {
			roundNames = append(roundNames, *row.RoundName)
		}
	}
	rounds := orderRoundNames(collectRoundNames(roundNames))

	type roundScore struct {
		team  string
		score float64
	}
	byRound := make(map[string][]roundScore, len(rounds))
	for _, row := range rows {
		if row.RoundName == nil || row.Score == nil {
			continue
		}
		byRound[*row.RoundName] = append(byRound[*row.RoundName], roundScore{
			team:  row.Team,
			score: *row.Score,
		})
	}

	for _, round := range rounds {
		triplet := RoundTriplet{Round: round}
		scores := byRound[round]

		for i, rs := range scores {
			if rs.team == teamName {
				triplet.TeamScore = rs.score
			}
			if rs.team == comparison.Winner {
				triplet.WinnerScore = rs.score
			}
			if i == 0 || rs.score > triplet.MaxScore {
				triplet.MaxScore = rs.score
			}
		}
		for _, rs := range scores {
			if rs.score == triplet.MaxScore {
				triplet.MaxScorers = append(triplet.MaxScorers, rs.team)
			}
		}

		comparison.Rounds = append(comparison.Rounds, triplet)
	}
	return comparison
}

func computeTeamMetrics(teamID int64, name string, history []results.TeamGameRecord) TeamMetrics {
	metrics := TeamMetrics{TeamID: teamID, Team: name}
	if len(history) == 0 {
		return metrics
	}

	rankSum := 0
	top3 := 0
	metrics.BestRank = history[0].Rank
	metrics.WorstRank = history[0].Rank
	for _, record := range history {
		metrics.GamesPlayed++
		metrics.TotalPoints += record.TotalScore
		rankSum += record.Rank
		if record.Rank < metrics.BestRank {
			metrics.BestRank = record.Rank
		}
		if record.Rank > metrics.WorstRank {
			metrics.WorstRank = record.Rank
		}
		if record.Rank <= 3 {
			top3++
		}
	}

	played := float64(metrics.GamesPlayed)
	metrics.AvgPoints = metrics.TotalPoints / played
	metrics.AvgRank = float64(rankSum) / played
	metrics.Top3Rate = float64(top3) / played * 100
	return metrics
}

// buildRadarAxes inverts average rank against a shared ceiling so a better
// (lower) rank plots further out. The ceiling never drops below 10, keeping
// two strong teams from filling the axis.
func buildRadarAxes(a, b TeamMetrics) (RadarAxes, RadarAxes) {
	ceiling := 10.0
	if a.AvgRank > ceiling {
		ceiling = a.AvgRank
	}
	if b.AvgRank > ceiling {
		ceiling = b.AvgRank
	}

	axesA := RadarAxes{
		AvgPoints:       a.AvgPoints,
		InvertedAvgRank: ceiling - a.AvgRank,
		Top3Rate:        a.Top3Rate,
	}
	axesB := RadarAxes{
		AvgPoints:       b.AvgPoints,
		InvertedAvgRank: ceiling - b.AvgRank,
		Top3Rate:        b.Top3Rate,
	}
	return axesA, axesB
}

func tallyHeadToHead(teamAID, teamBID int64, historyA, historyB []results.TeamGameRecord) HeadToHead {
	recordsB := make(map[int64]results.TeamGameRecord, len(historyB))
	for _, record := range historyB {
		recordsB[record.GameID] = record
	}

	var h2h HeadToHead
	for _, recordA := range historyA {
		recordB, ok := recordsB[recordA.GameID]
		if !ok {
			continue
		}
		h2h.CommonGames++

		switch {
		case recordA.Rank < recordB.Rank:
			h2h.TeamAWins++
		case recordB.Rank < recordA.Rank:
			h2h.TeamBWins++
		case recordA.TotalScore > recordB.TotalScore:
			h2h.TeamAWins++
		case recordB.TotalScore > recordA.TotalScore:
			h2h.TeamBWins++
		case teamAID < teamBID:
			h2h.TeamAWins++
		default:
			h2h.TeamBWins++
		}
	}
	return h2h
}

func medianTotalScore(games []results.TeamGameRecord) float64 {
	if len(games) == 0 {
		return 0
	}

	scores := make([]float64, 0, len(games))
	for _, record := range games {
		scores = append(scores, record.TotalScore)
	}
	sort.Float64s(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 1 {
		return scores[mid]
	}
	return (scores[mid-1] + scores[mid]) / 2
}
