package httpapi

import (
	"context"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
	"github.com/quizplease/statsboard/internal/domain/standings"
	"github.com/quizplease/statsboard/internal/domain/team"
)

const dateLayout = "2006-01-02"

type gameDTO struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Number   string `json:"number,omitempty"`
	Category string `json:"category,omitempty"`
	Venue    string `json:"venue,omitempty"`
}

func gameToDTO(item game.Game) gameDTO {
	return gameDTO{
		ID:       item.ID,
		Date:     item.Date.Format(dateLayout),
		Name:     item.Name,
		Number:   item.Number,
		Category: item.Category,
		Venue:    item.Venue,
	}
}

type teamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{ID: item.ID, Name: item.Name}
}

type summaryDTO struct {
	TotalGames      int     `json:"total_games"`
	AvgTeamsPerGame float64 `json:"avg_teams_per_game"`
	LatestGameDate  string  `json:"latest_game_date,omitempty"`
}

func summaryToDTO(item game.Summary) summaryDTO {
	dto := summaryDTO{
		TotalGames:      item.TotalGames,
		AvgTeamsPerGame: item.AvgTeamsPerGame,
	}
	if item.LatestGameDate != nil {
		dto.LatestGameDate = item.LatestGameDate.Format(dateLayout)
	}
	return dto
}

type filterOptionsDTO struct {
	GameNames  []string `json:"game_names"`
	Categories []string `json:"categories"`
	Venues     []string `json:"venues"`
}

func filterOptionsToDTO(item game.FilterOptions) filterOptionsDTO {
	return filterOptionsDTO{
		GameNames:  orEmpty(item.GameNames),
		Categories: orEmpty(item.Categories),
		Venues:     orEmpty(item.Venues),
	}
}

type filterDTO struct {
	GameNames  []string `json:"game_names"`
	Categories []string `json:"categories"`
	Venues     []string `json:"venues"`
}

func filterToDTO(item game.Filter) filterDTO {
	return filterDTO{
		GameNames:  orEmpty(item.GameNames),
		Categories: orEmpty(item.Categories),
		Venues:     orEmpty(item.Venues),
	}
}

func (d filterDTO) toFilter() game.Filter {
	return game.Filter{
		GameNames:  d.GameNames,
		Categories: d.Categories,
		Venues:     d.Venues,
	}
}

type teamStandingDTO struct {
	TeamID      int64   `json:"team_id"`
	Team        string  `json:"team"`
	GamesPlayed int     `json:"games_played"`
	TotalPoints float64 `json:"total_points"`
	AvgPoints   float64 `json:"avg_points"`
}

func teamStandingToDTO(item standings.TeamStanding) teamStandingDTO {
	return teamStandingDTO{
		TeamID:      item.TeamID,
		Team:        item.Team,
		GamesPlayed: item.GamesPlayed,
		TotalPoints: item.TotalPoints,
		AvgPoints:   item.AvgPoints,
	}
}

type finishCountDTO struct {
	Team     string `json:"team"`
	Finishes int    `json:"finishes"`
}

func finishCountToDTO(item standings.FinishCount) finishCountDTO {
	return finishCountDTO{Team: item.Team, Finishes: item.Finishes}
}

type historyRecordDTO struct {
	GameID     int64   `json:"game_id"`
	GameDate   string  `json:"game_date"`
	GameName   string  `json:"game_name"`
	Rank       int     `json:"rank"`
	TotalScore float64 `json:"total_score"`
	Venue      string  `json:"venue,omitempty"`
}

func historyRecordToDTO(item results.TeamGameRecord) historyRecordDTO {
	return historyRecordDTO{
		GameID:     item.GameID,
		GameDate:   item.GameDate.Format(dateLayout),
		GameName:   item.GameName,
		Rank:       item.Rank,
		TotalScore: item.TotalScore,
		Venue:      item.Venue,
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// mapSlice keeps handler bodies free of conversion loops.
func mapSlice[In any, Out any](ctx context.Context, items []In, convert func(In) Out) []Out {
	_, span := startSpan(ctx, "httpapi.mapSlice")
	defer span.End()

	out := make([]Out, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}
