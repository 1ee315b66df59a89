package postgres

import (
	"database/sql"
	"time"
)

type gameRow struct {
	ID       int64     `db:"id"`
	GameDate time.Time `db:"game_date"`
	GameName string    `db:"game_name"`
	GameNum  string    `db:"game_number"`
	Category string    `db:"category"`
	Venue    string    `db:"venue"`
}

type teamRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type summaryRow struct {
	TotalGames int          `db:"total_games"`
	AvgTeams   float64      `db:"avg_teams"`
	LatestGame sql.NullTime `db:"latest_game"`
}

type teamStandingRow struct {
	TeamID      int64   `db:"id"`
	Name        string  `db:"name"`
	GamesPlayed int     `db:"games_played"`
	TotalPoints float64 `db:"total_points"`
	AvgPoints   float64 `db:"avg_points"`
}

type finishCountRow struct {
	Name        string `db:"name"`
	FinishCount int    `db:"finish_count"`
}

type roundAverageRow struct {
	Name      string  `db:"name"`
	RoundName string  `db:"round_name"`
	AvgScore  float64 `db:"avg_score"`
}

type teamHistoryRow struct {
	GameID     int64     `db:"game_id"`
	GameDate   time.Time `db:"game_date"`
	GameName   string    `db:"game_name"`
	Rank       int       `db:"rank"`
	TotalScore float64   `db:"total_score"`
	Venue      string    `db:"venue"`
}

type gameResultRow struct {
	Name       string          `db:"name"`
	Rank       int             `db:"rank"`
	TotalScore float64         `db:"total_score"`
	RoundName  sql.NullString  `db:"round_name"`
	Score      sql.NullFloat64 `db:"score"`
}
