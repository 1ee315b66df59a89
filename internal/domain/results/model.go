package results

import "time"

// GameResultRow is one (team, round) pair from a game's full results. Round
// fields are nil for teams without any recorded round scores; the left join
// keeps such teams present with a single row.
type GameResultRow struct {
	Team       string
	Rank       int
	TotalScore float64
	RoundName  *string
	Score      *float64
}

// TeamGameRecord is one game from a team's participation history.
type TeamGameRecord struct {
	GameID     int64
	GameDate   time.Time
	GameName   string
	Rank       int
	TotalScore float64
	Venue      string
}
