package standings

// TeamStanding is one leaderboard row aggregated across the filtered games.
type TeamStanding struct {
	TeamID      int64
	Team        string
	GamesPlayed int
	TotalPoints float64
	AvgPoints   float64
}

// FinishCount is how often a team placed at or above a rank threshold.
type FinishCount struct {
	Team     string
	Finishes int
}

// RoundAverage is a team's mean score in one named round.
type RoundAverage struct {
	Team      string
	RoundName string
	AvgScore  float64
}
