package models

// Raw row shapes returned by the upstream statistics provider. Fields map
// one-to-one onto the provider's JSON; reconciliation into response models
// happens in the internal packages.

// GameRow is one scoreboard entry for a date. The embedded win/loss counters
// come from the live feed and are zero until the provider has them.
type GameRow struct {
	GameID     string `json:"gameId"`
	GameDate   string `json:"gameDate"`
	Status     string `json:"status"`
	HomeTeamID int    `json:"homeTeamId"`
	AwayTeamID int    `json:"awayTeamId"`
	HomeWins   int    `json:"homeWins"`
	HomeLosses int    `json:"homeLosses"`
	AwayWins   int    `json:"awayWins"`
	AwayLosses int    `json:"awayLosses"`
}

// StandingRow is one team's season standing.
type StandingRow struct {
	TeamID     int    `json:"teamId"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	HomeRecord string `json:"homeRecord"`
	RoadRecord string `json:"roadRecord"`
}

// DashboardRow is a team's season aggregate line.
type DashboardRow struct {
	OffensiveRating float64 `json:"offensiveRating"`
	DefensiveRating float64 `json:"defensiveRating"`
	NetRating       float64 `json:"netRating"`
	Pace            float64 `json:"pace"`
	Points          float64 `json:"points"`
	OpponentPoints  float64 `json:"opponentPoints"`
	GamesPlayed     int     `json:"gamesPlayed"`
}

// GameLogRow is one game from a team's perspective. Matchup is a short
// textual description ("LAL vs. BOS" at home, "LAL @ BOS" on the road) and is
// the only home/away and opponent signal the provider exposes.
type GameLogRow struct {
	GameDate string `json:"gameDate"`
	Matchup  string `json:"matchup"`
	WinLoss  string `json:"winLoss"`
	Points   int    `json:"points"`
}

// PlayerRow is one player's season totals.
type PlayerRow struct {
	PlayerID    int     `json:"playerId"`
	PlayerName  string  `json:"playerName"`
	Position    string  `json:"position"`
	Points      float64 `json:"points"`
	Assists     float64 `json:"assists"`
	Rebounds    float64 `json:"rebounds"`
	Minutes     float64 `json:"minutes"`
	GamesPlayed int     `json:"gamesPlayed"`
}

// TeamRow is one entry of the static team directory.
type TeamRow struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
}
