package models

// TeamRecord is the per-team view embedded in a game summary. Record strings
// are always "{wins}-{losses}", or empty when no data source could provide one.
type TeamRecord struct {
	TeamID           int    `json:"teamId"`
	TeamName         string `json:"teamName"`
	TeamAbbreviation string `json:"teamAbbreviation"`
	Record           string `json:"record"`
	HomeRecord       string `json:"homeRecord"`
	AwayRecord       string `json:"awayRecord"`
}

// GameSummary is one scheduled or played game, built per response.
type GameSummary struct {
	GameID   string     `json:"gameId"`
	GameDate string     `json:"gameDate"`
	HomeTeam TeamRecord `json:"homeTeam"`
	AwayTeam TeamRecord `json:"awayTeam"`
	Status   string     `json:"status"`
}

// TeamStatsSummary merges season dashboard metrics with rolling splits
// computed from the game log.
type TeamStatsSummary struct {
	TeamID                int     `json:"teamId"`
	TeamName              string  `json:"teamName"`
	Last10Record          string  `json:"last10Record"`
	HomeRecord            string  `json:"homeRecord"`
	AwayRecord            string  `json:"awayRecord"`
	OffensiveRating       float64 `json:"offensiveRating"`
	DefensiveRating       float64 `json:"defensiveRating"`
	NetRating             float64 `json:"netRating"`
	Pace                  float64 `json:"pace"`
	PointsPerGame         float64 `json:"pointsPerGame"`
	OpponentPointsPerGame float64 `json:"opponentPointsPerGame"`
}

// PlayerSummary is a per-player season average line.
type PlayerSummary struct {
	PlayerID        int     `json:"playerId"`
	PlayerName      string  `json:"playerName"`
	Position        string  `json:"position"`
	PointsPerGame   float64 `json:"pointsPerGame"`
	AssistsPerGame  float64 `json:"assistsPerGame"`
	ReboundsPerGame float64 `json:"reboundsPerGame"`
	MinutesPerGame  float64 `json:"minutesPerGame"`
	IsInjured       bool    `json:"isInjured"`
	InjuryStatus    *string `json:"injuryStatus"`
}

// HeadToHeadGame is one prior meeting between the two teams. Only the listed
// team's points are known upstream, so the opposing side's score is zero.
type HeadToHeadGame struct {
	Date      string `json:"date"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Winner    string `json:"winner"`
}

// HeadToHeadResult attributes season wins to the logical home/away sides of
// one pairing. Games holds at most the first 5 meetings; the win counts cover
// every meeting found.
type HeadToHeadResult struct {
	HomeWins int              `json:"homeWins"`
	AwayWins int              `json:"awayWins"`
	Games    []HeadToHeadGame `json:"games"`
}

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
