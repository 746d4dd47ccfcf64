package contracts

import (
	"context"
	"time"

	"github.com/czl524069797/sport-oracle/pkg/models"
)

// StatsSource is the upstream statistics provider as consumed by the core.
// Every method may fail with a network or parse error; how a failure is
// handled (absorbed into an empty result or surfaced) is decided per caller,
// never here.
type StatsSource interface {
	// FetchScoreboard returns the raw game rows for one date.
	FetchScoreboard(ctx context.Context, date time.Time) ([]models.GameRow, error)

	// FetchStandings returns the season standing rows.
	FetchStandings(ctx context.Context, season string) ([]models.StandingRow, error)

	// FetchTeamDashboard returns a team's season aggregate line.
	FetchTeamDashboard(ctx context.Context, teamID int, season string) (models.DashboardRow, error)

	// FetchGameLog returns a team's game log, most recent first.
	FetchGameLog(ctx context.Context, teamID int, season string) ([]models.GameLogRow, error)

	// FetchLeagueGames returns a team's season games across all opponents,
	// in the same shape as the game log.
	FetchLeagueGames(ctx context.Context, teamID int, season string) ([]models.GameLogRow, error)

	// FetchTeamPlayers returns season totals for a team's players.
	FetchTeamPlayers(ctx context.Context, teamID int, season string) ([]models.PlayerRow, error)

	// TeamDirectory returns the static team reference data.
	TeamDirectory(ctx context.Context) ([]models.TeamRow, error)
}
