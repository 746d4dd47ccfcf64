// Package teamstats merges a team's season dashboard with its game log into
// one statistics summary, and lists the team's player averages.
package teamstats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/internal/league"
	"github.com/czl524069797/sport-oracle/pkg/contracts"
	"github.com/czl524069797/sport-oracle/pkg/models"
)

// Matchup strings carry the only home/away signal the provider exposes:
// "LAL vs. BOS" is a home game, "LAL @ BOS" a road game.
const (
	homeToken = "vs."
	awayToken = "@"
)

const (
	statsCapacity   = 64
	playersCapacity = 64
	last10Window    = 10
)

// Reconciler computes cached per-team statistics. Unlike the schedule
// listing, these operations have no meaningful partial form, so any upstream
// failure surfaces to the caller wrapped with its cause and nothing is
// cached for that key.
type Reconciler struct {
	source    contracts.StatsSource
	directory *league.Directory

	stats   *cache.Bucket
	players *cache.Bucket
	now     func() time.Time
}

// New creates a reconciler whose results are cached for ttl.
func New(reg *cache.Registry, source contracts.StatsSource, directory *league.Directory, ttl time.Duration) *Reconciler {
	return &Reconciler{
		source:    source,
		directory: directory,
		stats:     reg.Bucket("teamstats.team_stats", statsCapacity, ttl),
		players:   reg.Bucket("teamstats.team_players", playersCapacity, ttl),
		now:       time.Now,
	}
}

// TeamStats returns the reconciled statistics summary for one team.
func (r *Reconciler) TeamStats(ctx context.Context, teamID int) (models.TeamStatsSummary, error) {
	return cache.GetOrCompute(r.stats, cache.Key(teamID), func() (models.TeamStatsSummary, error) {
		return r.buildStats(ctx, teamID)
	})
}

func (r *Reconciler) buildStats(ctx context.Context, teamID int) (models.TeamStatsSummary, error) {
	season := league.CurrentSeason(r.now())

	dash, err := r.source.FetchTeamDashboard(ctx, teamID, season)
	if err != nil {
		return models.TeamStatsSummary{}, &models.UpstreamError{Op: "team dashboard", Err: err}
	}

	gameLog, err := r.source.FetchGameLog(ctx, teamID, season)
	if err != nil {
		return models.TeamStatsSummary{}, &models.UpstreamError{Op: "team game log", Err: err}
	}

	window := gameLog
	if len(window) > last10Window {
		window = window[:last10Window]
	}
	last10Wins := countWins(window)

	var homeGames, awayGames []models.GameLogRow
	for _, g := range gameLog {
		switch {
		case strings.Contains(g.Matchup, homeToken):
			homeGames = append(homeGames, g)
		case strings.Contains(g.Matchup, awayToken):
			awayGames = append(awayGames, g)
		}
	}
	homeWins := countWins(homeGames)
	awayWins := countWins(awayGames)

	gp := dash.GamesPlayed
	if gp < 1 {
		gp = 1
	}

	return models.TeamStatsSummary{
		TeamID:                teamID,
		TeamName:              r.teamName(ctx, teamID),
		Last10Record:          record(last10Wins, len(window)),
		HomeRecord:            record(homeWins, len(homeGames)),
		AwayRecord:            record(awayWins, len(awayGames)),
		OffensiveRating:       dash.OffensiveRating,
		DefensiveRating:       dash.DefensiveRating,
		NetRating:             dash.NetRating,
		Pace:                  dash.Pace,
		PointsPerGame:         dash.Points / float64(gp),
		OpponentPointsPerGame: dash.OpponentPoints / float64(gp),
	}, nil
}

// TeamPlayers returns per-game averages for the team's players, most active
// first.
func (r *Reconciler) TeamPlayers(ctx context.Context, teamID int) ([]models.PlayerSummary, error) {
	return cache.GetOrCompute(r.players, cache.Key(teamID), func() ([]models.PlayerSummary, error) {
		season := league.CurrentSeason(r.now())

		rows, err := r.source.FetchTeamPlayers(ctx, teamID, season)
		if err != nil {
			return nil, &models.UpstreamError{Op: "team players", Err: err}
		}

		players := make([]models.PlayerSummary, 0, len(rows))
		for _, p := range rows {
			gp := float64(p.GamesPlayed)
			if gp < 1 {
				gp = 1
			}
			players = append(players, models.PlayerSummary{
				PlayerID:        p.PlayerID,
				PlayerName:      p.PlayerName,
				Position:        p.Position,
				PointsPerGame:   round1(p.Points / gp),
				AssistsPerGame:  round1(p.Assists / gp),
				ReboundsPerGame: round1(p.Rebounds / gp),
				MinutesPerGame:  round1(p.Minutes / gp),
				// The provider has no injury feed.
				IsInjured:    false,
				InjuryStatus: nil,
			})
		}

		sortByMinutes(players)
		return players, nil
	})
}

// teamName resolves the display name, falling back to the stringified id
// when the directory cannot resolve it.
func (r *Reconciler) teamName(ctx context.Context, teamID int) string {
	team, err := r.directory.TeamByID(ctx, teamID)
	if err != nil {
		return strconv.Itoa(teamID)
	}
	return team.FullName
}

func countWins(games []models.GameLogRow) int {
	wins := 0
	for _, g := range games {
		if g.WinLoss == "W" {
			wins++
		}
	}
	return wins
}

// record formats "{wins}-{losses}" with losses derived from the games
// actually examined, so it can never go negative.
func record(wins, games int) string {
	return fmt.Sprintf("%d-%d", wins, games-wins)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func sortByMinutes(players []models.PlayerSummary) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].MinutesPerGame > players[j].MinutesPerGame
	})
}
