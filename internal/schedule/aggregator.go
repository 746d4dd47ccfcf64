// Package schedule turns raw scoreboard rows into normalized game summaries.
package schedule

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/internal/league"
	"github.com/czl524069797/sport-oracle/pkg/contracts"
	"github.com/czl524069797/sport-oracle/pkg/models"
)

const (
	byDateCapacity   = 64
	upcomingCapacity = 16
)

// Aggregator lists games for a date or date span. It is a best-effort view
// over a transient feed: upstream failures shrink the result instead of
// failing it, and rows with unresolvable teams are dropped silently. Both
// entry points return plain slices with no error, which is what enforces the
// absorb contract.
type Aggregator struct {
	source    contracts.StatsSource
	directory *league.Directory
	standings *league.StandingsIndex

	byDate   *cache.Bucket
	upcoming *cache.Bucket
	now      func() time.Time
}

// New creates an aggregator whose per-date and upcoming listings are cached
// for ttl.
func New(reg *cache.Registry, source contracts.StatsSource, directory *league.Directory, standings *league.StandingsIndex, ttl time.Duration) *Aggregator {
	return &Aggregator{
		source:    source,
		directory: directory,
		standings: standings,
		byDate:    reg.Bucket("schedule.games_for_date", byDateCapacity, ttl),
		upcoming:  reg.Bucket("schedule.upcoming_games", upcomingCapacity, ttl),
		now:       time.Now,
	}
}

// GamesForDate returns the normalized games scheduled on date, preserving
// upstream row order.
func (a *Aggregator) GamesForDate(ctx context.Context, date time.Time) []models.GameSummary {
	dateStr := date.Format("2006-01-02")

	games, _ := cache.GetOrCompute(a.byDate, cache.Key(dateStr), func() ([]models.GameSummary, error) {
		return a.collectDate(ctx, date), nil
	})
	return games
}

// UpcomingGames returns the games for each date in [today, today+days),
// concatenated in date order. A failure on one date contributes zero games
// for that date only.
func (a *Aggregator) UpcomingGames(ctx context.Context, days int) []models.GameSummary {
	start := a.now()
	key := cache.NamedKey(map[string]any{
		"start": start.Format("2006-01-02"),
		"days":  days,
	})

	games, _ := cache.GetOrCompute(a.upcoming, key, func() ([]models.GameSummary, error) {
		var all []models.GameSummary
		for i := 0; i < days; i++ {
			all = append(all, a.collectDate(ctx, start.AddDate(0, 0, i))...)
		}
		return all, nil
	})
	return games
}

// collectDate fetches and normalizes one date's scoreboard. Fetch failures
// yield an empty set.
func (a *Aggregator) collectDate(ctx context.Context, date time.Time) []models.GameSummary {
	dateStr := date.Format("2006-01-02")

	rows, err := a.source.FetchScoreboard(ctx, date)
	if err != nil {
		log.Printf("[schedule] scoreboard fetch for %s failed: %v", dateStr, err)
		return nil
	}

	standings := a.standings.Map(ctx)

	games := make([]models.GameSummary, 0, len(rows))
	for _, row := range rows {
		home, ok := a.resolveSide(ctx, row.HomeTeamID, row.HomeWins, row.HomeLosses, standings)
		if !ok {
			continue
		}
		away, ok := a.resolveSide(ctx, row.AwayTeamID, row.AwayWins, row.AwayLosses, standings)
		if !ok {
			continue
		}

		gameDate := row.GameDate
		if gameDate == "" {
			gameDate = dateStr
		}

		games = append(games, models.GameSummary{
			GameID:   row.GameID,
			GameDate: gameDate,
			HomeTeam: home,
			AwayTeam: away,
			Status:   row.Status,
		})
	}
	return games
}

// resolveSide builds one side's TeamRecord. The overall record prefers the
// row's live counters when they report at least one decided game, then the
// standings entry, then stays empty. ok is false when the id is not in the
// directory, which drops the whole row.
func (a *Aggregator) resolveSide(ctx context.Context, teamID, wins, losses int, standings map[int]league.TeamStanding) (models.TeamRecord, bool) {
	team, err := a.directory.TeamByID(ctx, teamID)
	if err != nil {
		return models.TeamRecord{}, false
	}

	standing := standings[teamID]

	record := standing.Record
	if wins+losses > 0 {
		record = fmt.Sprintf("%d-%d", wins, losses)
	}

	return models.TeamRecord{
		TeamID:           teamID,
		TeamName:         team.FullName,
		TeamAbbreviation: team.Abbreviation,
		Record:           record,
		HomeRecord:       standing.Home,
		AwayRecord:       standing.Road,
	}, true
}
