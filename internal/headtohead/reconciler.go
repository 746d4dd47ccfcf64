// Package headtohead attributes season meetings between two teams to the
// logical home/away sides of one pairing.
package headtohead

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/internal/league"
	"github.com/czl524069797/sport-oracle/pkg/contracts"
	"github.com/czl524069797/sport-oracle/pkg/models"
)

const (
	homeToken = "vs."

	bucketCapacity = 128
	maxGames       = 5
)

// Reconciler scans the home team's season game list for meetings with one
// opponent. Opponent matching is textual — abbreviation containment in the
// matchup string — because the provider exposes no structured opponent id in
// these rows. HeadToHead never fails: every failure path collapses into the
// zero-valued result, and that is enforced by the error-free signature.
type Reconciler struct {
	source    contracts.StatsSource
	directory *league.Directory

	bucket *cache.Bucket
	now    func() time.Time
}

// New creates a reconciler whose results are cached for ttl.
func New(reg *cache.Registry, source contracts.StatsSource, directory *league.Directory, ttl time.Duration) *Reconciler {
	return &Reconciler{
		source:    source,
		directory: directory,
		bucket:    reg.Bucket("headtohead.head_to_head", bucketCapacity, ttl),
		now:       time.Now,
	}
}

// HeadToHead returns this season's record between the two teams from the
// perspective of a game hosted by homeID.
func (r *Reconciler) HeadToHead(ctx context.Context, homeID, awayID int) models.HeadToHeadResult {
	result, _ := cache.GetOrCompute(r.bucket, cache.Key(homeID, awayID), func() (models.HeadToHeadResult, error) {
		return r.build(ctx, homeID, awayID), nil
	})
	return result
}

func (r *Reconciler) build(ctx context.Context, homeID, awayID int) models.HeadToHeadResult {
	zero := models.HeadToHeadResult{Games: []models.HeadToHeadGame{}}

	away, err := r.directory.TeamByID(ctx, awayID)
	if err != nil {
		log.Printf("[headtohead] cannot resolve opponent %d: %v", awayID, err)
		return zero
	}

	season := league.CurrentSeason(r.now())
	rows, err := r.source.FetchLeagueGames(ctx, homeID, season)
	if err != nil {
		log.Printf("[headtohead] game list fetch for %d failed: %v", homeID, err)
		return zero
	}

	result := zero
	for _, row := range rows {
		if !strings.Contains(row.Matchup, away.Abbreviation) {
			continue
		}

		won := row.WinLoss == "W"
		// The row is written from homeID's perspective; the home token means
		// homeID hosted this meeting.
		hostedByHome := strings.Contains(row.Matchup, homeToken)

		homeSideWon := hostedByHome == won
		if homeSideWon {
			result.HomeWins++
		} else {
			result.AwayWins++
		}

		if len(result.Games) < maxGames {
			game := models.HeadToHeadGame{
				Date:   row.GameDate,
				Winner: "away",
			}
			if homeSideWon {
				game.Winner = "home"
			}
			// Only the perspective team's points are known.
			if hostedByHome {
				game.HomeScore = row.Points
			} else {
				game.AwayScore = row.Points
			}
			result.Games = append(result.Games, game)
		}
	}

	return result
}
