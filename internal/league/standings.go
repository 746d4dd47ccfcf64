package league

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/pkg/contracts"
)

// TeamStanding is one team's season record summary.
type TeamStanding struct {
	Record string
	Home   string
	Road   string
}

// StandingsIndex builds a teamId -> record lookup from the season standings.
// Consumers treat a missing teamId as "no data", never as an error: when the
// upstream fetch fails, the index is an empty map and that empty fallback is
// cached for the usual window.
type StandingsIndex struct {
	source contracts.StatsSource
	bucket *cache.Bucket
	now    func() time.Time
}

// NewStandingsIndex creates a standings index with the given cache window.
func NewStandingsIndex(reg *cache.Registry, source contracts.StatsSource, ttl time.Duration) *StandingsIndex {
	return &StandingsIndex{
		source: source,
		bucket: reg.Bucket("league.standings_map", 4, ttl),
		now:    time.Now,
	}
}

// Map returns the current season's standings keyed by team id.
func (s *StandingsIndex) Map(ctx context.Context) map[int]TeamStanding {
	season := CurrentSeason(s.now())

	index, _ := cache.GetOrCompute(s.bucket, cache.Key(season), func() (map[int]TeamStanding, error) {
		index := make(map[int]TeamStanding)

		rows, err := s.source.FetchStandings(ctx, season)
		if err != nil {
			log.Printf("[league] standings fetch failed, serving empty index: %v", err)
			return index, nil
		}

		for _, row := range rows {
			index[row.TeamID] = TeamStanding{
				Record: fmt.Sprintf("%d-%d", row.Wins, row.Losses),
				Home:   row.HomeRecord,
				Road:   row.RoadRecord,
			}
		}
		return index, nil
	})
	return index
}
