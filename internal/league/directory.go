package league

import (
	"context"
	"fmt"
	"time"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/pkg/contracts"
	"github.com/czl524069797/sport-oracle/pkg/models"
)

const directoryTTL = 24 * time.Hour

// Directory resolves team ids against the provider's static team reference
// data. The directory changes at most between seasons, so one fetch is kept
// for the better part of a process lifetime; a failed fetch is not cached and
// is retried on the next lookup.
type Directory struct {
	source contracts.StatsSource
	bucket *cache.Bucket
}

// NewDirectory creates a directory backed by the given source and registry.
func NewDirectory(reg *cache.Registry, source contracts.StatsSource) *Directory {
	return &Directory{
		source: source,
		bucket: reg.Bucket("league.team_directory", 1, directoryTTL),
	}
}

// TeamByID returns the directory entry for id. Unknown ids report
// models.ErrTeamNotFound; a directory fetch failure surfaces wrapped.
func (d *Directory) TeamByID(ctx context.Context, id int) (models.TeamRow, error) {
	teams, err := d.byID(ctx)
	if err != nil {
		return models.TeamRow{}, err
	}
	team, ok := teams[id]
	if !ok {
		return models.TeamRow{}, fmt.Errorf("team %d: %w", id, models.ErrTeamNotFound)
	}
	return team, nil
}

func (d *Directory) byID(ctx context.Context) (map[int]models.TeamRow, error) {
	return cache.GetOrCompute(d.bucket, "all", func() (map[int]models.TeamRow, error) {
		rows, err := d.source.TeamDirectory(ctx)
		if err != nil {
			return nil, &models.UpstreamError{Op: "team directory", Err: err}
		}
		teams := make(map[int]models.TeamRow, len(rows))
		for _, row := range rows {
			teams[row.ID] = row
		}
		return teams, nil
	})
}
