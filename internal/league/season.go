// Package league holds season arithmetic and the slow-moving reference data
// (team directory, season standings) shared by the reconcilers.
package league

import (
	"fmt"
	"time"
)

// CurrentSeason returns the season identifier for a wall-clock date, e.g.
// "2025-26". Seasons start in October: through September 30 the date still
// belongs to the previous season.
func CurrentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() < time.October {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
