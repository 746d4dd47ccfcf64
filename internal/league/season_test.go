package league

import (
	"testing"
	"time"
)

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"last day of previous season", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), "2024-25"},
		{"first day of new season", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"mid season January", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"playoffs June", time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"december start year", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"two digit rollover", time.Date(2099, 11, 1, 0, 0, 0, 0, time.UTC), "2099-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentSeason(tt.date); got != tt.want {
				t.Errorf("CurrentSeason(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
