package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/internal/league"
	"github.com/czl524069797/sport-oracle/internal/testutil"
	"github.com/czl524069797/sport-oracle/pkg/models"
)

var testDate = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

func newAggregator(source *testutil.StubSource) *Aggregator {
	reg := cache.NewRegistry()
	dir := league.NewDirectory(reg, source)
	standings := league.NewStandingsIndex(reg, source, time.Hour)
	a := New(reg, source, dir, standings, 5*time.Minute)
	a.now = func() time.Time { return testDate }
	return a
}

func directoryStub() func() ([]models.TeamRow, error) {
	return func() ([]models.TeamRow, error) { return testutil.Teams(), nil }
}

func TestGamesForDate_RecordFallbackPerSide(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		ScoreboardFn: func(date time.Time) ([]models.GameRow, error) {
			return []models.GameRow{{
				GameID:     "001",
				GameDate:   "2026-01-15",
				Status:     "7:30 pm ET",
				HomeTeamID: 1610612747,
				AwayTeamID: 1610612738,
				// Home side has live counters, away side does not.
				HomeWins: 3, HomeLosses: 2,
				AwayWins: 0, AwayLosses: 0,
			}}, nil
		},
		StandingsFn: func(season string) ([]models.StandingRow, error) {
			return []models.StandingRow{
				{TeamID: 1610612747, Wins: 20, Losses: 25, HomeRecord: "12-10", RoadRecord: "8-15"},
				{TeamID: 1610612738, Wins: 10, Losses: 5, HomeRecord: "6-2", RoadRecord: "4-3"},
			}, nil
		},
	}

	games := newAggregator(source).GamesForDate(context.Background(), testDate)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}

	g := games[0]
	if g.HomeTeam.Record != "3-2" {
		t.Errorf("home side must prefer live counters, got %q", g.HomeTeam.Record)
	}
	if g.AwayTeam.Record != "10-5" {
		t.Errorf("away side must fall back to standings, got %q", g.AwayTeam.Record)
	}
	if g.HomeTeam.HomeRecord != "12-10" || g.AwayTeam.AwayRecord != "4-3" {
		t.Errorf("home/away splits must come from standings: %+v", g)
	}
	if g.HomeTeam.TeamName != "Los Angeles Lakers" || g.AwayTeam.TeamAbbreviation != "BOS" {
		t.Errorf("unexpected team identities: %+v", g)
	}
}

func TestGamesForDate_EmptyRecordWithoutAnySource(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		ScoreboardFn: func(date time.Time) ([]models.GameRow, error) {
			return []models.GameRow{{
				GameID:     "001",
				HomeTeamID: 1610612747,
				AwayTeamID: 1610612738,
			}}, nil
		},
		StandingsFn: func(season string) ([]models.StandingRow, error) {
			return nil, errors.New("standings down")
		},
	}

	games := newAggregator(source).GamesForDate(context.Background(), testDate)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].HomeTeam.Record != "" || games[0].AwayTeam.Record != "" {
		t.Errorf("expected empty records when neither source has data: %+v", games[0])
	}
}

func TestGamesForDate_UnknownTeamDropsRowOnly(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		ScoreboardFn: func(date time.Time) ([]models.GameRow, error) {
			return []models.GameRow{
				{GameID: "001", HomeTeamID: 99999, AwayTeamID: 1610612738},
				{GameID: "002", HomeTeamID: 1610612747, AwayTeamID: 1610612738},
				{GameID: "003", HomeTeamID: 1610612744, AwayTeamID: 99999},
			}, nil
		},
	}

	games := newAggregator(source).GamesForDate(context.Background(), testDate)
	if len(games) != 1 {
		t.Fatalf("expected only the resolvable row, got %d games", len(games))
	}
	if games[0].GameID != "002" {
		t.Errorf("expected game 002 to survive, got %q", games[0].GameID)
	}
}

func TestGamesForDate_UpstreamFailureYieldsEmpty(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		ScoreboardFn: func(date time.Time) ([]models.GameRow, error) {
			return nil, errors.New("scoreboard down")
		},
	}

	games := newAggregator(source).GamesForDate(context.Background(), testDate)
	if len(games) != 0 {
		t.Errorf("expected empty listing on upstream failure, got %d games", len(games))
	}
}

func TestGamesForDate_CachedWholeResult(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		ScoreboardFn: func(date time.Time) ([]models.GameRow, error) {
			return []models.GameRow{{GameID: "001", HomeTeamID: 1610612747, AwayTeamID: 1610612738}}, nil
		},
	}
	a := newAggregator(source)

	a.GamesForDate(context.Background(), testDate)
	a.GamesForDate(context.Background(), testDate)
	if calls := source.Calls("FetchScoreboard"); calls != 1 {
		t.Errorf("expected second call to hit the cache, got %d fetches", calls)
	}

	// A different date is a different key.
	a.GamesForDate(context.Background(), testDate.AddDate(0, 0, 1))
	if calls := source.Calls("FetchScoreboard"); calls != 2 {
		t.Errorf("expected a fresh fetch for a new date, got %d fetches", calls)
	}
}

func TestUpcomingGames_ConcatenatesAndIsolatesFailures(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		ScoreboardFn: func(date time.Time) ([]models.GameRow, error) {
			switch date.Format("2006-01-02") {
			case "2026-01-15":
				return []models.GameRow{{GameID: "d1", HomeTeamID: 1610612747, AwayTeamID: 1610612738}}, nil
			case "2026-01-16":
				return nil, errors.New("flaky date")
			case "2026-01-17":
				return []models.GameRow{{GameID: "d3", HomeTeamID: 1610612744, AwayTeamID: 1610612747}}, nil
			}
			return nil, nil
		},
	}
	a := newAggregator(source)

	games := a.UpcomingGames(context.Background(), 3)
	if len(games) != 2 {
		t.Fatalf("expected failing date to contribute zero games, got %d", len(games))
	}
	if games[0].GameID != "d1" || games[1].GameID != "d3" {
		t.Errorf("expected date-ordered concatenation, got %+v", games)
	}
	if calls := source.Calls("FetchScoreboard"); calls != 3 {
		t.Errorf("expected all 3 dates fetched despite the failure, got %d", calls)
	}

	// The whole span is cached as one unit.
	a.UpcomingGames(context.Background(), 3)
	if calls := source.Calls("FetchScoreboard"); calls != 3 {
		t.Errorf("expected cached span, got %d fetches", calls)
	}
}
