package teamstats

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/internal/league"
	"github.com/czl524069797/sport-oracle/internal/testutil"
	"github.com/czl524069797/sport-oracle/pkg/models"
)

const lakersID = 1610612747

func newReconciler(source *testutil.StubSource) *Reconciler {
	reg := cache.NewRegistry()
	r := New(reg, source, league.NewDirectory(reg, source), 10*time.Minute)
	r.now = func() time.Time { return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) }
	return r
}

func directoryStub() func() ([]models.TeamRow, error) {
	return func() ([]models.TeamRow, error) { return testutil.Teams(), nil }
}

// gameLog builds n rows alternating home/away, with results from the pattern.
func gameLog(results []string) []models.GameLogRow {
	rows := make([]models.GameLogRow, len(results))
	for i, wl := range results {
		matchup := "LAL vs. BOS"
		if i%2 == 1 {
			matchup = "LAL @ BOS"
		}
		rows[i] = models.GameLogRow{
			GameDate: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -i).Format("2006-01-02"),
			Matchup:  matchup,
			WinLoss:  wl,
			Points:   100 + i,
		}
	}
	return rows
}

func TestTeamStats_ReconcilesDashboardAndLog(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		DashboardFn: func(teamID int, season string) (models.DashboardRow, error) {
			return models.DashboardRow{
				OffensiveRating: 116.5,
				DefensiveRating: 111.2,
				NetRating:       5.3,
				Pace:            100.4,
				Points:          2300,
				OpponentPoints:  2200,
				GamesPlayed:     20,
			}, nil
		},
		GameLogFn: func(teamID int, season string) ([]models.GameLogRow, error) {
			// 12 games: last-10 window must use only the first 10 rows.
			return gameLog([]string{"W", "W", "L", "W", "L", "L", "W", "W", "W", "L", "W", "W"}), nil
		},
	}

	stats, err := newReconciler(source).TeamStats(context.Background(), lakersID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TeamName != "Los Angeles Lakers" {
		t.Errorf("unexpected team name %q", stats.TeamName)
	}
	if stats.Last10Record != "6-4" {
		t.Errorf("expected last-10 record 6-4, got %q", stats.Last10Record)
	}
	// 6 home games (even indices), 6 away games across the full log.
	if stats.HomeRecord != "4-2" {
		t.Errorf("expected home record 4-2, got %q", stats.HomeRecord)
	}
	if stats.AwayRecord != "4-2" {
		t.Errorf("expected away record 4-2, got %q", stats.AwayRecord)
	}
	if stats.PointsPerGame != 115.0 {
		t.Errorf("expected 115.0 points per game, got %v", stats.PointsPerGame)
	}
	if stats.OpponentPointsPerGame != 110.0 {
		t.Errorf("expected 110.0 opponent points per game, got %v", stats.OpponentPointsPerGame)
	}
	if stats.OffensiveRating != 116.5 || stats.Pace != 100.4 {
		t.Errorf("dashboard metrics must pass through: %+v", stats)
	}
}

func TestTeamStats_SplitsCoverEveryLogGame(t *testing.T) {
	results := []string{"W", "L", "W", "W", "L", "L", "W"}
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		GameLogFn: func(teamID int, season string) ([]models.GameLogRow, error) {
			return gameLog(results), nil
		},
	}

	stats, err := newReconciler(source).TeamStats(context.Background(), lakersID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var homeWins, homeLosses, awayWins, awayLosses int
	if _, err := fmtSscanf(stats.HomeRecord, &homeWins, &homeLosses); err != nil {
		t.Fatalf("bad home record %q: %v", stats.HomeRecord, err)
	}
	if _, err := fmtSscanf(stats.AwayRecord, &awayWins, &awayLosses); err != nil {
		t.Fatalf("bad away record %q: %v", stats.AwayRecord, err)
	}

	if homeWins+homeLosses != 4 {
		t.Errorf("home wins+losses = %d, want the 4 home games in the log", homeWins+homeLosses)
	}
	if awayWins+awayLosses != 3 {
		t.Errorf("away wins+losses = %d, want the 3 away games in the log", awayWins+awayLosses)
	}
}

func TestTeamStats_ShortSeason(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		GameLogFn: func(teamID int, season string) ([]models.GameLogRow, error) {
			return gameLog([]string{"W", "L", "W"}), nil
		},
	}

	stats, err := newReconciler(source).TeamStats(context.Background(), lakersID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only 3 games examined: losses derive from the window size, not 10.
	if stats.Last10Record != "2-1" {
		t.Errorf("expected last-10 record 2-1 for a 3-game season, got %q", stats.Last10Record)
	}
	// Zero games played must not divide by zero.
	if stats.PointsPerGame != 0 {
		t.Errorf("expected 0 points per game with an empty dashboard, got %v", stats.PointsPerGame)
	}
}

func TestTeamStats_UpstreamFailureIsFatalAndUncached(t *testing.T) {
	fail := true
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		DashboardFn: func(teamID int, season string) (models.DashboardRow, error) {
			if fail {
				return models.DashboardRow{}, errors.New("dashboard down")
			}
			return models.DashboardRow{GamesPlayed: 1}, nil
		},
	}
	r := newReconciler(source)

	var upstream *models.UpstreamError
	if _, err := r.TeamStats(context.Background(), lakersID); !errors.As(err, &upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}

	fail = false
	if _, err := r.TeamStats(context.Background(), lakersID); err != nil {
		t.Errorf("expected retry after failure, got %v", err)
	}
	if calls := source.Calls("FetchTeamDashboard"); calls != 2 {
		t.Errorf("failure must not be cached, got %d dashboard fetches", calls)
	}
}

func TestTeamStats_NameFallsBackToID(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: func() ([]models.TeamRow, error) { return nil, nil },
	}

	stats, err := newReconciler(source).TeamStats(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TeamName != "42" {
		t.Errorf("expected stringified id fallback, got %q", stats.TeamName)
	}
}

func TestTeamStats_Cached(t *testing.T) {
	source := &testutil.StubSource{DirectoryFn: directoryStub()}
	r := newReconciler(source)

	if _, err := r.TeamStats(context.Background(), lakersID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.TeamStats(context.Background(), lakersID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls := source.Calls("FetchTeamDashboard"); calls != 1 {
		t.Errorf("expected cached result per team id, got %d fetches", calls)
	}
}

func TestTeamPlayers_AveragesAndOrdering(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		TeamPlayersFn: func(teamID int, season string) ([]models.PlayerRow, error) {
			return []models.PlayerRow{
				{PlayerID: 1, PlayerName: "Bench Guy", Position: "F", Points: 55, Assists: 11, Rebounds: 22, Minutes: 120, GamesPlayed: 10},
				{PlayerID: 2, PlayerName: "Star", Position: "G", Points: 301, Assists: 77, Rebounds: 50, Minutes: 355, GamesPlayed: 10},
				{PlayerID: 3, PlayerName: "Rookie", Position: "C", Points: 9, Assists: 1, Rebounds: 7, Minutes: 0, GamesPlayed: 0},
			}, nil
		},
	}

	players, err := newReconciler(source).TeamPlayers(context.Background(), lakersID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}

	if players[0].PlayerName != "Star" {
		t.Errorf("expected minutes-descending order, got %q first", players[0].PlayerName)
	}
	if players[0].PointsPerGame != 30.1 {
		t.Errorf("expected 30.1 points per game, got %v", players[0].PointsPerGame)
	}
	if players[0].MinutesPerGame != 35.5 {
		t.Errorf("expected 35.5 minutes per game, got %v", players[0].MinutesPerGame)
	}
	// Zero games played divides by 1, not 0.
	last := players[2]
	if last.PlayerName != "Rookie" || last.PointsPerGame != 9.0 {
		t.Errorf("unexpected zero-GP handling: %+v", last)
	}
	if last.IsInjured || last.InjuryStatus != nil {
		t.Errorf("injury fields must stay empty: %+v", last)
	}
}

func TestTeamPlayers_UpstreamFailureIsFatal(t *testing.T) {
	source := &testutil.StubSource{
		DirectoryFn: directoryStub(),
		TeamPlayersFn: func(teamID int, season string) ([]models.PlayerRow, error) {
			return nil, errors.New("players endpoint down")
		},
	}

	var upstream *models.UpstreamError
	if _, err := newReconciler(source).TeamPlayers(context.Background(), lakersID); !errors.As(err, &upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}

// fmtSscanf parses a "W-L" record string.
func fmtSscanf(record string, wins, losses *int) (int, error) {
	return fmt.Sscanf(record, "%d-%d", wins, losses)
}
