// Package testutil provides shared test doubles for the stats source.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/czl524069797/sport-oracle/pkg/models"
)

// StubSource implements contracts.StatsSource with per-method stubs and call
// counting, so tests can assert that cached operations skip recomputation.
// A nil stub returns the zero value and no error.
type StubSource struct {
	mu    sync.Mutex
	calls map[string]int

	ScoreboardFn  func(date time.Time) ([]models.GameRow, error)
	StandingsFn   func(season string) ([]models.StandingRow, error)
	DashboardFn   func(teamID int, season string) (models.DashboardRow, error)
	GameLogFn     func(teamID int, season string) ([]models.GameLogRow, error)
	LeagueGamesFn func(teamID int, season string) ([]models.GameLogRow, error)
	TeamPlayersFn func(teamID int, season string) ([]models.PlayerRow, error)
	DirectoryFn   func() ([]models.TeamRow, error)
}

// Calls reports how many times the named method ran.
func (s *StubSource) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *StubSource) record(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[method]++
}

func (s *StubSource) FetchScoreboard(ctx context.Context, date time.Time) ([]models.GameRow, error) {
	s.record("FetchScoreboard")
	if s.ScoreboardFn == nil {
		return nil, nil
	}
	return s.ScoreboardFn(date)
}

func (s *StubSource) FetchStandings(ctx context.Context, season string) ([]models.StandingRow, error) {
	s.record("FetchStandings")
	if s.StandingsFn == nil {
		return nil, nil
	}
	return s.StandingsFn(season)
}

func (s *StubSource) FetchTeamDashboard(ctx context.Context, teamID int, season string) (models.DashboardRow, error) {
	s.record("FetchTeamDashboard")
	if s.DashboardFn == nil {
		return models.DashboardRow{}, nil
	}
	return s.DashboardFn(teamID, season)
}

func (s *StubSource) FetchGameLog(ctx context.Context, teamID int, season string) ([]models.GameLogRow, error) {
	s.record("FetchGameLog")
	if s.GameLogFn == nil {
		return nil, nil
	}
	return s.GameLogFn(teamID, season)
}

func (s *StubSource) FetchLeagueGames(ctx context.Context, teamID int, season string) ([]models.GameLogRow, error) {
	s.record("FetchLeagueGames")
	if s.LeagueGamesFn == nil {
		return nil, nil
	}
	return s.LeagueGamesFn(teamID, season)
}

func (s *StubSource) FetchTeamPlayers(ctx context.Context, teamID int, season string) ([]models.PlayerRow, error) {
	s.record("FetchTeamPlayers")
	if s.TeamPlayersFn == nil {
		return nil, nil
	}
	return s.TeamPlayersFn(teamID, season)
}

func (s *StubSource) TeamDirectory(ctx context.Context) ([]models.TeamRow, error) {
	s.record("TeamDirectory")
	if s.DirectoryFn == nil {
		return nil, nil
	}
	return s.DirectoryFn()
}

// Teams is a small directory fixture shared across tests.
func Teams() []models.TeamRow {
	return []models.TeamRow{
		{ID: 1610612747, FullName: "Los Angeles Lakers", Abbreviation: "LAL"},
		{ID: 1610612738, FullName: "Boston Celtics", Abbreviation: "BOS"},
		{ID: 1610612744, FullName: "Golden State Warriors", Abbreviation: "GSW"},
	}
}
