// Package handlers contains the chi HTTP handlers for the service.
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/czl524069797/sport-oracle/pkg/models"
)

const defaultUpcomingDays = 7

// ScheduleLister is the schedule aggregator as the handlers consume it.
type ScheduleLister interface {
	GamesForDate(ctx context.Context, date time.Time) []models.GameSummary
	UpcomingGames(ctx context.Context, days int) []models.GameSummary
}

// TeamStatsProvider is the team statistics reconciler as the handlers
// consume it.
type TeamStatsProvider interface {
	TeamStats(ctx context.Context, teamID int) (models.TeamStatsSummary, error)
	TeamPlayers(ctx context.Context, teamID int) ([]models.PlayerSummary, error)
}

// MatchupProvider is the head-to-head reconciler as the handlers consume it.
type MatchupProvider interface {
	HeadToHead(ctx context.Context, homeID, awayID int) models.HeadToHeadResult
}

// Handler contains dependencies for the stats HTTP handlers
type Handler struct {
	schedule ScheduleLister
	teams    TeamStatsProvider
	matchups MatchupProvider
	now      func() time.Time
}

// NewHandler creates a new handler with dependencies
func NewHandler(schedule ScheduleLister, teams TeamStatsProvider, matchups MatchupProvider) *Handler {
	return &Handler{
		schedule: schedule,
		teams:    teams,
		matchups: matchups,
		now:      time.Now,
	}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "sport-oracle",
		"timestamp": time.Now().UTC(),
	})
}

// TodaySchedule returns today's games
// GET /api/schedule/today
func (h *Handler) TodaySchedule(w http.ResponseWriter, r *http.Request) {
	games := h.schedule.GamesForDate(r.Context(), h.now())

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// UpcomingSchedule returns games for the next N days
// GET /api/schedule/upcoming?days=7
func (h *Handler) UpcomingSchedule(w http.ResponseWriter, r *http.Request) {
	days := parseIntParam(r, "days", defaultUpcomingDays)
	if days < 1 {
		respondError(w, http.StatusBadRequest, "days must be positive", nil)
		return
	}

	games := h.schedule.UpcomingGames(r.Context(), days)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// TeamStats returns a team's statistics summary
// GET /api/teams/{teamID}/stats
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "teamID must be an integer", err)
		return
	}

	stats, err := h.teams.TeamStats(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch team stats: "+err.Error(), err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// TeamPlayers returns a team's player averages
// GET /api/teams/{teamID}/players
func (h *Handler) TeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "teamID must be an integer", err)
		return
	}

	players, err := h.teams.TeamPlayers(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch players: "+err.Error(), err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
	})
}

// HeadToHead returns the season record between two teams
// GET /api/teams/h2h?home={id}&away={id}
func (h *Handler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	homeID, err := strconv.Atoi(r.URL.Query().Get("home"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "home must be an integer team id", err)
		return
	}
	awayID, err := strconv.Atoi(r.URL.Query().Get("away"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "away must be an integer team id", err)
		return
	}

	respondJSON(w, http.StatusOK, h.matchups.HeadToHead(r.Context(), homeID, awayID))
}

// Helper functions

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[handlers] error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		log.Printf("[handlers] %s: %v", message, err)
	}

	respondJSON(w, status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
