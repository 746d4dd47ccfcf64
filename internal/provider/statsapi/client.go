// Package statsapi implements the HTTP client for the upstream statistics
// provider.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/czl524069797/sport-oracle/pkg/contracts"
	"github.com/czl524069797/sport-oracle/pkg/models"
)

// DefaultBaseURL is the provider endpoint used when none is configured.
const DefaultBaseURL = "https://stats.sportoracle.io/api/v1"

// Client fetches raw rows from the statistics provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

var _ contracts.StatsSource = (*Client)(nil)

// New creates a provider client for the given base URL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: "Mozilla/5.0 (compatible; SportOracle/1.0)",
	}
}

// FetchScoreboard fetches the raw game rows for a date.
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) ([]models.GameRow, error) {
	url := fmt.Sprintf("%s/scoreboard?gameDate=%s", c.baseURL, date.Format("2006-01-02"))

	var result struct {
		Games []models.GameRow `json:"games"`
	}
	if err := c.fetch(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Games, nil
}

// FetchStandings fetches the season standing rows.
func (c *Client) FetchStandings(ctx context.Context, season string) ([]models.StandingRow, error) {
	url := fmt.Sprintf("%s/standings?season=%s", c.baseURL, season)

	var result struct {
		Standings []models.StandingRow `json:"standings"`
	}
	if err := c.fetch(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Standings, nil
}

// FetchTeamDashboard fetches a team's season aggregate line.
func (c *Client) FetchTeamDashboard(ctx context.Context, teamID int, season string) (models.DashboardRow, error) {
	url := fmt.Sprintf("%s/teams/%d/dashboard?season=%s", c.baseURL, teamID, season)

	var result struct {
		Dashboard models.DashboardRow `json:"dashboard"`
	}
	if err := c.fetch(ctx, url, &result); err != nil {
		return models.DashboardRow{}, err
	}
	return result.Dashboard, nil
}

// FetchGameLog fetches a team's game log, most recent first.
func (c *Client) FetchGameLog(ctx context.Context, teamID int, season string) ([]models.GameLogRow, error) {
	url := fmt.Sprintf("%s/teams/%d/gamelog?season=%s", c.baseURL, teamID, season)
	return c.fetchGames(ctx, url)
}

// FetchLeagueGames fetches a team's season games across all opponents.
func (c *Client) FetchLeagueGames(ctx context.Context, teamID int, season string) ([]models.GameLogRow, error) {
	url := fmt.Sprintf("%s/teams/%d/games?season=%s", c.baseURL, teamID, season)
	return c.fetchGames(ctx, url)
}

// FetchTeamPlayers fetches season totals for a team's players.
func (c *Client) FetchTeamPlayers(ctx context.Context, teamID int, season string) ([]models.PlayerRow, error) {
	url := fmt.Sprintf("%s/teams/%d/players?season=%s", c.baseURL, teamID, season)

	var result struct {
		Players []models.PlayerRow `json:"players"`
	}
	if err := c.fetch(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Players, nil
}

// TeamDirectory fetches the static team reference data.
func (c *Client) TeamDirectory(ctx context.Context) ([]models.TeamRow, error) {
	url := fmt.Sprintf("%s/teams", c.baseURL)

	var result struct {
		Teams []models.TeamRow `json:"teams"`
	}
	if err := c.fetch(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Teams, nil
}

func (c *Client) fetchGames(ctx context.Context, url string) ([]models.GameLogRow, error) {
	var result struct {
		Games []models.GameLogRow `json:"games"`
	}
	if err := c.fetch(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Games, nil
}

// fetch makes an HTTP GET request and decodes the JSON response into out.
func (c *Client) fetch(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("stats API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
