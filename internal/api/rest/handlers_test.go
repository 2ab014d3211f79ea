package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fortuna/stattracker/internal/league/leaguetest"
	"github.com/fortuna/stattracker/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) HealthCheck(ctx context.Context) error { return p.err }

func newTestServer(t *testing.T, opts ...ServerOption) *httptest.Server {
	t.Helper()
	reports := service.NewReportService(leaguetest.Tracker(), zerolog.Nop())
	srv := httptest.NewServer(NewServer("0", reports, zerolog.Nop(), opts...).Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, v interface{}) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	status := getJSON(t, srv, "/health", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Len(t, body["fingerprint"], 16)
	assert.NotContains(t, body, "redis")
}

func TestHealthCheckRedis(t *testing.T) {
	healthy := newTestServer(t, WithRedisCheck(stubPinger{}))

	var body map[string]string
	status := getJSON(t, healthy, "/health", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["redis"])

	down := newTestServer(t, WithRedisCheck(stubPinger{err: errors.New("connection refused")}))

	body = nil
	status = getJSON(t, down, "/health", &body)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "unhealthy", body["redis"])
}

func TestGetLeagueReport(t *testing.T) {
	srv := newTestServer(t)

	var report service.LeagueReport
	status := getJSON(t, srv, "/api/v1/league", &report)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, report.TotalMatches)
	assert.Equal(t, 4, report.CountOfTeams)
	assert.Equal(t, 7, report.HighestTotalScore)
	assert.Equal(t, 0, report.LowestTotalScore)
	assert.Equal(t, 4.0, report.AverageGoalsPerMatch)
	require.NotNil(t, report.BestOffense)
	assert.Equal(t, "FC Dallas", *report.BestOffense)
	require.NotNil(t, report.LowestScoringHomeTeam)
	assert.Equal(t, "Houston Dynamo", *report.LowestScoringHomeTeam)
}

func TestGetPercentages(t *testing.T) {
	srv := newTestServer(t)

	var pct service.Percentages
	status := getJSON(t, srv, "/api/v1/league/percentages", &pct)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0.4, pct.Home)
	assert.Equal(t, 0.4, pct.Visitor)
	assert.Equal(t, 0.4, pct.Tie)
}

func TestGetOpinions(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	getJSON(t, srv, "/api/v1/league/opinions", &body)

	assert.Equal(t, "Claude Julien", body["favorite_coach"])
	assert.Equal(t, "John Tortorella", body["least_favorite_coach"])
}

func TestGetSeasons(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Seasons         []string       `json:"seasons"`
		MatchesBySeason map[string]int `json:"matches_by_season"`
	}
	getJSON(t, srv, "/api/v1/seasons", &body)

	assert.Equal(t, []string{"20122013", "20132014"}, body.Seasons)
	assert.Equal(t, map[string]int{"20122013": 3, "20132014": 2}, body.MatchesBySeason)
}

func TestGetSeasonReport(t *testing.T) {
	srv := newTestServer(t)

	var report service.SeasonReport
	status := getJSON(t, srv, "/api/v1/seasons/20132014", &report)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, report.Matches)
	require.NotNil(t, report.MostTackles)
	assert.Equal(t, "Atlanta United", *report.MostTackles)
	require.NotNil(t, report.WorstCoach)
	assert.Equal(t, "Dan Bylsma", *report.WorstCoach)
}

func TestGetSeasonReportUnknownSeason(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]interface{}
	status := getJSON(t, srv, "/api/v1/seasons/19992000", &body)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Season not found", body["error"])
}

func TestGetSeasonCoaches(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Wins            map[string]int `json:"wins"`
		WinningestCoach *string        `json:"winningest_coach"`
		WorstCoach      *string        `json:"worst_coach"`
	}
	getJSON(t, srv, "/api/v1/seasons/20122013/coaches", &body)

	assert.Equal(t, map[string]int{"John Tortorella": 0, "Claude Julien": 3}, body.Wins)
	require.NotNil(t, body.WinningestCoach)
	assert.Equal(t, "Claude Julien", *body.WinningestCoach)
	require.NotNil(t, body.WorstCoach)
	assert.Equal(t, "John Tortorella", *body.WorstCoach)
}

func TestGetTeam(t *testing.T) {
	srv := newTestServer(t)

	var team service.TeamSummary
	status := getJSON(t, srv, "/api/v1/teams/6", &team)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "FC Dallas", team.Team.TeamName)
	assert.Equal(t, 4, team.GamesPlayed)
	assert.Equal(t, 4, team.Wins)
}

func TestGetTeamNotFound(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]interface{}
	status := getJSON(t, srv, "/api/v1/teams/99", &body)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Team not found", body["error"])
}

func TestGetTeams(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Teams []map[string]interface{} `json:"teams"`
	}
	getJSON(t, srv, "/api/v1/teams", &body)

	assert.Len(t, body.Teams, 4)
}

func TestGetTeamSchedule(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Games []service.GameSummary `json:"games"`
	}
	status := getJSON(t, srv, "/api/v1/teams/1/schedule?season=20132014", &body)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Games, 2)
	assert.Equal(t, "2013020001", body.Games[0].Game.MatchID)
}

func TestGetGame(t *testing.T) {
	srv := newTestServer(t)

	var game service.GameSummary
	status := getJSON(t, srv, "/api/v1/games/2012030223", &game)

	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, game.HomeTeam)
	assert.Equal(t, "Houston Dynamo", game.HomeTeam.TeamName)
	assert.Len(t, game.BoxScores, 2)

	var missing map[string]interface{}
	status = getJSON(t, srv, "/api/v1/games/nope", &missing)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/league", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
