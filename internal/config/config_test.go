package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REST_PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("CACHE_TTL_MINUTES", "")
	t.Setenv("REPORT_REFRESH_SECONDS", "")
	t.Setenv("GAMES_CSV", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.RESTPort)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, 60, cfg.CacheTTLMinutes)
	assert.Equal(t, 300, cfg.RefreshSeconds)
	assert.False(t, cfg.UseCSV())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GAMES_CSV", "data/games.csv")
	t.Setenv("TEAMS_CSV", "data/teams.csv")
	t.Setenv("GAME_TEAMS_CSV", "data/game_teams.csv")
	t.Setenv("CACHE_TTL_MINUTES", "5")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("FAVORITE_COACH", "Mike Babcock")

	cfg := Load()
	assert.True(t, cfg.UseCSV())
	assert.Equal(t, 5, cfg.CacheTTLMinutes)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "Mike Babcock", cfg.FavoriteCoach)
}

func TestGetEnvAsIntInvalid(t *testing.T) {
	t.Setenv("CACHE_TTL_MINUTES", "soon")
	assert.Equal(t, 60, getEnvAsInt("CACHE_TTL_MINUTES", 60))
}
