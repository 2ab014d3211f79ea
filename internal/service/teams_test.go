package service

import (
	"testing"

	"github.com/fortuna/stattracker/internal/league/leaguetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTeams(t *testing.T) {
	svc := NewTeamService(leaguetest.Tracker())

	teams := svc.GetTeams()
	require.Len(t, teams, 4)
	assert.Equal(t, "Atlanta United", teams[0].TeamName)
}

func TestGetTeam(t *testing.T) {
	svc := NewTeamService(leaguetest.Tracker())

	dallas, err := svc.GetTeam("6")
	require.NoError(t, err)
	assert.Equal(t, 4, dallas.GamesPlayed)
	assert.Equal(t, 4, dallas.Wins)
	assert.Equal(t, 12, dallas.Goals)
	assert.Equal(t, 3.0, dallas.GoalsPerGame)
	assert.Equal(t, 1.0, dallas.WinPercentage)

	houston, err := svc.GetTeam("3")
	require.NoError(t, err)
	assert.Equal(t, 3, houston.Losses)
	assert.Equal(t, 1, houston.Ties)
	assert.Equal(t, 1.25, houston.GoalsPerGame)

	idle, err := svc.GetTeam("5")
	require.NoError(t, err)
	assert.Equal(t, 0, idle.GamesPlayed)
	assert.Equal(t, 0.0, idle.GoalsPerGame)

	_, err = svc.GetTeam("404")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
