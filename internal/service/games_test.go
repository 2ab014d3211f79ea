package service

import (
	"testing"

	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/league/leaguetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGame(t *testing.T) {
	svc := NewGameService(leaguetest.Tracker())

	game, err := svc.GetGame("2012030221")
	require.NoError(t, err)
	assert.Equal(t, "FC Dallas", game.HomeTeam.TeamName)
	assert.Equal(t, "Houston Dynamo", game.AwayTeam.TeamName)
	require.Len(t, game.BoxScores, 2)
	assert.Equal(t, league.Away, game.BoxScores[0].Side)

	_, err = svc.GetGame("nope")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGetGameUnknownTeams(t *testing.T) {
	matches := []league.Match{{MatchID: "m1", Season: "s", AwayTeamID: "40", HomeTeamID: "41"}}
	svc := NewGameService(league.New(matches, leaguetest.Franchises(), nil))

	game, err := svc.GetGame("m1")
	require.NoError(t, err)
	assert.Nil(t, game.HomeTeam)
	assert.Nil(t, game.AwayTeam)
	assert.Empty(t, game.BoxScores)
}

func TestGetTeamSchedule(t *testing.T) {
	svc := NewGameService(leaguetest.Tracker())

	all, err := svc.GetTeamSchedule("3", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	season, err := svc.GetTeamSchedule("3", "20132014")
	require.NoError(t, err)
	require.Len(t, season, 1)
	assert.Equal(t, "2013020001", season[0].Game.MatchID)

	idle, err := svc.GetTeamSchedule("5", "")
	require.NoError(t, err)
	assert.Empty(t, idle)

	_, err = svc.GetTeamSchedule("404", "")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
