package league_test

import (
	"testing"

	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/league/leaguetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTackles(t *testing.T) {
	tracker := leaguetest.Tracker()

	tests := []struct {
		season string
		most   string
		fewest string
	}{
		{"20122013", "FC Dallas", "Houston Dynamo"},
		{"20132014", "Atlanta United", "FC Dallas"},
	}
	for _, tt := range tests {
		t.Run(tt.season, func(t *testing.T) {
			most, ok := tracker.MostTackles(tt.season)
			require.True(t, ok)
			assert.Equal(t, tt.most, most)

			fewest, ok := tracker.FewestTackles(tt.season)
			require.True(t, ok)
			assert.Equal(t, tt.fewest, fewest)
		})
	}
}

func TestTacklesUnknownSeason(t *testing.T) {
	tracker := leaguetest.Tracker()

	_, ok := tracker.MostTackles("19992000")
	assert.False(t, ok)
	_, ok = tracker.FewestTackles("19992000")
	assert.False(t, ok)
}

func TestAccuracy(t *testing.T) {
	tracker := leaguetest.Tracker()

	for _, season := range []string{"20122013", "20132014"} {
		most, ok := tracker.MostAccurateTeam(season)
		require.True(t, ok)
		assert.Equal(t, "FC Dallas", most, season)

		least, ok := tracker.LeastAccurateTeam(season)
		require.True(t, ok)
		assert.Equal(t, "Houston Dynamo", least, season)
	}

	_, ok := tracker.MostAccurateTeam("19992000")
	assert.False(t, ok)
}

func TestAccuracyZeroShots(t *testing.T) {
	matches := []league.Match{{MatchID: "m1", Season: "s", AwayTeamID: "1", HomeTeamID: "3"}}
	ps := []league.Participation{
		{MatchID: "m1", TeamID: "1", Side: league.Away, Result: league.Tie, Goals: 0, Shots: 0},
		{MatchID: "m1", TeamID: "3", Side: league.Home, Result: league.Tie, Goals: 1, Shots: 4},
	}
	tracker := league.New(matches, leaguetest.Franchises(), ps)

	least, ok := tracker.LeastAccurateTeam("s")
	require.True(t, ok)
	assert.Equal(t, "Atlanta United", least)

	most, ok := tracker.MostAccurateTeam("s")
	require.True(t, ok)
	assert.Equal(t, "Houston Dynamo", most)
}

func TestSeasonWins(t *testing.T) {
	tracker := leaguetest.Tracker()

	assert.Equal(t, map[string]int{
		"John Tortorella": 0,
		"Claude Julien":   3,
	}, tracker.SeasonWins("20122013"))

	assert.Equal(t, map[string]int{
		"Dan Bylsma":      0,
		"Alain Vigneault": 0,
		"Mike Babcock":    1,
	}, tracker.SeasonWins("20132014"))

	assert.Empty(t, tracker.SeasonWins("19992000"))
}

func TestSeasonWinsCoachAcrossTeams(t *testing.T) {
	matches := []league.Match{
		{MatchID: "m1", Season: "s", AwayTeamID: "1", HomeTeamID: "3"},
		{MatchID: "m2", Season: "s", AwayTeamID: "6", HomeTeamID: "5"},
	}
	ps := []league.Participation{
		{MatchID: "m1", TeamID: "1", Side: league.Away, Result: league.Win, HeadCoach: "Ken Hitchcock"},
		{MatchID: "m1", TeamID: "3", Side: league.Home, Result: league.Loss, HeadCoach: "Bruce Boudreau"},
		{MatchID: "m2", TeamID: "6", Side: league.Away, Result: league.Win, HeadCoach: "Ken Hitchcock"},
		{MatchID: "m2", TeamID: "5", Side: league.Home, Result: league.Loss, HeadCoach: "Peter DeBoer"},
	}
	tracker := league.New(matches, leaguetest.Franchises(), ps)

	wins := tracker.SeasonWins("s")
	assert.Equal(t, 2, wins["Ken Hitchcock"])
	assert.Len(t, wins, 3)
}

func TestCoaches(t *testing.T) {
	tracker := leaguetest.Tracker()

	best, ok := tracker.WinningestCoach("20122013")
	require.True(t, ok)
	assert.Equal(t, "Claude Julien", best)

	worst, ok := tracker.WorstCoach("20122013")
	require.True(t, ok)
	assert.Equal(t, "John Tortorella", worst)

	best, ok = tracker.WinningestCoach("20132014")
	require.True(t, ok)
	assert.Equal(t, "Mike Babcock", best)

	// Bylsma and Vigneault are both winless; Bylsma appears first
	worst, ok = tracker.WorstCoach("20132014")
	require.True(t, ok)
	assert.Equal(t, "Dan Bylsma", worst)

	_, ok = tracker.WinningestCoach("19992000")
	assert.False(t, ok)
}
