// Package leaguetest provides a small two-season fixture for tests.
package leaguetest

import "github.com/fortuna/stattracker/internal/league"

// Franchises returns four teams; Sporting Kansas City never plays.
func Franchises() []league.Franchise {
	return []league.Franchise{
		{TeamID: "1", FranchiseID: "23", TeamName: "Atlanta United", Abbreviation: "ATL", Stadium: "Mercedes-Benz Stadium", Link: "/api/v1/teams/1"},
		{TeamID: "3", FranchiseID: "10", TeamName: "Houston Dynamo", Abbreviation: "HOU", Stadium: "BBVA Stadium", Link: "/api/v1/teams/3"},
		{TeamID: "6", FranchiseID: "6", TeamName: "FC Dallas", Abbreviation: "DAL", Stadium: "Toyota Stadium", Link: "/api/v1/teams/6"},
		{TeamID: "5", FranchiseID: "17", TeamName: "Sporting Kansas City", Abbreviation: "SKC", Stadium: "Children's Mercy Park", Link: "/api/v1/teams/5"},
	}
}

// Matches returns three 20122013 and two 20132014 matches.
func Matches() []league.Match {
	return []league.Match{
		{MatchID: "2012030221", Season: "20122013", Type: "Postseason", DateTime: "5/16/13", AwayTeamID: "3", HomeTeamID: "6", AwayGoals: 2, HomeGoals: 3, Venue: "Toyota Stadium", VenueLink: "/api/v1/venues/null"},
		{MatchID: "2012030222", Season: "20122013", Type: "Postseason", DateTime: "5/19/13", AwayTeamID: "3", HomeTeamID: "6", AwayGoals: 2, HomeGoals: 3, Venue: "Toyota Stadium", VenueLink: "/api/v1/venues/null"},
		{MatchID: "2012030223", Season: "20122013", Type: "Postseason", DateTime: "5/21/13", AwayTeamID: "6", HomeTeamID: "3", AwayGoals: 2, HomeGoals: 1, Venue: "BBVA Stadium", VenueLink: "/api/v1/venues/null"},
		{MatchID: "2013020001", Season: "20132014", Type: "Regular Season", DateTime: "10/1/13", AwayTeamID: "1", HomeTeamID: "3", AwayGoals: 0, HomeGoals: 0, Venue: "BBVA Stadium", VenueLink: "/api/v1/venues/null"},
		{MatchID: "2013020002", Season: "20132014", Type: "Regular Season", DateTime: "10/4/13", AwayTeamID: "6", HomeTeamID: "1", AwayGoals: 4, HomeGoals: 3, Venue: "Mercedes-Benz Stadium", VenueLink: "/api/v1/venues/null"},
	}
}

// Participations returns both box scores for every fixture match.
func Participations() []league.Participation {
	return []league.Participation{
		{MatchID: "2012030221", TeamID: "3", Side: league.Away, Result: league.Loss, SettledIn: "OT", HeadCoach: "John Tortorella", Goals: 2, Shots: 8, Tackles: 44, PIM: 8, PowerPlayOpportunities: 3, FaceOffWinPercentage: 44.8, Giveaways: 17, Takeaways: 7},
		{MatchID: "2012030221", TeamID: "6", Side: league.Home, Result: league.Win, SettledIn: "OT", HeadCoach: "Claude Julien", Goals: 3, Shots: 12, Tackles: 51, PIM: 6, PowerPlayOpportunities: 4, PowerPlayGoals: 1, FaceOffWinPercentage: 55.2, Giveaways: 4, Takeaways: 5},
		{MatchID: "2012030222", TeamID: "3", Side: league.Away, Result: league.Loss, SettledIn: "REG", HeadCoach: "John Tortorella", Goals: 2, Shots: 9, Tackles: 33, PIM: 11, PowerPlayOpportunities: 5, FaceOffWinPercentage: 51.7, Giveaways: 1, Takeaways: 4},
		{MatchID: "2012030222", TeamID: "6", Side: league.Home, Result: league.Win, SettledIn: "REG", HeadCoach: "Claude Julien", Goals: 3, Shots: 8, Tackles: 36, PIM: 19, PowerPlayOpportunities: 1, FaceOffWinPercentage: 48.3, Giveaways: 16, Takeaways: 6},
		{MatchID: "2012030223", TeamID: "6", Side: league.Away, Result: league.Win, SettledIn: "REG", HeadCoach: "Claude Julien", Goals: 2, Shots: 8, Tackles: 28, PIM: 6, PowerPlayOpportunities: 0, FaceOffWinPercentage: 61.8, Giveaways: 10, Takeaways: 7},
		{MatchID: "2012030223", TeamID: "3", Side: league.Home, Result: league.Loss, SettledIn: "REG", HeadCoach: "John Tortorella", Goals: 1, Shots: 10, Tackles: 24, PIM: 2, PowerPlayOpportunities: 3, FaceOffWinPercentage: 38.2, Giveaways: 7, Takeaways: 9},
		{MatchID: "2013020001", TeamID: "1", Side: league.Away, Result: league.Tie, SettledIn: "REG", HeadCoach: "Dan Bylsma", Goals: 0, Shots: 7, Tackles: 30, PIM: 4, PowerPlayOpportunities: 2, FaceOffWinPercentage: 50, Giveaways: 3, Takeaways: 3},
		{MatchID: "2013020001", TeamID: "3", Side: league.Home, Result: league.Tie, SettledIn: "REG", HeadCoach: "Alain Vigneault", Goals: 0, Shots: 5, Tackles: 30, PIM: 4, PowerPlayOpportunities: 2, FaceOffWinPercentage: 50, Giveaways: 5, Takeaways: 2},
		{MatchID: "2013020002", TeamID: "6", Side: league.Away, Result: league.Win, SettledIn: "OT", HeadCoach: "Mike Babcock", Goals: 4, Shots: 10, Tackles: 20, PIM: 0, PowerPlayOpportunities: 1, PowerPlayGoals: 1, FaceOffWinPercentage: 47.1, Giveaways: 8, Takeaways: 10},
		{MatchID: "2013020002", TeamID: "1", Side: league.Home, Result: league.Loss, SettledIn: "OT", HeadCoach: "Dan Bylsma", Goals: 3, Shots: 6, Tackles: 40, PIM: 2, PowerPlayOpportunities: 1, FaceOffWinPercentage: 52.9, Giveaways: 6, Takeaways: 1},
	}
}

// Tracker builds a tracker over the fixture.
func Tracker(opts ...league.Option) *league.StatTracker {
	return league.New(Matches(), Franchises(), Participations(), opts...)
}
