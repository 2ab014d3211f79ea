package service

import (
	"fmt"

	"github.com/fortuna/stattracker/internal/league"
)

// TeamSummary is a franchise with its all-time record
type TeamSummary struct {
	Team          league.Franchise `json:"team"`
	GamesPlayed   int              `json:"games_played"`
	Wins          int              `json:"wins"`
	Losses        int              `json:"losses"`
	Ties          int              `json:"ties"`
	Goals         int              `json:"goals"`
	GoalsPerGame  float64          `json:"goals_per_game"`
	WinPercentage float64          `json:"win_percentage"`
}

// TeamService handles franchise lookups over the loaded snapshot
type TeamService struct {
	tracker *league.StatTracker
}

// NewTeamService creates a new team service
func NewTeamService(tracker *league.StatTracker) *TeamService {
	return &TeamService{tracker: tracker}
}

// GetTeams returns every franchise in load order
func (s *TeamService) GetTeams() []league.Franchise {
	return s.tracker.Franchises()
}

// GetTeam returns a franchise with its record
func (s *TeamService) GetTeam(teamID string) (*TeamSummary, error) {
	team, ok := s.tracker.Franchise(teamID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	summary := &TeamSummary{Team: team}
	for _, p := range s.tracker.ParticipationsForTeam(teamID) {
		summary.GamesPlayed++
		summary.Goals += p.Goals
		switch p.Result {
		case league.Win:
			summary.Wins++
		case league.Loss:
			summary.Losses++
		case league.Tie:
			summary.Ties++
		}
	}

	games := float64(summary.GamesPlayed)
	summary.GoalsPerGame = league.Round2(league.Ratio(float64(summary.Goals), games))
	summary.WinPercentage = league.Round2(league.Ratio(float64(summary.Wins), games))
	return summary, nil
}
