package service

import (
	"errors"
	"fmt"

	"github.com/fortuna/stattracker/internal/league"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTeamNotFound = errors.New("team not found")
)

// GameSummary is a match with its teams and box scores resolved
type GameSummary struct {
	Game      league.Match           `json:"game"`
	HomeTeam  *league.Franchise      `json:"home_team"`
	AwayTeam  *league.Franchise      `json:"away_team"`
	BoxScores []league.Participation `json:"box_scores"`
}

// GameService handles game lookups over the loaded snapshot
type GameService struct {
	tracker *league.StatTracker
}

// NewGameService creates a new game service
func NewGameService(tracker *league.StatTracker) *GameService {
	return &GameService{tracker: tracker}
}

// GetGame retrieves a game by ID with team details
func (s *GameService) GetGame(gameID string) (*GameSummary, error) {
	game, ok := s.tracker.Match(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return s.summarize(game), nil
}

// GetTeamSchedule returns a team's games, optionally limited to one season,
// in load order
func (s *GameService) GetTeamSchedule(teamID, season string) ([]*GameSummary, error) {
	if _, ok := s.tracker.Franchise(teamID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	schedule := make([]*GameSummary, 0)
	for _, m := range s.tracker.Matches() {
		if season != "" && m.Season != season {
			continue
		}
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			schedule = append(schedule, s.summarize(m))
		}
	}
	return schedule, nil
}

func (s *GameService) summarize(m league.Match) *GameSummary {
	summary := &GameSummary{
		Game:      m,
		BoxScores: s.tracker.ParticipationsForMatch(m.MatchID),
	}
	if home, ok := s.tracker.Franchise(m.HomeTeamID); ok {
		summary.HomeTeam = &home
	}
	if away, ok := s.tracker.Franchise(m.AwayTeamID); ok {
		summary.AwayTeam = &away
	}
	return summary
}
