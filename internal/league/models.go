package league

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSide   = errors.New("invalid side")
	ErrInvalidResult = errors.New("invalid result")
)

// Side is which end of a match a team played.
type Side int

const (
	Home Side = iota + 1
	Away
)

// ParseSide converts a raw hoa value ("home", "away", "visitor").
func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "home":
		return Home, nil
	case "away", "visitor":
		return Away, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, raw)
}

func (s Side) String() string {
	switch s {
	case Home:
		return "home"
	case Away:
		return "away"
	}
	return "unknown"
}

// MarshalText keeps JSON output readable.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Result is a team's outcome in one match.
type Result int

const (
	Win Result = iota + 1
	Loss
	Tie
)

// ParseResult converts a raw result value ("WIN", "LOSS", "TIE").
func ParseResult(raw string) (Result, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "WIN":
		return Win, nil
	case "LOSS":
		return Loss, nil
	case "TIE":
		return Tie, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidResult, raw)
}

func (r Result) String() string {
	switch r {
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	case Tie:
		return "TIE"
	}
	return "UNKNOWN"
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(text []byte) error {
	v, err := ParseResult(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Match represents one scheduled or played game
type Match struct {
	MatchID    string `json:"game_id"`
	Season     string `json:"season"`
	Type       string `json:"type"`
	DateTime   string `json:"date_time"`
	AwayTeamID string `json:"away_team_id"`
	HomeTeamID string `json:"home_team_id"`
	AwayGoals  int    `json:"away_goals"`
	HomeGoals  int    `json:"home_goals"`
	Venue      string `json:"venue"`
	VenueLink  string `json:"venue_link"`
}

// TotalGoals returns the combined score of both sides.
func (m Match) TotalGoals() int {
	return m.AwayGoals + m.HomeGoals
}

// Franchise represents a team organization. TeamID is the key used by
// matches and participations; FranchiseID is the parent franchise.
type Franchise struct {
	TeamID       string `json:"team_id"`
	FranchiseID  string `json:"franchise_id"`
	TeamName     string `json:"team_name"`
	Abbreviation string `json:"abbreviation"`
	Stadium      string `json:"stadium"`
	Link         string `json:"link"`
}

// Participation is one team's box score for one match
type Participation struct {
	MatchID                string  `json:"game_id"`
	TeamID                 string  `json:"team_id"`
	Side                   Side    `json:"hoa"`
	Result                 Result  `json:"result"`
	SettledIn              string  `json:"settled_in"`
	HeadCoach              string  `json:"head_coach"`
	Goals                  int     `json:"goals"`
	Shots                  int     `json:"shots"`
	Tackles                int     `json:"tackles"`
	PIM                    int     `json:"pim"`
	PowerPlayOpportunities int     `json:"power_play_opportunities"`
	PowerPlayGoals         int     `json:"power_play_goals"`
	FaceOffWinPercentage   float64 `json:"face_off_win_percentage"`
	Giveaways              int     `json:"giveaways"`
	Takeaways              int     `json:"takeaways"`
}
