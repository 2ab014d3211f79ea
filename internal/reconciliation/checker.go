// Package reconciliation cross-checks the three record sets of a snapshot.
// Match scores and box scores describe the same games twice; the checker
// reports where they disagree or reference records that do not exist.
package reconciliation

import (
	"fmt"

	"github.com/fortuna/stattracker/internal/league"
)

// IssueKind classifies a reconciliation finding
type IssueKind string

const (
	UnknownMatch         IssueKind = "unknown_match"
	UnknownTeam          IssueKind = "unknown_team"
	SideMismatch         IssueKind = "side_mismatch"
	ScoreMismatch        IssueKind = "score_mismatch"
	MissingParticipation IssueKind = "missing_participation"
	DuplicateMatch       IssueKind = "duplicate_match"
)

// Issue is one inconsistency between records
type Issue struct {
	Kind    IssueKind `json:"kind"`
	MatchID string    `json:"game_id"`
	TeamID  string    `json:"team_id,omitempty"`
	Detail  string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s game=%s team=%s: %s", i.Kind, i.MatchID, i.TeamID, i.Detail)
}

// Report summarizes a reconciliation pass
type Report struct {
	Matches        int     `json:"matches"`
	Franchises     int     `json:"franchises"`
	Participations int     `json:"participations"`
	Issues         []Issue `json:"issues"`
}

// Clean reports whether no issue was found
func (r *Report) Clean() bool {
	return len(r.Issues) == 0
}

// Count returns the number of issues of one kind
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// Check reconciles matches against franchises and participations. Issues
// are reported in load order.
func Check(snap *league.Snapshot) *Report {
	report := &Report{
		Matches:        len(snap.Matches),
		Franchises:     len(snap.Franchises),
		Participations: len(snap.Participations),
		Issues:         make([]Issue, 0),
	}

	teams := make(map[string]bool, len(snap.Franchises))
	for _, f := range snap.Franchises {
		teams[f.TeamID] = true
	}

	matches := make(map[string]league.Match, len(snap.Matches))
	for _, m := range snap.Matches {
		if _, seen := matches[m.MatchID]; seen {
			report.add(DuplicateMatch, m.MatchID, "", "game id appears more than once")
			continue
		}
		matches[m.MatchID] = m

		for _, id := range []string{m.AwayTeamID, m.HomeTeamID} {
			if !teams[id] {
				report.add(UnknownTeam, m.MatchID, id, "team not in franchises")
			}
		}
	}

	type sides struct{ home, away bool }
	covered := make(map[string]*sides, len(matches))

	for _, p := range snap.Participations {
		m, ok := matches[p.MatchID]
		if !ok {
			report.add(UnknownMatch, p.MatchID, p.TeamID, "box score for a game that was not loaded")
			continue
		}
		if !teams[p.TeamID] {
			report.add(UnknownTeam, p.MatchID, p.TeamID, "team not in franchises")
		}

		wantTeam, wantGoals := m.HomeTeamID, m.HomeGoals
		if p.Side == league.Away {
			wantTeam, wantGoals = m.AwayTeamID, m.AwayGoals
		}
		if p.TeamID != wantTeam {
			report.add(SideMismatch, p.MatchID, p.TeamID,
				fmt.Sprintf("%s side belongs to team %s", p.Side, wantTeam))
			continue
		}
		if p.Goals != wantGoals {
			report.add(ScoreMismatch, p.MatchID, p.TeamID,
				fmt.Sprintf("box score has %d goals, game has %d", p.Goals, wantGoals))
		}

		s := covered[p.MatchID]
		if s == nil {
			s = &sides{}
			covered[p.MatchID] = s
		}
		if p.Side == league.Home {
			s.home = true
		} else {
			s.away = true
		}
	}

	checked := make(map[string]bool, len(matches))
	for _, m := range snap.Matches {
		if checked[m.MatchID] {
			continue
		}
		checked[m.MatchID] = true

		s := covered[m.MatchID]
		if s == nil {
			s = &sides{}
		}
		if !s.home {
			report.add(MissingParticipation, m.MatchID, m.HomeTeamID, "no home box score")
		}
		if !s.away {
			report.add(MissingParticipation, m.MatchID, m.AwayTeamID, "no away box score")
		}
	}

	return report
}

func (r *Report) add(kind IssueKind, matchID, teamID, detail string) {
	r.Issues = append(r.Issues, Issue{Kind: kind, MatchID: matchID, TeamID: teamID, Detail: detail})
}
