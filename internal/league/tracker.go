// Package league answers analytical queries over an immutable snapshot of
// matches, franchises and per-match team participations.
package league

// Default curator picks returned by the opinion queries.
const (
	DefaultFavoriteCoach      = "Claude Julien"
	DefaultLeastFavoriteCoach = "John Tortorella"
)

// StatTracker owns one loaded snapshot. Every query is a read-only pass over
// the three slices, so a tracker is safe for concurrent use once built.
type StatTracker struct {
	matches        []Match
	franchises     []Franchise
	participations []Participation

	favoriteCoach      string
	leastFavoriteCoach string
}

// Option configures a StatTracker
type Option func(*StatTracker)

// WithOpinions overrides the favorite and least favorite coach picks.
// Empty values keep the defaults.
func WithOpinions(favorite, leastFavorite string) Option {
	return func(t *StatTracker) {
		if favorite != "" {
			t.favoriteCoach = favorite
		}
		if leastFavorite != "" {
			t.leastFavoriteCoach = leastFavorite
		}
	}
}

// New builds a tracker from already-typed records. The slices are copied so
// later changes by the caller do not leak into query results.
func New(matches []Match, franchises []Franchise, participations []Participation, opts ...Option) *StatTracker {
	t := &StatTracker{
		matches:            append([]Match(nil), matches...),
		franchises:         append([]Franchise(nil), franchises...),
		participations:     append([]Participation(nil), participations...),
		favoriteCoach:      DefaultFavoriteCoach,
		leastFavoriteCoach: DefaultLeastFavoriteCoach,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Matches returns a copy of the loaded matches in load order.
func (t *StatTracker) Matches() []Match {
	return append([]Match(nil), t.matches...)
}

// Franchises returns a copy of the loaded franchises in load order.
func (t *StatTracker) Franchises() []Franchise {
	return append([]Franchise(nil), t.franchises...)
}

// Participations returns a copy of the loaded participations in load order.
func (t *StatTracker) Participations() []Participation {
	return append([]Participation(nil), t.participations...)
}

// CountOfTeams returns the number of loaded franchises.
func (t *StatTracker) CountOfTeams() int {
	return len(t.franchises)
}

// Franchise finds the first franchise with the given team id.
func (t *StatTracker) Franchise(teamID string) (Franchise, bool) {
	for _, f := range t.franchises {
		if f.TeamID == teamID {
			return f, true
		}
	}
	return Franchise{}, false
}

// FranchiseName resolves a team id to its display name.
func (t *StatTracker) FranchiseName(teamID string) (string, bool) {
	f, ok := t.Franchise(teamID)
	if !ok {
		return "", false
	}
	return f.TeamName, true
}

// resolveName turns an extremum key into a display name, carrying absence through.
func (t *StatTracker) resolveName(teamID string, found bool) (string, bool) {
	if !found {
		return "", false
	}
	return t.FranchiseName(teamID)
}

// Seasons lists distinct seasons in the order they first appear.
func (t *StatTracker) Seasons() []string {
	return groupBy(t.matches, func(m Match) string { return m.Season }).order
}

// ParticipationsForSeason returns the participations whose match belongs to
// season, in load order. Participations pointing at unknown matches never
// qualify.
func (t *StatTracker) ParticipationsForSeason(season string) []Participation {
	matchIDs := make(map[string]struct{})
	for _, m := range t.matches {
		if m.Season == season {
			matchIDs[m.MatchID] = struct{}{}
		}
	}
	if len(matchIDs) == 0 {
		return nil
	}

	var out []Participation
	for _, p := range t.participations {
		if _, ok := matchIDs[p.MatchID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Match finds a match by id.
func (t *StatTracker) Match(matchID string) (Match, bool) {
	for _, m := range t.matches {
		if m.MatchID == matchID {
			return m, true
		}
	}
	return Match{}, false
}

// ParticipationsForMatch returns the box scores recorded for one match.
func (t *StatTracker) ParticipationsForMatch(matchID string) []Participation {
	var out []Participation
	for _, p := range t.participations {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	return out
}

// ParticipationsForTeam returns one team's box scores in load order.
func (t *StatTracker) ParticipationsForTeam(teamID string) []Participation {
	var out []Participation
	for _, p := range t.participations {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}
