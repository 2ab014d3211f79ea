package league

// MostTackles returns the team with the most total tackles in season.
// Absent when the season has no participations.
func (t *StatTracker) MostTackles(season string) (string, bool) {
	return t.resolveName(pickMax(t.tacklesByTeam(season)))
}

// FewestTackles returns the team with the fewest total tackles in season.
func (t *StatTracker) FewestTackles(season string) (string, bool) {
	return t.resolveName(pickMin(t.tacklesByTeam(season)))
}

func (t *StatTracker) tacklesByTeam(season string) *tally[string, int] {
	byTeam := groupBy(t.ParticipationsForSeason(season), func(p Participation) string { return p.TeamID })
	return reduce(byTeam, func(ps []Participation) int {
		var tackles int
		for _, p := range ps {
			tackles += p.Tackles
		}
		return tackles
	})
}

// MostAccurateTeam returns the team with the best goals-to-shots ratio in season.
func (t *StatTracker) MostAccurateTeam(season string) (string, bool) {
	return t.resolveName(pickMax(t.accuracyByTeam(season)))
}

// LeastAccurateTeam returns the team with the worst goals-to-shots ratio in season.
func (t *StatTracker) LeastAccurateTeam(season string) (string, bool) {
	return t.resolveName(pickMin(t.accuracyByTeam(season)))
}

func (t *StatTracker) accuracyByTeam(season string) *tally[string, float64] {
	byTeam := groupBy(t.ParticipationsForSeason(season), func(p Participation) string { return p.TeamID })
	return reduce(byTeam, func(ps []Participation) float64 {
		var goals, shots int
		for _, p := range ps {
			goals += p.Goals
			shots += p.Shots
		}
		return Ratio(float64(goals), float64(shots))
	})
}

// SeasonWins maps each head coach to the wins recorded under them in season.
// Coaches without a win are present with 0. A coach who led several teams in
// one season is counted under a single key.
func (t *StatTracker) SeasonWins(season string) map[string]int {
	return t.winsByCoach(season).toMap()
}

// WinningestCoach returns the coach with the most wins in season.
func (t *StatTracker) WinningestCoach(season string) (string, bool) {
	return pickMax(t.winsByCoach(season))
}

// WorstCoach returns the coach with the fewest wins in season.
func (t *StatTracker) WorstCoach(season string) (string, bool) {
	return pickMin(t.winsByCoach(season))
}

func (t *StatTracker) winsByCoach(season string) *tally[string, int] {
	byCoach := groupBy(t.ParticipationsForSeason(season), func(p Participation) string { return p.HeadCoach })
	return reduce(byCoach, func(ps []Participation) int {
		var wins int
		for _, p := range ps {
			if p.Result == Win {
				wins++
			}
		}
		return wins
	})
}

// FavoriteCoach is a curator pick, independent of the loaded data.
func (t *StatTracker) FavoriteCoach() string {
	return t.favoriteCoach
}

// LeastFavoriteCoach is a curator pick, independent of the loaded data.
func (t *StatTracker) LeastFavoriteCoach() string {
	return t.leastFavoriteCoach
}
