package league

// TotalMatchCount returns the number of loaded matches.
func (t *StatTracker) TotalMatchCount() int {
	return len(t.matches)
}

// HighestTotalScore returns the largest combined score of any match, 0 when
// there are no matches.
func (t *StatTracker) HighestTotalScore() int {
	if len(t.matches) == 0 {
		return 0
	}
	highest := t.matches[0].TotalGoals()
	for _, m := range t.matches[1:] {
		if total := m.TotalGoals(); total > highest {
			highest = total
		}
	}
	return highest
}

// LowestTotalScore returns the smallest combined score of any match, 0 when
// there are no matches.
func (t *StatTracker) LowestTotalScore() int {
	if len(t.matches) == 0 {
		return 0
	}
	lowest := t.matches[0].TotalGoals()
	for _, m := range t.matches[1:] {
		if total := m.TotalGoals(); total < lowest {
			lowest = total
		}
	}
	return lowest
}

// MatchCountBySeason maps each season to its number of matches.
func (t *StatTracker) MatchCountBySeason() map[string]int {
	bySeason := groupBy(t.matches, func(m Match) string { return m.Season })
	return reduce(bySeason, func(ms []Match) int { return len(ms) }).toMap()
}

// AverageGoalsPerMatch returns total goals over match count, rounded to 2
// decimals.
func (t *StatTracker) AverageGoalsPerMatch() float64 {
	return averageGoals(t.matches)
}

// AverageGoalsBySeason maps each season to its own rounded goals-per-match.
func (t *StatTracker) AverageGoalsBySeason() map[string]float64 {
	bySeason := groupBy(t.matches, func(m Match) string { return m.Season })
	return reduce(bySeason, averageGoals).toMap()
}

func averageGoals(matches []Match) float64 {
	if len(matches) == 0 {
		return 0
	}
	var goals int
	for _, m := range matches {
		goals += m.TotalGoals()
	}
	return Round2(float64(goals) / float64(len(matches)))
}

// HomeWinPercentage is home-side wins over total matches.
func (t *StatTracker) HomeWinPercentage() float64 {
	return t.outcomeShare(func(p Participation) bool { return p.Side == Home && p.Result == Win })
}

// VisitorWinPercentage is away-side wins over total matches.
func (t *StatTracker) VisitorWinPercentage() float64 {
	return t.outcomeShare(func(p Participation) bool { return p.Side == Away && p.Result == Win })
}

// TiePercentage counts tie records from either side over total matches, so a
// tied match contributes twice.
func (t *StatTracker) TiePercentage() float64 {
	return t.outcomeShare(func(p Participation) bool { return p.Result == Tie })
}

// outcomeShare divides matching participations by match count, not by
// participation count. Each share is rounded on its own.
func (t *StatTracker) outcomeShare(match func(Participation) bool) float64 {
	var count int
	for _, p := range t.participations {
		if match(p) {
			count++
		}
	}
	return Round2(Ratio(float64(count), float64(len(t.matches))))
}

// BestOffense returns the team with the highest goals per participation.
func (t *StatTracker) BestOffense() (string, bool) {
	return t.resolveName(pickMax(t.offenseByTeam()))
}

// WorstOffense returns the team with the lowest goals per participation.
func (t *StatTracker) WorstOffense() (string, bool) {
	return t.resolveName(pickMin(t.offenseByTeam()))
}

func (t *StatTracker) offenseByTeam() *tally[string, float64] {
	byTeam := groupBy(t.participations, func(p Participation) string { return p.TeamID })
	return reduce(byTeam, func(ps []Participation) float64 {
		var goals int
		for _, p := range ps {
			goals += p.Goals
		}
		return Ratio(float64(goals), float64(len(ps)))
	})
}

// HighestScoringVisitor returns the team with the best away goals per match.
func (t *StatTracker) HighestScoringVisitor() (string, bool) {
	return t.resolveName(pickMax(t.scoringBySide(Away)))
}

// LowestScoringVisitor returns the team with the worst away goals per match.
func (t *StatTracker) LowestScoringVisitor() (string, bool) {
	return t.resolveName(pickMin(t.scoringBySide(Away)))
}

// HighestScoringHomeTeam returns the team with the best home goals per match.
func (t *StatTracker) HighestScoringHomeTeam() (string, bool) {
	return t.resolveName(pickMax(t.scoringBySide(Home)))
}

// LowestScoringHomeTeam returns the team with the worst home goals per match.
func (t *StatTracker) LowestScoringHomeTeam() (string, bool) {
	return t.resolveName(pickMin(t.scoringBySide(Home)))
}

// scoringBySide walks matches rather than participations, accumulating goals
// and appearances for the team on the given side.
func (t *StatTracker) scoringBySide(side Side) *tally[string, float64] {
	rates := newTally[string, goalRate]()
	for _, m := range t.matches {
		teamID, goals := m.HomeTeamID, m.HomeGoals
		if side == Away {
			teamID, goals = m.AwayTeamID, m.AwayGoals
		}
		r := rates.get(teamID)
		r.goals += goals
		r.appearances++
		rates.set(teamID, r)
	}

	out := newTally[string, float64]()
	for _, teamID := range rates.order {
		out.set(teamID, rates.get(teamID).value())
	}
	return out
}
