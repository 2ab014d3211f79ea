package league

// Snapshot is one loaded data set in source order, as produced by a loader
// or read back from storage.
type Snapshot struct {
	Matches        []Match
	Franchises     []Franchise
	Participations []Participation
}

// Tracker builds a StatTracker over the snapshot.
func (s *Snapshot) Tracker(opts ...Option) *StatTracker {
	return New(s.Matches, s.Franchises, s.Participations, opts...)
}
