package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/fortuna/stattracker/internal/cache"
	"github.com/fortuna/stattracker/internal/league"
	"github.com/rs/zerolog"
)

// Cache is the subset of the report cache the service needs
type Cache interface {
	GetJSON(ctx context.Context, key string, v interface{}) error
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// Publisher fans computed reports out to downstream consumers
type Publisher interface {
	PublishLeagueReport(ctx context.Context, report interface{}) error
	PublishSeasonReport(ctx context.Context, season string, report interface{}) error
}

// LeagueReport gathers every whole-dataset query. Nil name fields mean the
// query had no applicable data.
type LeagueReport struct {
	Fingerprint            string             `json:"fingerprint"`
	TotalMatches           int                `json:"total_matches"`
	CountOfTeams           int                `json:"count_of_teams"`
	HighestTotalScore      int                `json:"highest_total_score"`
	LowestTotalScore       int                `json:"lowest_total_score"`
	MatchesBySeason        map[string]int     `json:"matches_by_season"`
	AverageGoalsPerMatch   float64            `json:"average_goals_per_match"`
	AverageGoalsBySeason   map[string]float64 `json:"average_goals_by_season"`
	HomeWinPercentage      float64            `json:"home_win_percentage"`
	VisitorWinPercentage   float64            `json:"visitor_win_percentage"`
	TiePercentage          float64            `json:"tie_percentage"`
	BestOffense            *string            `json:"best_offense"`
	WorstOffense           *string            `json:"worst_offense"`
	HighestScoringVisitor  *string            `json:"highest_scoring_visitor"`
	LowestScoringVisitor   *string            `json:"lowest_scoring_visitor"`
	HighestScoringHomeTeam *string            `json:"highest_scoring_home_team"`
	LowestScoringHomeTeam  *string            `json:"lowest_scoring_home_team"`
	FavoriteCoach          string             `json:"favorite_coach"`
	LeastFavoriteCoach     string             `json:"least_favorite_coach"`
}

// SeasonReport gathers every season-scoped query
type SeasonReport struct {
	Season            string         `json:"season"`
	Matches           int            `json:"matches"`
	AverageGoals      float64        `json:"average_goals"`
	MostTackles       *string        `json:"most_tackles"`
	FewestTackles     *string        `json:"fewest_tackles"`
	MostAccurateTeam  *string        `json:"most_accurate_team"`
	LeastAccurateTeam *string        `json:"least_accurate_team"`
	CoachWins         map[string]int `json:"coach_wins"`
	WinningestCoach   *string        `json:"winningest_coach"`
	WorstCoach        *string        `json:"worst_coach"`
}

// Percentages is the outcome split over all matches
type Percentages struct {
	Home    float64 `json:"home_win_percentage"`
	Visitor float64 `json:"visitor_win_percentage"`
	Tie     float64 `json:"tie_percentage"`
}

// ReportService renders tracker queries into cacheable reports
type ReportService struct {
	tracker     *league.StatTracker
	cache       Cache
	cacheTTL    time.Duration
	publisher   Publisher
	fingerprint string
	log         zerolog.Logger
}

// ReportOption configures a ReportService
type ReportOption func(*ReportService)

// WithCache enables report caching
func WithCache(c Cache, ttl time.Duration) ReportOption {
	return func(s *ReportService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithPublisher enables report publishing
func WithPublisher(p Publisher) ReportOption {
	return func(s *ReportService) {
		s.publisher = p
	}
}

// NewReportService creates a new report service
func NewReportService(tracker *league.StatTracker, log zerolog.Logger, opts ...ReportOption) *ReportService {
	s := &ReportService{
		tracker:     tracker,
		fingerprint: Fingerprint(tracker),
		log:         log.With().Str("component", "reports").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tracker returns the underlying tracker
func (s *ReportService) Tracker() *league.StatTracker {
	return s.tracker
}

// Fingerprint identifies the loaded snapshot
func (s *ReportService) Fingerprint() string {
	return s.fingerprint
}

// LeagueReport returns the league-wide report, served from cache when possible.
func (s *ReportService) LeagueReport(ctx context.Context) *LeagueReport {
	key := cache.Key(s.fingerprint, "league")

	var report LeagueReport
	if s.readCache(ctx, key, &report) {
		return &report
	}

	t := s.tracker
	report = LeagueReport{
		Fingerprint:            s.fingerprint,
		TotalMatches:           t.TotalMatchCount(),
		CountOfTeams:           t.CountOfTeams(),
		HighestTotalScore:      t.HighestTotalScore(),
		LowestTotalScore:       t.LowestTotalScore(),
		MatchesBySeason:        t.MatchCountBySeason(),
		AverageGoalsPerMatch:   t.AverageGoalsPerMatch(),
		AverageGoalsBySeason:   t.AverageGoalsBySeason(),
		HomeWinPercentage:      t.HomeWinPercentage(),
		VisitorWinPercentage:   t.VisitorWinPercentage(),
		TiePercentage:          t.TiePercentage(),
		BestOffense:            optional(t.BestOffense()),
		WorstOffense:           optional(t.WorstOffense()),
		HighestScoringVisitor:  optional(t.HighestScoringVisitor()),
		LowestScoringVisitor:   optional(t.LowestScoringVisitor()),
		HighestScoringHomeTeam: optional(t.HighestScoringHomeTeam()),
		LowestScoringHomeTeam:  optional(t.LowestScoringHomeTeam()),
		FavoriteCoach:          t.FavoriteCoach(),
		LeastFavoriteCoach:     t.LeastFavoriteCoach(),
	}

	s.writeCache(ctx, key, &report)
	return &report
}

// SeasonReport returns one season's report. The second value is false when
// the season has no matches.
func (s *ReportService) SeasonReport(ctx context.Context, season string) (*SeasonReport, bool) {
	matches, ok := s.tracker.MatchCountBySeason()[season]
	if !ok {
		return nil, false
	}

	key := cache.Key(s.fingerprint, "season", season)

	var report SeasonReport
	if s.readCache(ctx, key, &report) {
		return &report, true
	}

	t := s.tracker
	report = SeasonReport{
		Season:            season,
		Matches:           matches,
		AverageGoals:      t.AverageGoalsBySeason()[season],
		MostTackles:       optional(t.MostTackles(season)),
		FewestTackles:     optional(t.FewestTackles(season)),
		MostAccurateTeam:  optional(t.MostAccurateTeam(season)),
		LeastAccurateTeam: optional(t.LeastAccurateTeam(season)),
		CoachWins:         t.SeasonWins(season),
		WinningestCoach:   optional(t.WinningestCoach(season)),
		WorstCoach:        optional(t.WorstCoach(season)),
	}

	s.writeCache(ctx, key, &report)
	return &report, true
}

// Percentages returns the home, visitor and tie shares.
func (s *ReportService) Percentages() Percentages {
	return Percentages{
		Home:    s.tracker.HomeWinPercentage(),
		Visitor: s.tracker.VisitorWinPercentage(),
		Tie:     s.tracker.TiePercentage(),
	}
}

// Publish sends the league report and every season report to the publisher.
// Failures are logged; publishing never blocks queries.
func (s *ReportService) Publish(ctx context.Context) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishLeagueReport(ctx, s.LeagueReport(ctx)); err != nil {
		s.log.Warn().Err(err).Msg("publishing league report")
	}

	for _, season := range s.tracker.Seasons() {
		report, ok := s.SeasonReport(ctx, season)
		if !ok {
			continue
		}
		if err := s.publisher.PublishSeasonReport(ctx, season, report); err != nil {
			s.log.Warn().Err(err).Str("season", season).Msg("publishing season report")
		}
	}
	s.log.Info().Int("seasons", len(s.tracker.Seasons())).Msg("reports published")
}

func (s *ReportService) readCache(ctx context.Context, key string, v interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.GetJSON(ctx, key, v)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	return false
}

func (s *ReportService) writeCache(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Fingerprint hashes the tracker's records so cached reports are tied to one
// snapshot.
func Fingerprint(t *league.StatTracker) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	parts := []interface{}{
		t.Matches(),
		t.Franchises(),
		t.Participations(),
		[]string{t.FavoriteCoach(), t.LeastFavoriteCoach()},
	}
	for _, part := range parts {
		if err := enc.Encode(part); err != nil {
			return ""
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func optional(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}
