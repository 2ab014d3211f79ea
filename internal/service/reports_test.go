package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fortuna/stattracker/internal/cache"
	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/league/leaguetest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	sets    int
	failGet error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet != nil {
		return c.failGet
	}
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(data, v)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, v interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

type recordingPublisher struct {
	league  int
	seasons []string
	err     error
}

func (p *recordingPublisher) PublishLeagueReport(context.Context, interface{}) error {
	p.league++
	return p.err
}

func (p *recordingPublisher) PublishSeasonReport(_ context.Context, season string, _ interface{}) error {
	p.seasons = append(p.seasons, season)
	return p.err
}

func TestLeagueReport(t *testing.T) {
	svc := NewReportService(leaguetest.Tracker(), zerolog.Nop())

	report := svc.LeagueReport(context.Background())
	assert.Equal(t, 5, report.TotalMatches)
	assert.Equal(t, 4, report.CountOfTeams)
	assert.Equal(t, 7, report.HighestTotalScore)
	assert.Equal(t, 0, report.LowestTotalScore)
	assert.Equal(t, map[string]int{"20122013": 3, "20132014": 2}, report.MatchesBySeason)
	assert.Equal(t, 4.0, report.AverageGoalsPerMatch)
	assert.Equal(t, 0.4, report.TiePercentage)
	require.NotNil(t, report.BestOffense)
	assert.Equal(t, "FC Dallas", *report.BestOffense)
	require.NotNil(t, report.LowestScoringVisitor)
	assert.Equal(t, "Atlanta United", *report.LowestScoringVisitor)
	assert.Equal(t, league.DefaultFavoriteCoach, report.FavoriteCoach)
	assert.Equal(t, svc.Fingerprint(), report.Fingerprint)
}

func TestLeagueReportAbsentAsNull(t *testing.T) {
	svc := NewReportService(league.New(nil, nil, nil), zerolog.Nop())

	report := svc.LeagueReport(context.Background())
	assert.Nil(t, report.BestOffense)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"best_offense":null`)
}

func TestSeasonReport(t *testing.T) {
	svc := NewReportService(leaguetest.Tracker(), zerolog.Nop())

	report, ok := svc.SeasonReport(context.Background(), "20122013")
	require.True(t, ok)
	assert.Equal(t, 3, report.Matches)
	assert.Equal(t, 4.33, report.AverageGoals)
	assert.Equal(t, "FC Dallas", *report.MostTackles)
	assert.Equal(t, "Houston Dynamo", *report.FewestTackles)
	assert.Equal(t, "FC Dallas", *report.MostAccurateTeam)
	assert.Equal(t, "Claude Julien", *report.WinningestCoach)
	assert.Equal(t, "John Tortorella", *report.WorstCoach)
	assert.Equal(t, 3, report.CoachWins["Claude Julien"])

	_, ok = svc.SeasonReport(context.Background(), "19992000")
	assert.False(t, ok)
}

func TestReportsAreCached(t *testing.T) {
	mc := newMemoryCache()
	svc := NewReportService(leaguetest.Tracker(), zerolog.Nop(), WithCache(mc, time.Minute))
	ctx := context.Background()

	first := svc.LeagueReport(ctx)
	second := svc.LeagueReport(ctx)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, mc.sets)
	assert.Equal(t, 2, mc.gets)
	assert.Contains(t, mc.entries, cache.Key(svc.Fingerprint(), "league"))

	_, ok := svc.SeasonReport(ctx, "20132014")
	require.True(t, ok)
	assert.Contains(t, mc.entries, cache.Key(svc.Fingerprint(), "season", "20132014"))
}

func TestCacheFailureFallsBackToCompute(t *testing.T) {
	mc := newMemoryCache()
	mc.failGet = errors.New("connection refused")
	svc := NewReportService(leaguetest.Tracker(), zerolog.Nop(), WithCache(mc, time.Minute))

	report := svc.LeagueReport(context.Background())
	assert.Equal(t, 5, report.TotalMatches)
}

func TestPublish(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewReportService(leaguetest.Tracker(), zerolog.Nop(), WithPublisher(pub))

	svc.Publish(context.Background())
	assert.Equal(t, 1, pub.league)
	assert.Equal(t, []string{"20122013", "20132014"}, pub.seasons)
}

func TestPublishErrorsAreSwallowed(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("stream down")}
	svc := NewReportService(leaguetest.Tracker(), zerolog.Nop(), WithPublisher(pub))

	assert.NotPanics(t, func() { svc.Publish(context.Background()) })
	assert.Len(t, pub.seasons, 2)
}

func TestPercentages(t *testing.T) {
	svc := NewReportService(leaguetest.Tracker(), zerolog.Nop())
	assert.Equal(t, Percentages{Home: 0.4, Visitor: 0.4, Tie: 0.4}, svc.Percentages())
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(leaguetest.Tracker())
	b := Fingerprint(leaguetest.Tracker())
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)

	matches := leaguetest.Matches()
	matches[0].HomeGoals++
	changed := Fingerprint(league.New(matches, leaguetest.Franchises(), leaguetest.Participations()))
	assert.NotEqual(t, a, changed)

	opinions := Fingerprint(leaguetest.Tracker(league.WithOpinions("Mike Babcock", "")))
	assert.NotEqual(t, a, opinions)
}
