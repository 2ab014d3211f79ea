package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/stattracker/internal/api/rest"
	"github.com/fortuna/stattracker/internal/api/websocket"
	"github.com/fortuna/stattracker/internal/cache"
	"github.com/fortuna/stattracker/internal/config"
	"github.com/fortuna/stattracker/internal/ingest/csvload"
	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/publisher"
	"github.com/fortuna/stattracker/internal/reconciliation"
	"github.com/fortuna/stattracker/internal/scheduler"
	"github.com/fortuna/stattracker/internal/service"
	"github.com/fortuna/stattracker/internal/store"
	"github.com/fortuna/stattracker/internal/store/repository"
	"github.com/fortuna/stattracker/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	serviceName    = "stattracker"
	serviceVersion = "1.0.0"

	redisMaxRetries = 10
	redisRetryDelay = 2 * time.Second
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	log.Info().Str("version", serviceVersion).Msgf("starting %s", serviceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snap, err := loadSnapshot(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load snapshot")
	}

	if check := reconciliation.Check(snap); !check.Clean() {
		for _, issue := range check.Issues {
			log.Warn().Str("kind", string(issue.Kind)).Str("game_id", issue.MatchID).Str("team_id", issue.TeamID).Msg(issue.Detail)
		}
		log.Warn().Int("issues", len(check.Issues)).Msg("snapshot has inconsistent records")
	}

	tracker := snap.Tracker(opinions(cfg)...)
	log.Info().
		Int("matches", tracker.TotalMatchCount()).
		Int("teams", tracker.CountOfTeams()).
		Int("seasons", len(tracker.Seasons())).
		Msg("snapshot loaded")

	var (
		opts     []service.ReportOption
		restOpts []rest.ServerOption
	)
	if cfg.RedisURL != "" {
		redisCache, err := retry(log, "redis cache", func() (*cache.RedisCache, error) {
			return cache.NewRedisCache(cfg.RedisURL)
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisCache.Close()

		redisPublisher := publisher.NewRedisPublisherFromClient(redisCache.Client())

		ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
		opts = append(opts, service.WithCache(redisCache, ttl), service.WithPublisher(redisPublisher))
		restOpts = append(restOpts, rest.WithRedisCheck(redisCache))
		log.Info().Dur("ttl", ttl).Msg("redis cache and publisher enabled")
	} else {
		log.Info().Msg("REDIS_URL not set, caching and publishing disabled")
	}

	reports := service.NewReportService(tracker, log, opts...)
	go reports.Publish(ctx)

	restServer := rest.NewServer(cfg.RESTPort, reports, log, restOpts...)
	go func() {
		log.Info().Str("port", cfg.RESTPort).Msg("REST API server listening")
		if err := restServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("REST server error")
		}
	}()

	wsServer := websocket.NewServer(reports, log)
	go func() {
		if err := wsServer.Start(cfg.WSPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("WebSocket server error")
		}
	}()

	var sched *scheduler.Orchestrator
	if cfg.RefreshSeconds > 0 {
		schedCfg := scheduler.DefaultConfig()
		schedCfg.RefreshInterval = time.Duration(cfg.RefreshSeconds) * time.Second
		sched = scheduler.NewOrchestrator(reports, wsServer, schedCfg, log)
		go sched.Start(ctx)
	}

	log.Info().
		Str("rest", fmt.Sprintf("http://0.0.0.0:%s", cfg.RESTPort)).
		Str("ws", fmt.Sprintf("ws://0.0.0.0:%s/ws/reports", cfg.WSPort)).
		Str("fingerprint", reports.Fingerprint()).
		Msg("started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	cancel()
	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("REST API server shutdown error")
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("WebSocket server shutdown error")
	}

	log.Info().Msgf("%s stopped", serviceName)
}

// loadSnapshot reads the three CSVs when configured, otherwise Postgres.
func loadSnapshot(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*league.Snapshot, error) {
	if cfg.UseCSV() {
		log.Info().Str("games", cfg.GamesCSV).Msg("loading snapshot from CSV")
		return csvload.Load(csvload.Locations{
			Games:     cfg.GamesCSV,
			Teams:     cfg.TeamsCSV,
			GameTeams: cfg.GameTeamsCSV,
		})
	}

	log.Info().Msg("loading snapshot from Postgres")
	db, err := store.NewDatabase(cfg.DatabaseDSN, log)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.RunMigrations(ctx); err != nil {
		return nil, err
	}
	return repository.NewSnapshotRepository(db).Load(ctx)
}

func opinions(cfg *config.Config) []league.Option {
	if cfg.FavoriteCoach == "" && cfg.LeastFavoriteCoach == "" {
		return nil
	}
	favorite, least := cfg.FavoriteCoach, cfg.LeastFavoriteCoach
	if favorite == "" {
		favorite = league.DefaultFavoriteCoach
	}
	if least == "" {
		least = league.DefaultLeastFavoriteCoach
	}
	return []league.Option{league.WithOpinions(favorite, least)}
}

func retry[T any](log zerolog.Logger, what string, connect func() (T, error)) (T, error) {
	var (
		v   T
		err error
	)
	for i := 0; i < redisMaxRetries; i++ {
		v, err = connect()
		if err == nil {
			return v, nil
		}
		if i < redisMaxRetries-1 {
			log.Warn().Err(err).Int("attempt", i+1).Dur("retry_in", redisRetryDelay).Msgf("%s connection failed", what)
			time.Sleep(redisRetryDelay)
		}
	}
	return v, fmt.Errorf("%s: giving up after %d attempts: %w", what, redisMaxRetries, err)
}
