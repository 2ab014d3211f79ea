package main

import (
	"context"
	"flag"
	"time"

	"github.com/fortuna/stattracker/internal/config"
	"github.com/fortuna/stattracker/internal/ingest/csvload"
	"github.com/fortuna/stattracker/internal/reconciliation"
	"github.com/fortuna/stattracker/internal/store"
	"github.com/fortuna/stattracker/internal/store/repository"
	"github.com/fortuna/stattracker/pkg/logger"
)

const (
	appName    = "stattracker-import"
	appVersion = "1.0.0"
)

func main() {
	cfg := config.Load()

	var (
		dsn       = flag.String("dsn", cfg.DatabaseDSN, "Postgres DSN")
		games     = flag.String("games", cfg.GamesCSV, "games CSV path")
		teams     = flag.String("teams", cfg.TeamsCSV, "teams CSV path")
		gameTeams = flag.String("game-teams", cfg.GameTeamsCSV, "game_teams CSV path")
		dryRun    = flag.Bool("dry-run", false, "parse only, do not write to the database")
		strict    = flag.Bool("strict", false, "refuse to import inconsistent records")
	)
	flag.Parse()

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: true})
	log.Info().Msgf("=== %s v%s ===", appName, appVersion)

	if *games == "" || *teams == "" || *gameTeams == "" {
		log.Fatal().Msg("specify --games, --teams and --game-teams")
	}

	start := time.Now()
	snap, err := csvload.Load(csvload.Locations{Games: *games, Teams: *teams, GameTeams: *gameTeams})
	if err != nil {
		log.Fatal().Err(err).Msg("read CSV")
	}
	log.Info().
		Int("games", len(snap.Matches)).
		Int("teams", len(snap.Franchises)).
		Int("game_teams", len(snap.Participations)).
		Msg("parsed CSV")

	check := reconciliation.Check(snap)
	for _, issue := range check.Issues {
		log.Warn().Msg(issue.String())
	}
	if !check.Clean() && *strict {
		log.Fatal().Int("issues", len(check.Issues)).Msg("records are inconsistent, nothing written")
	}

	if *dryRun {
		log.Info().Msg("dry run, nothing written")
		return
	}

	ctx := context.Background()

	db, err := store.NewDatabase(*dsn, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer db.Close()

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	if err := repository.NewSnapshotRepository(db).Save(ctx, snap); err != nil {
		log.Fatal().Err(err).Msg("save snapshot")
	}

	log.Info().Dur("took", time.Since(start)).Msg("import completed")
}
