package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/store"
)

// SnapshotRepository reads and writes a whole league snapshot
type SnapshotRepository struct {
	db        *store.Database
	games     *GameRepository
	teams     *TeamRepository
	gameTeams *GameTeamRepository
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *store.Database) *SnapshotRepository {
	return &SnapshotRepository{
		db:        db,
		games:     NewGameRepository(db),
		teams:     NewTeamRepository(db),
		gameTeams: NewGameTeamRepository(db),
	}
}

// Save replaces the stored snapshot in one transaction. Slice order becomes
// load order.
func (r *SnapshotRepository) Save(ctx context.Context, snap *league.Snapshot) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `TRUNCATE games, teams, game_teams RESTART IDENTITY`); err != nil {
			return fmt.Errorf("clearing snapshot: %w", err)
		}
		for _, f := range snap.Franchises {
			if err := r.teams.Upsert(ctx, tx, f); err != nil {
				return err
			}
		}
		for _, m := range snap.Matches {
			if err := r.games.Upsert(ctx, tx, m); err != nil {
				return err
			}
		}
		for _, p := range snap.Participations {
			if err := r.gameTeams.Upsert(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load reads the stored snapshot back in load order.
func (r *SnapshotRepository) Load(ctx context.Context) (*league.Snapshot, error) {
	matches, err := r.games.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading games: %w", err)
	}
	franchises, err := r.teams.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	participations, err := r.gameTeams.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading game teams: %w", err)
	}

	return &league.Snapshot{
		Matches:        matches,
		Franchises:     franchises,
		Participations: participations,
	}, nil
}
