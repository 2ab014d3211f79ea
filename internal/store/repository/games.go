package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/store"
)

const gameColumns = `game_id, season, type, date_time, away_team_id, home_team_id,
	away_goals, home_goals, venue, venue_link`

// GameRepository handles match data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// GetAll returns every match in insertion order
func (r *GameRepository) GetAll(ctx context.Context) ([]league.Match, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT `+gameColumns+` FROM games ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	return scanGames(rows)
}

// GetBySeason returns one season's matches in insertion order
func (r *GameRepository) GetBySeason(ctx context.Context, season string) ([]league.Match, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+gameColumns+` FROM games WHERE season = $1 ORDER BY seq`, season)
	if err != nil {
		return nil, fmt.Errorf("querying games for season %s: %w", season, err)
	}
	return scanGames(rows)
}

// Upsert inserts or updates a match. An update keeps the existing load position.
func (r *GameRepository) Upsert(ctx context.Context, q Querier, m league.Match) error {
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (game_id) DO UPDATE SET
			season = EXCLUDED.season,
			type = EXCLUDED.type,
			date_time = EXCLUDED.date_time,
			away_team_id = EXCLUDED.away_team_id,
			home_team_id = EXCLUDED.home_team_id,
			away_goals = EXCLUDED.away_goals,
			home_goals = EXCLUDED.home_goals,
			venue = EXCLUDED.venue,
			venue_link = EXCLUDED.venue_link
	`
	_, err := q.ExecContext(ctx, query,
		m.MatchID, m.Season, m.Type, m.DateTime, m.AwayTeamID, m.HomeTeamID,
		m.AwayGoals, m.HomeGoals, m.Venue, m.VenueLink,
	)
	if err != nil {
		return fmt.Errorf("upserting game %s: %w", m.MatchID, err)
	}
	return nil
}

func scanGames(rows *sql.Rows) ([]league.Match, error) {
	defer rows.Close()

	var matches []league.Match
	for rows.Next() {
		var m league.Match
		err := rows.Scan(
			&m.MatchID, &m.Season, &m.Type, &m.DateTime, &m.AwayTeamID, &m.HomeTeamID,
			&m.AwayGoals, &m.HomeGoals, &m.Venue, &m.VenueLink,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
