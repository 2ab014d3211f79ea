package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/store"
)

// ErrTeamNotFound is returned by GetByID for an unknown team
var ErrTeamNotFound = errors.New("team not found")

// TeamRepository handles franchise data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns every team in insertion order
func (r *TeamRepository) GetAll(ctx context.Context) ([]league.Franchise, error) {
	query := `
		SELECT team_id, franchise_id, team_name, abbreviation, stadium, link
		FROM teams
		ORDER BY seq
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []league.Franchise
	for rows.Next() {
		var f league.Franchise
		if err := rows.Scan(&f.TeamID, &f.FranchiseID, &f.TeamName, &f.Abbreviation, &f.Stadium, &f.Link); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, f)
	}

	return teams, rows.Err()
}

// GetByID finds a team by its team id
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (league.Franchise, error) {
	query := `
		SELECT team_id, franchise_id, team_name, abbreviation, stadium, link
		FROM teams
		WHERE team_id = $1
	`

	var f league.Franchise
	err := r.db.DB().QueryRowContext(ctx, query, teamID).Scan(
		&f.TeamID, &f.FranchiseID, &f.TeamName, &f.Abbreviation, &f.Stadium, &f.Link,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return league.Franchise{}, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}
	if err != nil {
		return league.Franchise{}, fmt.Errorf("querying team: %w", err)
	}
	return f, nil
}

// Upsert inserts or updates a team
func (r *TeamRepository) Upsert(ctx context.Context, q Querier, f league.Franchise) error {
	query := `
		INSERT INTO teams (team_id, franchise_id, team_name, abbreviation, stadium, link)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (team_id) DO UPDATE SET
			franchise_id = EXCLUDED.franchise_id,
			team_name = EXCLUDED.team_name,
			abbreviation = EXCLUDED.abbreviation,
			stadium = EXCLUDED.stadium,
			link = EXCLUDED.link
	`
	_, err := q.ExecContext(ctx, query, f.TeamID, f.FranchiseID, f.TeamName, f.Abbreviation, f.Stadium, f.Link)
	if err != nil {
		return fmt.Errorf("upserting team %s: %w", f.TeamID, err)
	}
	return nil
}
