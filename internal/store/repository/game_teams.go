package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/stattracker/internal/league"
	"github.com/fortuna/stattracker/internal/store"
)

// GameTeamRepository handles per-match team box scores
type GameTeamRepository struct {
	db *store.Database
}

// NewGameTeamRepository creates a new game team repository
func NewGameTeamRepository(db *store.Database) *GameTeamRepository {
	return &GameTeamRepository{db: db}
}

// GetAll returns every participation in insertion order
func (r *GameTeamRepository) GetAll(ctx context.Context) ([]league.Participation, error) {
	query := `
		SELECT game_id, team_id, hoa, result, settled_in, head_coach, goals, shots,
			tackles, pim, power_play_opportunities, power_play_goals,
			face_off_win_percentage, giveaways, takeaways
		FROM game_teams
		ORDER BY seq
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying game teams: %w", err)
	}
	defer rows.Close()

	var out []league.Participation
	for rows.Next() {
		var p league.Participation
		var hoa, result string
		err := rows.Scan(
			&p.MatchID, &p.TeamID, &hoa, &result, &p.SettledIn, &p.HeadCoach, &p.Goals, &p.Shots,
			&p.Tackles, &p.PIM, &p.PowerPlayOpportunities, &p.PowerPlayGoals,
			&p.FaceOffWinPercentage, &p.Giveaways, &p.Takeaways,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game team: %w", err)
		}
		if p.Side, err = league.ParseSide(hoa); err != nil {
			return nil, fmt.Errorf("game %s team %s: %w", p.MatchID, p.TeamID, err)
		}
		if p.Result, err = league.ParseResult(result); err != nil {
			return nil, fmt.Errorf("game %s team %s: %w", p.MatchID, p.TeamID, err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// Upsert inserts or updates one participation
func (r *GameTeamRepository) Upsert(ctx context.Context, q Querier, p league.Participation) error {
	query := `
		INSERT INTO game_teams (game_id, team_id, hoa, result, settled_in, head_coach,
			goals, shots, tackles, pim, power_play_opportunities, power_play_goals,
			face_off_win_percentage, giveaways, takeaways)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (game_id, team_id, hoa) DO UPDATE SET
			result = EXCLUDED.result,
			settled_in = EXCLUDED.settled_in,
			head_coach = EXCLUDED.head_coach,
			goals = EXCLUDED.goals,
			shots = EXCLUDED.shots,
			tackles = EXCLUDED.tackles,
			pim = EXCLUDED.pim,
			power_play_opportunities = EXCLUDED.power_play_opportunities,
			power_play_goals = EXCLUDED.power_play_goals,
			face_off_win_percentage = EXCLUDED.face_off_win_percentage,
			giveaways = EXCLUDED.giveaways,
			takeaways = EXCLUDED.takeaways
	`
	_, err := q.ExecContext(ctx, query,
		p.MatchID, p.TeamID, p.Side.String(), p.Result.String(), p.SettledIn, p.HeadCoach,
		p.Goals, p.Shots, p.Tackles, p.PIM, p.PowerPlayOpportunities, p.PowerPlayGoals,
		p.FaceOffWinPercentage, p.Giveaways, p.Takeaways,
	)
	if err != nil {
		return fmt.Errorf("upserting game team %s/%s: %w", p.MatchID, p.TeamID, err)
	}
	return nil
}
