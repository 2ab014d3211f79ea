// Package csvload reads the games, teams and game_teams tables into typed
// league records.
package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/fortuna/stattracker/internal/league"
)

// ErrMissingColumn is returned when a required header is absent
var ErrMissingColumn = errors.New("missing column")

// Locations points at the three source files
type Locations struct {
	Games     string
	Teams     string
	GameTeams string
}

// Load reads all three files.
func Load(loc Locations) (*league.Snapshot, error) {
	snap := &league.Snapshot{}
	var err error

	if snap.Matches, err = readFile(loc.Games, ReadMatches); err != nil {
		return nil, fmt.Errorf("loading games: %w", err)
	}
	if snap.Franchises, err = readFile(loc.Teams, ReadFranchises); err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	if snap.Participations, err = readFile(loc.GameTeams, ReadParticipations); err != nil {
		return nil, fmt.Errorf("loading game teams: %w", err)
	}
	return snap, nil
}

// FromCSV loads the files and returns a ready tracker.
func FromCSV(loc Locations, opts ...league.Option) (*league.StatTracker, error) {
	snap, err := Load(loc)
	if err != nil {
		return nil, err
	}
	return snap.Tracker(opts...), nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

// ReadMatches parses a games table.
func ReadMatches(r io.Reader) ([]league.Match, error) {
	var out []league.Match
	err := eachRow(r, []string{"gameid", "season", "awayteamid", "hometeamid", "awaygoals", "homegoals"}, func(rec *row) error {
		m := league.Match{
			MatchID:    rec.str("gameid"),
			Season:     rec.str("season"),
			Type:       rec.str("type"),
			DateTime:   rec.str("datetime"),
			AwayTeamID: rec.str("awayteamid"),
			HomeTeamID: rec.str("hometeamid"),
			AwayGoals:  rec.num("awaygoals"),
			HomeGoals:  rec.num("homegoals"),
			Venue:      rec.str("venue"),
			VenueLink:  rec.str("venuelink"),
		}
		if rec.err != nil {
			return rec.err
		}
		out = append(out, m)
		return nil
	})
	return out, err
}

// ReadFranchises parses a teams table.
func ReadFranchises(r io.Reader) ([]league.Franchise, error) {
	var out []league.Franchise
	err := eachRow(r, []string{"teamid", "teamname"}, func(rec *row) error {
		out = append(out, league.Franchise{
			TeamID:       rec.str("teamid"),
			FranchiseID:  rec.str("franchiseid"),
			TeamName:     rec.str("teamname"),
			Abbreviation: rec.str("abbreviation"),
			Stadium:      rec.str("stadium"),
			Link:         rec.str("link"),
		})
		return nil
	})
	return out, err
}

// ReadParticipations parses a game_teams table.
func ReadParticipations(r io.Reader) ([]league.Participation, error) {
	var out []league.Participation
	err := eachRow(r, []string{"gameid", "teamid", "hoa", "result"}, func(rec *row) error {
		side, err := league.ParseSide(rec.str("hoa"))
		if err != nil {
			return err
		}
		result, err := league.ParseResult(rec.str("result"))
		if err != nil {
			return err
		}

		p := league.Participation{
			MatchID:                rec.str("gameid"),
			TeamID:                 rec.str("teamid"),
			Side:                   side,
			Result:                 result,
			SettledIn:              rec.str("settledin"),
			HeadCoach:              rec.str("headcoach"),
			Goals:                  rec.num("goals"),
			Shots:                  rec.num("shots"),
			Tackles:                rec.num("tackles"),
			PIM:                    rec.num("pim"),
			PowerPlayOpportunities: rec.num("powerplayopportunities"),
			PowerPlayGoals:         rec.num("powerplaygoals"),
			FaceOffWinPercentage:   rec.dec("faceoffwinpercentage"),
			Giveaways:              rec.num("giveaways"),
			Takeaways:              rec.num("takeaways"),
		}
		if rec.err != nil {
			return rec.err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// eachRow reads the header, checks required columns and calls fn per data row.
func eachRow(r io.Reader, required []string, fn func(*row) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}
		if err := fn(&row{index: index, fields: record}); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

// normalizeHeader folds "away_team_id", "awayTeamId" and "Away Team ID" to
// the same key.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	var b strings.Builder
	for _, r := range h {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// row gives typed access to one record. The first conversion error sticks in
// err so callers check once per row.
type row struct {
	index  map[string]int
	fields []string
	err    error
}

func (r *row) str(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r *row) num(col string) int {
	raw := r.str(col)
	if raw == "" || r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.err = fmt.Errorf("column %s: %w", col, err)
		return 0
	}
	return n
}

func (r *row) dec(col string) float64 {
	raw := r.str(col)
	if raw == "" || r.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.err = fmt.Errorf("column %s: %w", col, err)
		return 0
	}
	return f
}
