package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fortuna/stattracker/internal/service"
	"github.com/gorilla/mux"
)

// Pinger reports whether a backing service is reachable
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	reports     *service.ReportService
	gameService *service.GameService
	teamService *service.TeamService
	redis       Pinger
}

// NewHandler creates a new handler
func NewHandler(reports *service.ReportService) *Handler {
	return &Handler{
		reports:     reports,
		gameService: service.NewGameService(reports.Tracker()),
		teamService: service.NewTeamService(reports.Tracker()),
	}
}

// HealthCheck handles health check requests. Redis is checked only when
// configured; a failed ping answers 503.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]string{
		"status":      "healthy",
		"service":     "stattracker",
		"fingerprint": h.reports.Fingerprint(),
	}

	if h.redis != nil {
		if err := h.redis.HealthCheck(r.Context()); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["redis"] = "unhealthy"
		} else {
			body["redis"] = "healthy"
		}
	}

	respondJSON(w, status, body)
}

// GetLeagueReport returns every league-wide statistic
func (h *Handler) GetLeagueReport(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.reports.LeagueReport(r.Context()))
}

// GetPercentages returns the home, visitor and tie shares
func (h *Handler) GetPercentages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.reports.Percentages())
}

// GetOpinions returns the curator's coach picks
func (h *Handler) GetOpinions(w http.ResponseWriter, r *http.Request) {
	tracker := h.reports.Tracker()
	respondJSON(w, http.StatusOK, map[string]string{
		"favorite_coach":       tracker.FavoriteCoach(),
		"least_favorite_coach": tracker.LeastFavoriteCoach(),
	})
}

// GetSeasons lists seasons with their match counts
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	tracker := h.reports.Tracker()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"seasons":           tracker.Seasons(),
		"matches_by_season": tracker.MatchCountBySeason(),
	})
}

// GetSeasonReport returns every statistic for one season
func (h *Handler) GetSeasonReport(w http.ResponseWriter, r *http.Request) {
	season := mux.Vars(r)["season"]

	report, ok := h.reports.SeasonReport(r.Context(), season)
	if !ok {
		respondError(w, http.StatusNotFound, "Season not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// GetSeasonCoaches returns per-coach wins for one season
func (h *Handler) GetSeasonCoaches(w http.ResponseWriter, r *http.Request) {
	season := mux.Vars(r)["season"]

	report, ok := h.reports.SeasonReport(r.Context(), season)
	if !ok {
		respondError(w, http.StatusNotFound, "Season not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":           season,
		"wins":             report.CoachWins,
		"winningest_coach": report.WinningestCoach,
		"worst_coach":      report.WorstCoach,
	})
}

// GetGame returns a specific game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetGame(mux.Vars(r)["gameID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, game)
}

// GetTeams returns all teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{"teams": h.teamService.GetTeams()})
}

// GetTeam returns a specific team with its record
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(mux.Vars(r)["teamID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

// GetTeamSchedule returns a team's games, optionally for one season
func (h *Handler) GetTeamSchedule(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamID"]
	season := r.URL.Query().Get("season")

	schedule, err := h.gameService.GetTeamSchedule(teamID, season)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team_id": teamID,
		"season":  season,
		"games":   schedule,
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		respondError(w, http.StatusNotFound, "Game not found", err)
	case errors.Is(err, service.ErrTeamNotFound):
		respondError(w, http.StatusNotFound, "Team not found", err)
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
