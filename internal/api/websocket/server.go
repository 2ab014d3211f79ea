package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fortuna/stattracker/internal/service"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message types pushed to subscribers
const (
	TypeLeagueReport = "league_report"
	TypeSeasonReport = "season_report"
)

// Envelope wraps every pushed payload
type Envelope struct {
	Type string          `json:"type"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data"`
}

// Server represents the WebSocket server
type Server struct {
	server  *http.Server
	hub     *Hub
	reports *service.ReportService
	log     zerolog.Logger
}

// NewServer creates a new WebSocket server and starts its hub
func NewServer(reports *service.ReportService, log zerolog.Logger) *Server {
	log = log.With().Str("component", "websocket").Logger()
	hub := NewHub(log)
	go hub.Run()

	return &Server{
		hub:     hub,
		reports: reports,
		log:     log,
	}
}

// Handler returns the websocket routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/reports", s.handleReports)
	mux.HandleFunc("/ws/health", s.handleHealth)
	return mux
}

// Start starts the WebSocket server
func (s *Server) Start(port string) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info().Str("port", port).Msg("websocket server listening")
	return s.server.ListenAndServe()
}

// handleReports subscribes a client and sends the current league report
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to upgrade connection")
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	initial, err := encode(TypeLeagueReport, s.reports.LeagueReport(r.Context()))
	if err != nil {
		s.log.Error().Err(err).Msg("encoding league report")
		conn.Close()
		return
	}
	client.send <- initial

	select {
	case s.hub.register <- client:
	case <-s.hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "healthy",
		"clients": s.hub.ClientCount(),
	})
}

// Broadcast pushes a typed payload to every connected client
func (s *Server) Broadcast(msgType string, payload interface{}) error {
	message, err := encode(msgType, payload)
	if err != nil {
		return err
	}
	s.hub.Broadcast(message)
	return nil
}

// BroadcastReports pushes the league report and every season report
func (s *Server) BroadcastReports(ctx context.Context) error {
	if err := s.Broadcast(TypeLeagueReport, s.reports.LeagueReport(ctx)); err != nil {
		return err
	}
	for _, season := range s.reports.Tracker().Seasons() {
		report, ok := s.reports.SeasonReport(ctx, season)
		if !ok {
			continue
		}
		if err := s.Broadcast(TypeSeasonReport, report); err != nil {
			return err
		}
	}
	return nil
}

// ClientCount returns the number of subscribers
func (s *Server) ClientCount() int {
	return s.hub.ClientCount()
}

// Shutdown disconnects clients and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Stop()
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func encode(msgType string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", msgType, err)
	}
	return json.Marshal(Envelope{Type: msgType, At: time.Now().UTC(), Data: data})
}
