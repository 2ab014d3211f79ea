package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ReportPublisher pushes every computed report to the stream consumers
type ReportPublisher interface {
	Publish(ctx context.Context)
}

// ReportBroadcaster pushes every computed report to connected clients
type ReportBroadcaster interface {
	BroadcastReports(ctx context.Context) error
}

// Config holds scheduler configuration
type Config struct {
	RefreshInterval time.Duration // Default: 5m
	MaxRetries      int           // Default: 3
	RetryDelay      time.Duration // Default: 5s
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		RefreshInterval: 5 * time.Minute,
		MaxRetries:      3,
		RetryDelay:      5 * time.Second,
	}
}

// Orchestrator periodically republishes and rebroadcasts the loaded
// snapshot's reports so late subscribers catch up.
type Orchestrator struct {
	publisher   ReportPublisher
	broadcaster ReportBroadcaster
	config      *Config
	log         zerolog.Logger
	cancel      context.CancelFunc

	mu       sync.Mutex
	runs     int
	failures int
	lastRun  time.Time
}

// NewOrchestrator creates a new scheduler orchestrator; either collaborator may be nil
func NewOrchestrator(publisher ReportPublisher, broadcaster ReportBroadcaster, config *Config, log zerolog.Logger) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}

	return &Orchestrator{
		publisher:   publisher,
		broadcaster: broadcaster,
		config:      config,
		log:         log.With().Str("component", "scheduler").Logger(),
	}
}

// Start runs the refresh loop until ctx is cancelled or Stop is called
func (o *Orchestrator) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	o.mu.Lock()
	o.cancel = cancel
	o.mu.Unlock()

	o.log.Info().Dur("interval", o.config.RefreshInterval).Msg("report refresh started")

	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.log.Info().Msg("report refresh stopped")
			return
		case <-ticker.C:
			o.refresh(ctx)
		}
	}
}

// refresh publishes, then broadcasts with retry
func (o *Orchestrator) refresh(ctx context.Context) {
	start := time.Now()

	if o.publisher != nil {
		o.publisher.Publish(ctx)
	}

	var err error
	if o.broadcaster != nil {
		for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
			if err = o.broadcaster.BroadcastReports(ctx); err == nil {
				break
			}
			o.log.Warn().Err(err).Int("attempt", attempt).Int("max", o.config.MaxRetries).Msg("broadcast failed")

			if attempt < o.config.MaxRetries {
				select {
				case <-ctx.Done():
					return
				case <-time.After(o.config.RetryDelay):
				}
			}
		}
	}

	o.mu.Lock()
	o.runs++
	o.lastRun = start
	if err != nil {
		o.failures++
	}
	o.mu.Unlock()

	o.log.Debug().Dur("took", time.Since(start)).Msg("reports refreshed")
}

// Stop gracefully stops the scheduler
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
	}
}

// GetStatus returns current scheduler status
func (o *Orchestrator) GetStatus() map[string]interface{} {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := map[string]interface{}{
		"refresh_interval": o.config.RefreshInterval.String(),
		"runs":             o.runs,
		"failures":         o.failures,
	}
	if !o.lastRun.IsZero() {
		status["last_run"] = o.lastRun.UTC().Format(time.RFC3339)
	}
	return status
}
