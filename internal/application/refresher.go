package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wms-platform/sla-service/internal/domain"
	"github.com/wms-platform/sla-service/pkg/logging"
)

// RefresherConfig configures the periodic re-evaluation loop
type RefresherConfig struct {
	// Interval is how often the full order list is re-evaluated
	Interval time.Duration `json:"interval"`
}

// DefaultRefresherConfig returns the default refresher configuration.
// The dashboard refreshes its SLA view once a minute.
func DefaultRefresherConfig() RefresherConfig {
	return RefresherConfig{Interval: time.Minute}
}

// Refresher re-evaluates the order list on a fixed tick so the exported
// gauges and logs track wall-clock SLA drift between reads. Evaluations are
// derived on every read anyway; the tick exists for observability, and to
// flag orders that expired since the last pass.
type Refresher struct {
	service *EvaluationService
	logger  *logging.Logger
	config  RefresherConfig

	mu          sync.Mutex
	running     bool
	stopChan    chan struct{}
	lastExpired int
}

// NewRefresher creates a new Refresher
func NewRefresher(service *EvaluationService, logger *logging.Logger, config RefresherConfig) *Refresher {
	if config.Interval <= 0 {
		config.Interval = DefaultRefresherConfig().Interval
	}
	return &Refresher{
		service:  service,
		logger:   logger,
		config:   config,
		stopChan: make(chan struct{}),
	}
}

// Start begins the periodic re-evaluation loop
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("refresher is already running")
	}
	r.running = true
	r.stopChan = make(chan struct{})
	r.mu.Unlock()

	go r.run(ctx)
	return nil
}

// Stop stops the loop
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		close(r.stopChan)
		r.running = false
	}
}

// IsRunning returns whether the loop is active
func (r *Refresher) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Refresher) run(ctx context.Context) {
	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Stop()
			return
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	start := time.Now()
	counts := r.service.EvaluateAll(ctx)

	expired := counts[domain.SLALevelExpired]
	total := 0
	for _, c := range counts {
		total += c
	}

	r.logger.Evaluation(ctx, "tick", total, expired, time.Since(start))

	r.mu.Lock()
	newlyExpired := expired - r.lastExpired
	r.lastExpired = expired
	r.mu.Unlock()

	if newlyExpired > 0 {
		r.logger.WarnContext(ctx, "Orders expired since last pass",
			"newlyExpired", newlyExpired,
			"totalExpired", expired,
		)
	}
}
