package sim

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/truck-fleet-tracker/internal/metrics"
	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

// Publisher receives one full fleet batch per tick. Subscribers behind it are
// passive observers; they never drive ticks.
type Publisher interface {
	Publish(batch []models.Vehicle)
}

// Scheduler drives simulated time forward for the whole fleet at a fixed
// cadence and hands each tick's snapshot batch to the publisher in one piece,
// so no subscriber ever sees a partially updated fleet.
type Scheduler struct {
	registry  *Registry
	publisher Publisher
	interval  time.Duration
}

// NewScheduler creates a scheduler for the given fleet.
func NewScheduler(registry *Registry, publisher Publisher, interval time.Duration) *Scheduler {
	return &Scheduler{
		registry:  registry,
		publisher: publisher,
		interval:  interval,
	}
}

// Run ticks until the context is cancelled. It is meant to be started once,
// in its own goroutine, for the process lifetime.
func (s *Scheduler) Run(ctx context.Context) {
	log.WithFields(log.Fields{
		"fleet_size": s.registry.Size(),
		"interval":   s.interval,
	}).Info("Starting fleet simulation")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Tick scheduler stopped")
			return
		case <-ticker.C:
			batch := s.registry.UpdateAll()
			metrics.TicksTotal.Inc()
			s.publisher.Publish(batch)
		}
	}
}
