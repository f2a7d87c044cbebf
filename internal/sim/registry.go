package sim

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

// ErrVehicleNotFound is returned for lookups by unknown vehicle id.
var ErrVehicleNotFound = errors.New("vehicle not found")

// Registry owns the fixed set of simulators, keyed by vehicle id. The fleet
// is created once at startup and never resized. The scheduler is the single
// writer; query handlers read concurrently under the shared lock, so they
// never observe a half-updated vehicle.
type Registry struct {
	mu   sync.RWMutex
	sims []*Simulator // insertion order = id order
	byID map[int]*Simulator
}

// NewRegistry creates size vehicles with ids 0..size-1, each with its own
// seeded random source.
func NewRegistry(size int, tick time.Duration) *Registry {
	r := &Registry{
		sims: make([]*Simulator, 0, size),
		byID: make(map[int]*Simulator, size),
	}
	for id := 0; id < size; id++ {
		rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
		s := NewSimulator(id, tick, rng)
		r.sims = append(r.sims, s)
		r.byID[id] = s
	}
	return r
}

// Size returns the fleet size.
func (r *Registry) Size() int {
	return len(r.sims)
}

// UpdateAll advances every vehicle by one tick, in id order, and returns the
// resulting snapshots as one consistent batch. A panicking vehicle is logged
// and contributes its last known state instead of aborting the tick.
func (r *Registry) UpdateAll() []models.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make([]models.Vehicle, 0, len(r.sims))
	for _, s := range r.sims {
		batch = append(batch, updateOne(s))
	}
	return batch
}

func updateOne(s *Simulator) (snap models.Vehicle) {
	defer func() {
		if rec := recover(); rec != nil {
			log.WithFields(log.Fields{
				"vehicle_id": s.ID(),
				"panic":      rec,
			}).Error("Vehicle update failed, keeping last known state")
			snap = s.Snapshot()
		}
	}()
	return s.Update()
}

// Snapshots returns the current state of the whole fleet, in id order.
func (r *Registry) Snapshots() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Vehicle, 0, len(r.sims))
	for _, s := range r.sims {
		out = append(out, s.Snapshot())
	}
	return out
}

// Snapshot returns the current state of one vehicle, or ErrVehicleNotFound.
func (r *Registry) Snapshot(id int) (models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	return s.Snapshot(), nil
}

// Stats aggregates the fleet on demand, always from current simulator state.
func (r *Registry) Stats() models.Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.Stats{TotalTrucks: len(r.sims)}
	for _, s := range r.sims {
		snap := s.Snapshot()
		if snap.Status == models.StatusOnRoute {
			stats.ActiveRoutes++
		}
		stats.GoodsInTransit += snap.Goods.Quantity
		stats.TotalDistance += snap.DistanceCovered
	}
	return stats
}
