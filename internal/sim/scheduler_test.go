package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

type capturePublisher struct {
	mu      sync.Mutex
	batches [][]models.Vehicle
}

func (p *capturePublisher) Publish(batch []models.Vehicle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, batch)
}

func (p *capturePublisher) all() [][]models.Vehicle {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]models.Vehicle, len(p.batches))
	copy(out, p.batches)
	return out
}

func TestScheduler_PublishesFullBatchesUntilCancelled(t *testing.T) {
	reg := NewRegistry(5, 10*time.Millisecond)
	pub := &capturePublisher{}
	sched := NewScheduler(reg, pub, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	sched.Run(ctx) // returns when the context expires

	batches := pub.all()
	require.NotEmpty(t, batches, "scheduler never ticked")

	for _, batch := range batches {
		// Atomic batches: always the whole fleet, always in id order.
		require.Len(t, batch, 5)
		for i, snap := range batch {
			assert.Equal(t, i, snap.ID)
		}
	}

	// Progress never regresses between consecutive batches.
	for i := 1; i < len(batches); i++ {
		for j := range batches[i] {
			assert.GreaterOrEqual(t,
				batches[i][j].DistanceCovered, batches[i-1][j].DistanceCovered)
		}
	}
}
