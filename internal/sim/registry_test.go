package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry(5, 3*time.Second)

	assert.Equal(t, 5, reg.Size())

	snaps := reg.Snapshots()
	require.Len(t, snaps, 5)
	for i, snap := range snaps {
		assert.Equal(t, i, snap.ID, "snapshots must come back in id order")
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	reg := NewRegistry(5, 3*time.Second)

	snap, err := reg.Snapshot(3)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.ID)

	_, err = reg.Snapshot(999)
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = reg.Snapshot(-1)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestRegistry_UpdateAll(t *testing.T) {
	reg := NewRegistry(5, 3*time.Second)

	before := reg.Snapshots()
	batch := reg.UpdateAll()
	require.Len(t, batch, 5)

	for i, snap := range batch {
		assert.Equal(t, i, snap.ID)
		assert.GreaterOrEqual(t, snap.DistanceCovered, before[i].DistanceCovered)
	}

	// A later point query reflects the same tick, not stale pre-update state.
	snap, err := reg.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, batch[1].DistanceCovered, snap.DistanceCovered)
}

func TestRegistry_ProfileAssignment(t *testing.T) {
	reg := NewRegistry(5, 3*time.Second)

	// Vehicle 0 starts on the aggressive profile: nearly empty tank, route
	// nearly done.
	snap, err := reg.Snapshot(0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, snap.Fuel, 15)
	assert.LessOrEqual(t, snap.Fuel, 25)
	assert.GreaterOrEqual(t, snap.Route.Progress, 85)

	// Vehicle 1 starts on the efficient profile with a healthy tank.
	snap, err = reg.Snapshot(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, snap.Fuel, 70)
	assert.GreaterOrEqual(t, snap.Route.Progress, 30)
	assert.LessOrEqual(t, snap.Route.Progress, 50)
}

func TestRegistry_Stats(t *testing.T) {
	reg := NewRegistry(5, 3*time.Second)
	reg.UpdateAll()

	stats := reg.Stats()
	snaps := reg.Snapshots()

	assert.Equal(t, 5, stats.TotalTrucks)

	wantActive := 0
	wantGoods := 0
	wantDistance := 0
	for _, snap := range snaps {
		if snap.Status == models.StatusOnRoute {
			wantActive++
		}
		wantGoods += snap.Goods.Quantity
		wantDistance += snap.DistanceCovered
	}
	assert.Equal(t, wantActive, stats.ActiveRoutes)
	assert.Equal(t, wantGoods, stats.GoodsInTransit)
	assert.Equal(t, wantDistance, stats.TotalDistance)
}
