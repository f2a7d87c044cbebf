package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ukydev/truck-fleet-tracker/internal/models"
	"github.com/ukydev/truck-fleet-tracker/internal/sim"
)

// FleetSource provides point-in-time reads of the simulated fleet,
// independent of the push channel.
type FleetSource interface {
	Snapshots() []models.Vehicle
	Snapshot(id int) (models.Vehicle, error)
	Stats() models.Stats
}

// VehicleHandler serves the synchronous query endpoints.
type VehicleHandler struct {
	fleet FleetSource
}

// NewVehicleHandler creates a new vehicle query handler
func NewVehicleHandler(fleet FleetSource) *VehicleHandler {
	return &VehicleHandler{fleet: fleet}
}

// List returns the full current snapshot set, same shape as the broadcast.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.fleet.Snapshots())
}

// Get returns a single vehicle snapshot by id.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	snap, err := h.fleet.Snapshot(id)
	if err != nil {
		if errors.Is(err, sim.ErrVehicleNotFound) {
			errorJSON(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to read vehicle")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Stats returns fleet aggregates, computed fresh from current simulator
// state rather than the last broadcast batch.
func (h *VehicleHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.fleet.Stats())
}
