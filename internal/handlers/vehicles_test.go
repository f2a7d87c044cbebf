package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/truck-fleet-tracker/internal/models"
	"github.com/ukydev/truck-fleet-tracker/internal/sim"
)

func newVehicleRouter(reg *sim.Registry) *mux.Router {
	h := NewVehicleHandler(reg)
	r := mux.NewRouter()
	r.HandleFunc("/api/vehicles", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/vehicles/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", h.Stats).Methods(http.MethodGet)
	return r
}

func TestVehicleHandler_List(t *testing.T) {
	reg := sim.NewRegistry(5, 3*time.Second)
	router := newVehicleRouter(reg)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var vehicles []models.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	require.Len(t, vehicles, 5)
	for i, v := range vehicles {
		assert.Equal(t, i, v.ID)
		assert.NotEmpty(t, v.Status)
	}
}

func TestVehicleHandler_Get(t *testing.T) {
	reg := sim.NewRegistry(5, 3*time.Second)
	router := newVehicleRouter(reg)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var v models.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, 2, v.ID)
	assert.NotEmpty(t, v.Truck.Make)
}

func TestVehicleHandler_GetUnknownID(t *testing.T) {
	reg := sim.NewRegistry(5, 3*time.Second)
	router := newVehicleRouter(reg)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Vehicle not found", body["error"])
}

func TestVehicleHandler_GetInvalidID(t *testing.T) {
	reg := sim.NewRegistry(5, 3*time.Second)
	router := newVehicleRouter(reg)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleHandler_Stats(t *testing.T) {
	reg := sim.NewRegistry(5, 3*time.Second)
	reg.UpdateAll()
	router := newVehicleRouter(reg)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.TotalTrucks)

	wantActive := 0
	for _, v := range reg.Snapshots() {
		if v.Status == models.StatusOnRoute {
			wantActive++
		}
	}
	assert.Equal(t, wantActive, stats.ActiveRoutes)
	assert.Positive(t, stats.GoodsInTransit)
}
