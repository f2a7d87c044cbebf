package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/truck-fleet-tracker/internal/report"
)

func newReportRouter() *mux.Router {
	h := NewReportHandler(report.NewGeneratedSource(5))
	r := mux.NewRouter()
	r.HandleFunc("/api/drivers/{id}/report", h.Get).Methods(http.MethodGet)
	return r
}

func getReport(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReportHandler_Get(t *testing.T) {
	router := newReportRouter()

	rec := getReport(t, router, "/api/drivers/3/report")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Report     report.DriverReport         `json:"report"`
		Benchmarks map[string]report.Benchmark `json:"benchmarks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Report.DriverID)
	assert.Positive(t, body.Report.TotalDeliveries)
	assert.Contains(t, body.Benchmarks, "fuelConsumption")
}

func TestReportHandler_GetIsDeterministic(t *testing.T) {
	router := newReportRouter()

	first := getReport(t, router, "/api/drivers/2/report")
	second := getReport(t, router, "/api/drivers/2/report")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestReportHandler_GetUnknownDriver(t *testing.T) {
	router := newReportRouter()

	rec := getReport(t, router, "/api/drivers/99/report")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportHandler_GetInvalidID(t *testing.T) {
	router := newReportRouter()

	rec := getReport(t, router, "/api/drivers/abc/report")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
