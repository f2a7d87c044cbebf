package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ukydev/truck-fleet-tracker/internal/report"
)

// ReportHandler serves driver performance reports.
type ReportHandler struct {
	source report.MetricsSource
}

// NewReportHandler creates a new report handler
func NewReportHandler(source report.MetricsSource) *ReportHandler {
	return &ReportHandler{source: source}
}

// Get returns the performance report for one driver, together with the
// benchmark thresholds the dashboard grades against.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid driver id")
		return
	}

	rep, err := h.source.Report(id)
	if err != nil {
		if errors.Is(err, report.ErrUnknownDriver) {
			errorJSON(w, http.StatusNotFound, "Driver not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report":     rep,
		"benchmarks": report.Benchmarks,
	})
}
