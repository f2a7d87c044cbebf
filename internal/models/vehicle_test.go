package models

import (
	"encoding/json"
	"testing"
	"time"
)

// The dashboard consumes these exact keys; renaming any of them breaks the
// frontend silently.
func TestVehicleWireShape(t *testing.T) {
	v := Vehicle{
		ID:          1,
		Helper:      nil,
		Status:      StatusOnRoute,
		LastUpdated: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{
		"id", "truck", "driver", "helper", "goods", "status", "position",
		"speed", "fuel", "engineTemp", "distanceCovered", "route", "lastUpdated",
	} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing wire key %q", key)
		}
	}

	if string(raw["helper"]) != "null" {
		t.Errorf("absent helper must serialize as null, got %s", raw["helper"])
	}
	if string(raw["lastUpdated"]) != `"2025-06-01T12:00:00Z"` {
		t.Errorf("lastUpdated must be an ISO-8601 string, got %s", raw["lastUpdated"])
	}
}
