// Package report produces historical driver-performance reports. The numbers
// are fabricated: there is no real trip history in this system. Everything
// sits behind MetricsSource so a real data source can replace the generator
// without touching the handlers.
package report

import (
	"errors"
	"math/rand"
)

// ErrUnknownDriver is returned for driver ids outside the catalog.
var ErrUnknownDriver = errors.New("unknown driver")

// DriverReport summarizes one driver's historical performance.
type DriverReport struct {
	DriverID           int     `json:"driverId"`
	AvgFuelConsumption float64 `json:"avgFuelConsumption"` // L/100km
	AvgSpeed           float64 `json:"avgSpeed"`           // km/h
	AvgDeliveryTime    float64 `json:"avgDeliveryTime"`    // hours
	TotalDeliveries    int     `json:"totalDeliveries"`
	TotalDistance      int     `json:"totalDistance"` // km
	Incidents          int     `json:"incidents"`
	LateDeliveries     int     `json:"lateDeliveries"`
	IdleTimePercent    float64 `json:"idleTimePercent"`
	HarshBraking       int     `json:"harshBraking"`
	RapidAcceleration  int     `json:"rapidAcceleration"`
	SpeedingIncidents  int     `json:"speedingIncidents"`
}

// Benchmark gives industry reference thresholds for one metric.
type Benchmark struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Poor      float64 `json:"poor"`
}

// Benchmarks are the reference thresholds the dashboard grades against.
var Benchmarks = map[string]Benchmark{
	"fuelConsumption":  {Excellent: 7.5, Good: 8.5, Poor: 10},
	"avgSpeed":         {Excellent: 60, Good: 55, Poor: 50},
	"deliveryTime":     {Excellent: 42, Good: 48, Poor: 54},
	"idleTime":         {Excellent: 5, Good: 10, Poor: 15},
	"lateDeliveryRate": {Excellent: 5, Good: 10, Poor: 15},
}

// MetricsSource yields driver performance reports.
type MetricsSource interface {
	Report(driverID int) (DriverReport, error)
}

// baseMetric anchors the generated numbers per driver.
type baseMetric struct {
	avgFuel         float64
	avgSpeed        float64
	avgDeliveryTime float64
}

var baseMetrics = map[int]baseMetric{
	1: {avgFuel: 8.5, avgSpeed: 55, avgDeliveryTime: 48},
	2: {avgFuel: 9.2, avgSpeed: 62, avgDeliveryTime: 44},
	3: {avgFuel: 7.8, avgSpeed: 58, avgDeliveryTime: 52},
	4: {avgFuel: 8.0, avgSpeed: 65, avgDeliveryTime: 46},
	5: {avgFuel: 8.8, avgSpeed: 54, avgDeliveryTime: 50},
}

// GeneratedSource fabricates deterministic per-driver history. The same
// driver id always yields the same report within a process and across
// restarts, since the generator is seeded by the id.
type GeneratedSource struct {
	maxDriverID int
}

// NewGeneratedSource accepts driver ids 0..maxDriverID. Id 0 is the
// deliberately bad record the demo contrasts against.
func NewGeneratedSource(maxDriverID int) *GeneratedSource {
	return &GeneratedSource{maxDriverID: maxDriverID}
}

// Report implements MetricsSource.
func (g *GeneratedSource) Report(driverID int) (DriverReport, error) {
	if driverID < 0 || driverID > g.maxDriverID {
		return DriverReport{}, ErrUnknownDriver
	}

	if driverID == 0 {
		return DriverReport{
			DriverID:           0,
			AvgFuelConsumption: 10.8,
			AvgSpeed:           50.3,
			AvgDeliveryTime:    54.3,
			TotalDeliveries:    135,
			TotalDistance:      43000,
			Incidents:          8,
			LateDeliveries:     25,
			IdleTimePercent:    18,
			HarshBraking:       32,
			RapidAcceleration:  28,
			SpeedingIncidents:  35,
		}, nil
	}

	base, ok := baseMetrics[driverID]
	if !ok {
		base = baseMetrics[1]
	}

	rng := rand.New(rand.NewSource(int64(driverID)))
	return DriverReport{
		DriverID:           driverID,
		AvgFuelConsumption: base.avgFuel,
		AvgSpeed:           base.avgSpeed,
		AvgDeliveryTime:    base.avgDeliveryTime,
		TotalDeliveries:    100 + rng.Intn(50),
		TotalDistance:      50000 + rng.Intn(10000),
		Incidents:          rng.Intn(5),
		LateDeliveries:     5 + rng.Intn(10),
		IdleTimePercent:    5 + rng.Float64()*15,
		HarshBraking:       10 + rng.Intn(20),
		RapidAcceleration:  5 + rng.Intn(15),
		SpeedingIncidents:  10 + rng.Intn(25),
	}, nil
}
