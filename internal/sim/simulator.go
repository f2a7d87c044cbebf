package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/ukydev/truck-fleet-tracker/internal/catalog"
	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

// Simulator owns the mutable state of one vehicle and advances it one tick at
// a time. It is not safe for concurrent use; the Registry serializes access.
type Simulator struct {
	id      int
	truck   models.Truck
	driver  models.Driver
	helper  *models.Helper
	goods   models.Goods
	route   catalog.Route
	profile Profile
	tick    time.Duration
	rng     *rand.Rand

	distanceCovered float64 // km along the route, never decreases
	odometer        float64 // km, lifetime total
	position        models.Position
	speed           float64 // km/h
	fuel            float64 // percent, only decreases
	engineTemp      float64 // °C
	status          models.Status
	lastUpdated     time.Time
}

// NewSimulator creates a vehicle from the catalog entries and driving profile
// assigned to id. The tick duration fixes how much simulated time one Update
// call represents.
func NewSimulator(id int, tick time.Duration, rng *rand.Rand) *Simulator {
	profile := ProfileForID(id)
	route := catalog.RouteFor(id)
	goods := catalog.GoodsFor(id)

	weight := goods.BaseWeight + rng.Intn(500)
	s := &Simulator{
		id:      id,
		truck:   catalog.TruckFor(id),
		driver:  catalog.DriverFor(id),
		helper:  catalog.HelperFor(id),
		route:   route,
		profile: profile,
		tick:    tick,
		rng:     rng,
		goods: models.Goods{
			Type:     goods.Type,
			Quantity: 20 + rng.Intn(50),
			Weight:   weight,
			Value:    weight * goods.PricePerKg,
		},
		odometer:   float64(100000 + rng.Intn(50000)),
		speed:      uniform(rng, profile.SpeedMin, profile.SpeedMax),
		fuel:       uniform(rng, profile.InitFuelMin, profile.InitFuelMax),
		engineTemp: uniform(rng, profile.TempMin, math.Min(profile.TempMax, 94)),
	}

	progress := uniform(rng, profile.InitProgressMin, profile.InitProgressMax)
	s.distanceCovered = progress * route.DistanceKm
	s.position = lerp(route.OriginPos, route.DestinationPos, s.Progress())
	s.status = StatusFor(s.Progress(), s.fuel, s.engineTemp)
	s.lastUpdated = time.Now()
	return s
}

// ID returns the vehicle's stable identity.
func (s *Simulator) ID() int {
	return s.id
}

// Progress reports route completion as a fraction in [0, 1].
func (s *Simulator) Progress() float64 {
	return math.Min(1, s.distanceCovered/s.route.DistanceKm)
}

// Update advances the vehicle by one tick: movement and fuel burn while the
// route is unfinished, bounded random walks on speed and engine temperature,
// then status reclassification. Returns the resulting snapshot.
func (s *Simulator) Update() models.Vehicle {
	if s.distanceCovered < s.route.DistanceKm {
		delta := s.speed * s.tick.Hours()
		if remaining := s.route.DistanceKm - s.distanceCovered; delta > remaining {
			delta = remaining
		}
		s.distanceCovered += delta
		s.odometer += delta
		s.fuel = clamp(s.fuel-delta*s.profile.FuelBurnPerKm, 0, 100)
		s.position = lerp(s.route.OriginPos, s.route.DestinationPos, s.Progress())
	}

	s.speed = walk(s.rng, s.speed, s.profile.SpeedJitter, s.profile.SpeedMin, s.profile.SpeedMax)
	s.engineTemp = walk(s.rng, s.engineTemp, s.profile.TempJitter, s.profile.TempMin, s.profile.TempMax)

	s.status = StatusFor(s.Progress(), s.fuel, s.engineTemp)
	s.lastUpdated = time.Now()
	return s.Snapshot()
}

// Snapshot returns a transport-ready copy of the vehicle's current state.
// The copy shares nothing mutable with the simulator, so a snapshot already
// handed to a subscriber can never change under later ticks.
func (s *Simulator) Snapshot() models.Vehicle {
	truck := s.truck
	truck.Odometer = int(math.Round(s.odometer))

	var helper *models.Helper
	if s.helper != nil {
		h := *s.helper
		helper = &h
	}

	return models.Vehicle{
		ID:              s.id,
		Truck:           truck,
		Driver:          s.driver,
		Helper:          helper,
		Goods:           s.goods,
		Status:          s.status,
		Position:        s.position,
		Speed:           int(math.Round(s.speed)),
		Fuel:            int(math.Round(s.fuel)),
		EngineTemp:      int(math.Round(s.engineTemp)),
		DistanceCovered: int(math.Round(s.distanceCovered)),
		Route: models.Route{
			Origin:      s.route.Origin,
			Destination: s.route.Destination,
			Distance:    int(math.Round(s.route.DistanceKm)),
			Progress:    int(math.Min(100, math.Round(s.Progress()*100))),
		},
		LastUpdated: s.lastUpdated,
	}
}

// StatusFor classifies a vehicle from its current metrics. The evaluation
// order is fixed: a finished route wins over everything, low fuel wins over a
// hot engine.
func StatusFor(progress, fuel, engineTemp float64) models.Status {
	switch {
	case progress >= 1:
		return models.StatusDelivered
	case fuel < 20:
		return models.StatusLowFuel
	case engineTemp > 95:
		return models.StatusHighTemperature
	default:
		return models.StatusOnRoute
	}
}

// walk takes one bounded random-walk step.
func walk(rng *rand.Rand, current, jitter, min, max float64) float64 {
	return clamp(current+(rng.Float64()*2-1)*jitter, min, max)
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func lerp(a, b models.Position, t float64) models.Position {
	return models.Position{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lng: a.Lng + (b.Lng-a.Lng)*t,
	}
}
