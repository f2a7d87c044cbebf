package sim

// Archetype names a driving profile.
type Archetype string

const (
	ArchetypeAggressive Archetype = "aggressive"
	ArchetypeEfficient  Archetype = "efficient"
	ArchetypeNominal    Archetype = "nominal"
)

// Profile fixes the center and bounds of every metric's random walk for one
// driving archetype. A vehicle's profile is assigned at creation and never
// changes.
type Profile struct {
	Archetype Archetype

	SpeedMin    float64 // km/h
	SpeedMax    float64
	SpeedJitter float64 // max walk step per tick

	TempMin    float64 // °C
	TempMax    float64
	TempJitter float64

	FuelBurnPerKm float64 // percent of tank per km
	InitFuelMin   float64 // percent
	InitFuelMax   float64

	InitProgressMin float64 // fraction of route distance
	InitProgressMax float64
}

var (
	// aggressive burns hot and fast, starts nearly empty and nearly done:
	// the "bad driver" the demo contrasts against.
	aggressive = Profile{
		Archetype:       ArchetypeAggressive,
		SpeedMin:        55,
		SpeedMax:        85,
		SpeedJitter:     4,
		TempMin:         88,
		TempMax:         104,
		TempJitter:      1.5,
		FuelBurnPerKm:   3.0,
		InitFuelMin:     15,
		InitFuelMax:     25,
		InitProgressMin: 0.85,
		InitProgressMax: 0.95,
	}

	// efficient holds a steady ~60 km/h and a cool engine: the "good driver".
	efficient = Profile{
		Archetype:       ArchetypeEfficient,
		SpeedMin:        50,
		SpeedMax:        70,
		SpeedJitter:     2,
		TempMin:         82,
		TempMax:         94,
		TempJitter:      1.0,
		FuelBurnPerKm:   1.5,
		InitFuelMin:     70,
		InitFuelMax:     95,
		InitProgressMin: 0.30,
		InitProgressMax: 0.50,
	}

	nominal = Profile{
		Archetype:       ArchetypeNominal,
		SpeedMin:        45,
		SpeedMax:        75,
		SpeedJitter:     3,
		TempMin:         84,
		TempMax:         98,
		TempJitter:      1.2,
		FuelBurnPerKm:   2.0,
		InitFuelMin:     50,
		InitFuelMax:     90,
		InitProgressMin: 0,
		InitProgressMax: 0.20,
	}
)

// ProfileForID assigns a driving profile deterministically by vehicle id:
//
//	id 0   -> aggressive
//	id 1   -> efficient
//	id >=2 -> nominal
//
// The asymmetry is intentional; it keeps the driver-report demo stocked with
// one contrasting bad driver and one good one.
func ProfileForID(id int) Profile {
	switch id {
	case 0:
		return aggressive
	case 1:
		return efficient
	default:
		return nominal
	}
}
