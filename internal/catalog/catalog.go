// Package catalog holds the static fleet data: trucks, drivers, helpers, goods
// archetypes and routes. Everything here is read-only after process start;
// vehicles are assigned entries by id, so the same id always maps to the same
// truck, crew and route.
package catalog

import "github.com/ukydev/truck-fleet-tracker/internal/models"

// Trucks is the fixed pool of truck specifications.
var Trucks = []models.Truck{
	{Make: "Volvo", Model: "FH16", Registration: "DL01TC1234", FuelCapacity: 300},
	{Make: "Mercedes-Benz", Model: "Actros", Registration: "MH02AB5678", FuelCapacity: 400},
	{Make: "Scania", Model: "R Series", Registration: "KA03CD9876", FuelCapacity: 350},
	{Make: "Tata", Model: "Prima", Registration: "TN04EF3456", FuelCapacity: 250},
	{Make: "Ashok Leyland", Model: "Captain", Registration: "GJ05GH7890", FuelCapacity: 280},
}

// Drivers is the fixed pool of drivers.
var Drivers = []models.Driver{
	{ID: 1, Name: "Rajesh Kumar", License: "DL1234567", Experience: 12, Phone: "+91-9876543210"},
	{ID: 2, Name: "Amit Singh", License: "MH7654321", Experience: 8, Phone: "+91-9876543211"},
	{ID: 3, Name: "Suresh Patil", License: "KA2468135", Experience: 15, Phone: "+91-9876543212"},
	{ID: 4, Name: "Mohammed Ali", License: "TN1357924", Experience: 10, Phone: "+91-9876543213"},
	{ID: 5, Name: "Deepak Sharma", License: "GJ3692581", Experience: 7, Phone: "+91-9876543214"},
}

// helpers mirrors the driver pool; a nil entry means the truck runs without a helper.
var helpers = []*models.Helper{
	{ID: 1, Name: "Ravi Verma", Phone: "+91-8765432100"},
	{ID: 2, Name: "Sanjay Yadav", Phone: "+91-8765432101"},
	{ID: 3, Name: "Pramod Gupta", Phone: "+91-8765432102"},
	nil, // truck 4 has no helper
	{ID: 5, Name: "Vikram Singh", Phone: "+91-8765432103"},
}

// GoodsArchetype describes a category of goods and its pricing basis.
type GoodsArchetype struct {
	Type       string
	BaseWeight int // kg
	PricePerKg int // INR
}

// GoodsCatalog is the fixed pool of goods categories.
var GoodsCatalog = []GoodsArchetype{
	{Type: "Electronics", BaseWeight: 500, PricePerKg: 100},
	{Type: "Textiles", BaseWeight: 800, PricePerKg: 50},
	{Type: "Food Products", BaseWeight: 1000, PricePerKg: 30},
	{Type: "Industrial Equipment", BaseWeight: 2000, PricePerKg: 200},
	{Type: "Pharmaceuticals", BaseWeight: 300, PricePerKg: 500},
}

// Route fixes the origin/destination pair of a vehicle, including the
// coordinates used for position interpolation.
type Route struct {
	Origin         string
	Destination    string
	OriginPos      models.Position
	DestinationPos models.Position
	DistanceKm     float64
}

// cities maps city names to coordinates.
var cities = map[string]models.Position{
	"Delhi":     {Lat: 28.6139, Lng: 77.2090},
	"Mumbai":    {Lat: 19.0760, Lng: 72.8777},
	"Bangalore": {Lat: 12.9716, Lng: 77.5946},
	"Chennai":   {Lat: 13.0827, Lng: 80.2707},
	"Kolkata":   {Lat: 22.5726, Lng: 88.3639},
	"Pune":      {Lat: 18.5204, Lng: 73.8567},
	"Hyderabad": {Lat: 17.3850, Lng: 78.4867},
	"Jaipur":    {Lat: 26.9124, Lng: 75.7873},
}

// routes is the fixed route table, one entry per vehicle id modulo table size.
var routes = []Route{
	newRoute("Delhi", "Jaipur", 280),
	newRoute("Mumbai", "Pune", 150),
	newRoute("Bangalore", "Chennai", 350),
	newRoute("Hyderabad", "Bangalore", 570),
	newRoute("Kolkata", "Delhi", 1470),
}

func newRoute(origin, destination string, distanceKm float64) Route {
	return Route{
		Origin:         origin,
		Destination:    destination,
		OriginPos:      cities[origin],
		DestinationPos: cities[destination],
		DistanceKm:     distanceKm,
	}
}

// TruckFor returns the truck specification assigned to a vehicle id.
func TruckFor(id int) models.Truck {
	return Trucks[id%len(Trucks)]
}

// DriverFor returns the driver assigned to a vehicle id.
func DriverFor(id int) models.Driver {
	return Drivers[id%len(Drivers)]
}

// HelperFor returns the helper assigned to a vehicle id, or nil when the
// truck runs without one.
func HelperFor(id int) *models.Helper {
	return helpers[id%len(helpers)]
}

// GoodsFor returns the goods archetype assigned to a vehicle id.
func GoodsFor(id int) GoodsArchetype {
	return GoodsCatalog[id%len(GoodsCatalog)]
}

// RouteFor returns the fixed route assigned to a vehicle id.
func RouteFor(id int) Route {
	return routes[id%len(routes)]
}
