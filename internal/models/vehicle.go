package models

import "time"

// Position represents a geographical position with latitude and longitude coordinates.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Truck represents the static specification of a truck plus its current odometer reading.
type Truck struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Registration string `json:"registration"`
	FuelCapacity int    `json:"fuelCapacity"`
	Odometer     int    `json:"odometer"`
}

// Driver represents a driver assigned to a truck.
type Driver struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	License    string `json:"license"`
	Experience int    `json:"experience"`
	Phone      string `json:"phone"`
}

// Helper represents an optional second crew member; not every truck carries one.
type Helper struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Goods represents the shipment a truck carries for the lifetime of its route.
type Goods struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Weight   int    `json:"weight"`
	Value    int    `json:"value"`
}

// Route describes the fixed origin/destination pair of a vehicle and how far
// along it the vehicle has come. Distance is in kilometers, Progress in percent.
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
	Progress    int    `json:"progress"`
}

// Status classifies a vehicle's current condition.
type Status string

const (
	StatusOnRoute         Status = "On Route"
	StatusLowFuel         Status = "Low Fuel"
	StatusHighTemperature Status = "High Temperature"
	StatusDelivered       Status = "Delivered"
)

// Vehicle is the transport-ready snapshot of one truck. It is a full
// point-in-time copy: mutating it never affects the simulation.
type Vehicle struct {
	ID              int       `json:"id"`
	Truck           Truck     `json:"truck"`
	Driver          Driver    `json:"driver"`
	Helper          *Helper   `json:"helper"`
	Goods           Goods     `json:"goods"`
	Status          Status    `json:"status"`
	Position        Position  `json:"position"`
	Speed           int       `json:"speed"`
	Fuel            int       `json:"fuel"`
	EngineTemp      int       `json:"engineTemp"`
	DistanceCovered int       `json:"distanceCovered"`
	Route           Route     `json:"route"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// Stats aggregates the fleet for the dashboard's stat cards.
type Stats struct {
	TotalTrucks    int `json:"totalTrucks"`
	ActiveRoutes   int `json:"activeRoutes"`
	GoodsInTransit int `json:"goodsInTransit"`
	TotalDistance  int `json:"totalDistance"`
}
