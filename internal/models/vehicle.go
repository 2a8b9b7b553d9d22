package models

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusInUse       VehicleStatus = "In Use"
	VehicleStatusUnavailable VehicleStatus = "Unavailable"
)

// Vehicle is a rentable fleet unit
type Vehicle struct {
	ID               string        `json:"id"`
	RentalVendorID   int           `json:"rentalVendorId"`
	RentalVendorName string        `json:"rentalVendorName"`
	Type             string        `json:"type"` // Sedan, SUV, MPV, Luxury
	Brand            string        `json:"brand"`
	Model            string        `json:"model"`
	ProductionYear   int           `json:"productionYear"`
	Location         string        `json:"location"`
	LicensePlate     string        `json:"licensePlate"`
	Capacity         int           `json:"capacity"`
	Transmission     string        `json:"transmission"` // Manual / Automatic
	FuelType         string        `json:"fuelType"`
	DailyPrice       float64       `json:"price"`
	Status           VehicleStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type VehicleRequest struct {
	RentalVendorID   int     `json:"rentalVendorId"`
	RentalVendorName string  `json:"rentalVendorName"`
	Type             string  `json:"type"`
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	ProductionYear   int     `json:"productionYear"`
	Location         string  `json:"location"`
	LicensePlate     string  `json:"licensePlate"`
	Capacity         int     `json:"capacity"`
	Transmission     string  `json:"transmission"`
	FuelType         string  `json:"fuelType"`
	DailyPrice       float64 `json:"price"`
}
