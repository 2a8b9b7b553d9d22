package models

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "Cancelled"
)

// MaintenanceRecord tracks a service visit for a fleet vehicle
type MaintenanceRecord struct {
	ID             string            `json:"id"`
	VehicleID      string            `json:"vehicleId"`
	VehicleDisplay string            `json:"vehicleDisplay"`
	ServiceDate    string            `json:"serviceDate"`
	Description    string            `json:"description,omitempty"`
	Cost           float64           `json:"cost,omitempty"`
	VendorNote     string            `json:"vendorNote,omitempty"`
	Status         MaintenanceStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type CreateMaintenanceRequest struct {
	VehicleID   string  `json:"vehicleId"`
	ServiceDate string  `json:"serviceDate"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost,omitempty"`
	VendorNote  string  `json:"vendorNote,omitempty"`
}

type UpdateMaintenanceRequest struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicleId"`
	ServiceDate string  `json:"serviceDate"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost,omitempty"`
	VendorNote  string  `json:"vendorNote,omitempty"`
}
