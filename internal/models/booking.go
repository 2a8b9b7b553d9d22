package models

import "time"

type BookingStatus string

const (
	BookingStatusUpcoming BookingStatus = "Upcoming"
	BookingStatusOngoing  BookingStatus = "Ongoing"
	BookingStatusDone     BookingStatus = "Done"
)

// RentalAddOn is an optional priced extra selectable per booking
type RentalAddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RentalBooking reserves a vehicle for a time window with derived pricing
type RentalBooking struct {
	ID                 string        `json:"id"`
	VehicleID          string        `json:"vehicleId"`
	PickUpTime         string        `json:"pickUpTime"`
	DropOffTime        string        `json:"dropOffTime"`
	PickUpLocation     string        `json:"pickUpLocation"`
	DropOffLocation    string        `json:"dropOffLocation"`
	CapacityNeeded     int           `json:"capacityNeeded"`
	TransmissionNeeded string        `json:"transmissionNeeded"`
	IncludeDriver      bool          `json:"includeDriver"`
	AddOns             []RentalAddOn `json:"listOfAddOns"`
	TotalPrice         float64       `json:"totalPrice"`
	Status             BookingStatus `json:"status"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

type CreateRentalBookingRequest struct {
	VehicleID          string   `json:"vehicleId"`
	VehicleDailyPrice  float64  `json:"vehicleDailyPrice"`
	PickUpTime         string   `json:"pickUpTime"`
	DropOffTime        string   `json:"dropOffTime"`
	PickUpLocation     string   `json:"pickUpLocation"`
	DropOffLocation    string   `json:"dropOffLocation"`
	CapacityNeeded     int      `json:"capacityNeeded"`
	TransmissionNeeded string   `json:"transmissionNeeded"`
	IncludeDriver      bool     `json:"includeDriver"`
	AddOnIDs           []string `json:"listOfAddOns"`
}

type UpdateRentalBookingRequest struct {
	ID                 string   `json:"id"`
	VehicleID          string   `json:"vehicleId"`
	VehicleDailyPrice  float64  `json:"vehicleDailyPrice"`
	PickUpTime         string   `json:"pickUpTime"`
	DropOffTime        string   `json:"dropOffTime"`
	PickUpLocation     string   `json:"pickUpLocation"`
	DropOffLocation    string   `json:"dropOffLocation"`
	CapacityNeeded     int      `json:"capacityNeeded"`
	TransmissionNeeded string   `json:"transmissionNeeded"`
	IncludeDriver      bool     `json:"includeDriver"`
	AddOnIDs           []string `json:"listOfAddOns"`
}

type ChartPeriod string

const (
	ChartPeriodMonthly   ChartPeriod = "Monthly"
	ChartPeriodQuarterly ChartPeriod = "Quarterly"
)

// ChartBucket is one label/count pair of a booking histogram
type ChartBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
