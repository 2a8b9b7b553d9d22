package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/adityapw/rentafleet-core/internal/models"
)

// PricePreview contains the quoted price and breakdown before add-ons are chosen
type PricePreview struct {
	Days       int     `json:"days"`
	BasePrice  float64 `json:"basePrice"`
	DriverFee  float64 `json:"driverFee"`
	GrandTotal float64 `json:"grandTotal"`
}

const (
	// Rates in IDR
	DefaultDriverRatePerDay   = 100000.0 // Daily fee when a driver is included
	DefaultLatePenaltyPerHour = 20000.0  // Charged per started hour past drop-off
)

// Accepted timestamp layouts, tried in order
var rentalTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseRentalTime parses a rental window endpoint
func ParseRentalTime(value string) (time.Time, error) {
	for _, layout := range rentalTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable rental time %q", value)
}

// ParseRentalWindow parses both endpoints, failing on bad input.
// Callers that prefer degrade-to-default semantics use RentalDays instead.
func ParseRentalWindow(pickUp, dropOff string) (time.Time, time.Time, error) {
	pick, err := ParseRentalTime(pickUp)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	drop, err := ParseRentalTime(dropOff)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return pick, drop, nil
}

// RentalDays computes the billed rental length in days, rounded up,
// never less than 1. Unparseable endpoints fall back to a single day.
func RentalDays(pickUp, dropOff string) int {
	pick, drop, err := ParseRentalWindow(pickUp, dropOff)
	if err != nil {
		return 1
	}
	days := int(math.Ceil(drop.Sub(pick).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// BasePrice returns dailyRate x days rounded to 2 decimal places
// (half away from zero)
func BasePrice(dailyRate float64, days int) float64 {
	if days < 1 {
		days = 1
	}
	return math.Round(dailyRate*float64(days)*100) / 100
}

// DriverFee returns the driver surcharge for the rental length
func DriverFee(includeDriver bool, days int, perDay float64) float64 {
	if !includeDriver {
		return 0
	}
	return float64(days) * perDay
}

// AddOnTotal sums catalog prices for the selected add-on ids.
// Ids missing from the catalog contribute nothing.
func AddOnTotal(ids []string, catalog []models.RentalAddOn) float64 {
	if len(ids) == 0 {
		return 0
	}
	prices := make(map[string]float64, len(catalog))
	for _, addOn := range catalog {
		prices[addOn.ID] = addOn.Price
	}
	total := 0.0
	for _, id := range ids {
		total += prices[id]
	}
	return total
}

// PreviewRentalPrice quotes a rental before add-ons are chosen
func PreviewRentalPrice(dailyRate float64, pickUp, dropOff string, includeDriver bool, perDayDriver float64) PricePreview {
	days := RentalDays(pickUp, dropOff)
	basePrice := BasePrice(dailyRate, days)
	driverFee := DriverFee(includeDriver, days, perDayDriver)

	return PricePreview{
		Days:       days,
		BasePrice:  basePrice,
		DriverFee:  driverFee,
		GrandTotal: basePrice + driverFee,
	}
}

// LatePenalty charges every started hour past the scheduled drop-off
func LatePenalty(now, dropOff time.Time, perHour float64) float64 {
	if !now.After(dropOff) {
		return 0
	}
	hoursLate := math.Ceil(now.Sub(dropOff).Hours())
	return hoursLate * perHour
}
