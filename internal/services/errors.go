package services

import (
	"errors"
	"fmt"

	"github.com/adityapw/rentafleet-core/internal/models"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrVehicleInUse        = errors.New("cannot delete in-use rented vehicle")
	ErrMaintenanceNotFound = errors.New("maintenance record not found")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrVoucherNotFound     = errors.New("purchased coupon not found")
	ErrVoucherAlreadyUsed  = errors.New("purchased coupon already used")
	ErrInsufficientPoints  = errors.New("insufficient loyalty points")
)

// InvalidStateError reports a mutation attempted outside the Upcoming state
type InvalidStateError struct {
	BookingID string
	Status    models.BookingStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("booking %s is %s and can no longer be modified", e.BookingID, e.Status)
}

func NewInvalidStateError(bookingID string, status models.BookingStatus) error {
	return &InvalidStateError{
		BookingID: bookingID,
		Status:    status,
	}
}
