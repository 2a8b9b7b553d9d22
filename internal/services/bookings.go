package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/adityapw/rentafleet-core/internal/models"
	"github.com/adityapw/rentafleet-core/pkg/utils"
	"go.uber.org/zap"
)

// BookingService owns the rental booking collection and mediates every
// mutation through the pricing rules and the booking state machine.
type BookingService struct {
	mu       sync.RWMutex
	bookings []models.RentalBooking
	lastSeq  int

	catalog     *AddOnCatalog
	driverRate  float64
	penaltyRate float64
	now         func() time.Time
	logger      *zap.Logger
}

type BookingOption func(*BookingService)

// WithClock overrides the time source, required for deterministic tests
func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) { s.now = now }
}

// WithDriverRate overrides the per-day driver fee
func WithDriverRate(perDay float64) BookingOption {
	return func(s *BookingService) { s.driverRate = perDay }
}

// WithLatePenaltyRate overrides the per-hour late-return penalty
func WithLatePenaltyRate(perHour float64) BookingOption {
	return func(s *BookingService) { s.penaltyRate = perHour }
}

// WithBookingLogger attaches a logger to the service
func WithBookingLogger(logger *zap.Logger) BookingOption {
	return func(s *BookingService) { s.logger = logger }
}

// NewBookingService creates a booking service backed by a fresh
// in-memory collection
func NewBookingService(catalog *AddOnCatalog, opts ...BookingOption) *BookingService {
	s := &BookingService{
		catalog:     catalog,
		driverRate:  utils.DefaultDriverRatePerDay,
		penaltyRate: utils.DefaultLatePenaltyPerHour,
		now:         time.Now,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCatalog swaps the add-on catalog used for pricing and display
func (s *BookingService) SetCatalog(catalog *AddOnCatalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
}

// Create resolves the requested add-ons, prices the rental and appends
// a new Upcoming booking to the collection
func (s *BookingService) Create(req models.CreateRentalBookingRequest) models.RentalBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	addOns, addOnTotal := s.resolveAddOns(req.AddOnIDs)

	days := utils.RentalDays(req.PickUpTime, req.DropOffTime)
	basePrice := utils.BasePrice(req.VehicleDailyPrice, days)
	driverFee := utils.DriverFee(req.IncludeDriver, days, s.driverRate)

	now := s.now()
	booking := models.RentalBooking{
		ID:                 s.nextID(),
		VehicleID:          req.VehicleID,
		PickUpTime:         req.PickUpTime,
		DropOffTime:        req.DropOffTime,
		PickUpLocation:     req.PickUpLocation,
		DropOffLocation:    req.DropOffLocation,
		CapacityNeeded:     req.CapacityNeeded,
		TransmissionNeeded: req.TransmissionNeeded,
		IncludeDriver:      req.IncludeDriver,
		AddOns:             addOns,
		TotalPrice:         basePrice + driverFee + addOnTotal,
		Status:             models.BookingStatusUpcoming,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	s.bookings = append(s.bookings, booking)
	s.logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("vehicleId", booking.VehicleID),
		zap.Int("days", days),
		zap.Float64("totalPrice", booking.TotalPrice))
	return cloneBooking(booking)
}

// Get returns a booking by id. Stored add-ons are re-hydrated against
// the current catalog so displayed prices stay current; the charged
// total remains frozen.
func (s *BookingService) Get(id string) (models.RentalBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.RentalBooking{}, ErrBookingNotFound
	}

	booking := cloneBooking(s.bookings[idx])
	for i, addOn := range booking.AddOns {
		if current, ok := s.catalog.Find(addOn.ID); ok {
			booking.AddOns[i] = current
		}
	}
	return booking, nil
}

// GetAll returns every booking, newest first
func (s *BookingService) GetAll() []models.RentalBooking {
	return s.Sort("desc")
}

// Sort returns the bookings ordered by creation time
func (s *BookingService) Sort(order string) []models.RentalBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]models.RentalBooking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		sorted = append(sorted, cloneBooking(booking))
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == "asc" {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// Update replaces the mutable fields of an Upcoming booking and
// recomputes the total price from scratch
func (s *BookingService) Update(req models.UpdateRentalBookingRequest) (models.RentalBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(req.ID)
	if idx < 0 {
		return models.RentalBooking{}, ErrBookingNotFound
	}
	booking := &s.bookings[idx]
	if booking.Status != models.BookingStatusUpcoming {
		return models.RentalBooking{}, NewInvalidStateError(booking.ID, booking.Status)
	}

	addOns, addOnTotal := s.resolveAddOns(req.AddOnIDs)
	days := utils.RentalDays(req.PickUpTime, req.DropOffTime)
	basePrice := utils.BasePrice(req.VehicleDailyPrice, days)
	driverFee := utils.DriverFee(req.IncludeDriver, days, s.driverRate)

	booking.VehicleID = req.VehicleID
	booking.PickUpTime = req.PickUpTime
	booking.DropOffTime = req.DropOffTime
	booking.PickUpLocation = req.PickUpLocation
	booking.DropOffLocation = req.DropOffLocation
	booking.CapacityNeeded = req.CapacityNeeded
	booking.TransmissionNeeded = req.TransmissionNeeded
	booking.IncludeDriver = req.IncludeDriver
	booking.AddOns = addOns
	booking.TotalPrice = basePrice + driverFee + addOnTotal
	booking.UpdatedAt = s.now()

	s.logger.Info("booking updated",
		zap.String("bookingId", booking.ID),
		zap.Float64("totalPrice", booking.TotalPrice))
	return cloneBooking(*booking), nil
}

// UpdateAddOns replaces the add-on selection of an Upcoming booking.
// The newly selected add-on total is added onto the existing price
// rather than recomputed, matching the billing behavior the rest of
// the system was built against.
func (s *BookingService) UpdateAddOns(id string, addOnIDs []string) (models.RentalBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.RentalBooking{}, ErrBookingNotFound
	}
	booking := &s.bookings[idx]
	if booking.Status != models.BookingStatusUpcoming {
		return models.RentalBooking{}, NewInvalidStateError(booking.ID, booking.Status)
	}

	addOns, addOnTotal := s.resolveAddOns(addOnIDs)
	booking.AddOns = addOns
	booking.TotalPrice += addOnTotal
	booking.UpdatedAt = s.now()

	return cloneBooking(*booking), nil
}

// UpdateStatus advances a booking through Upcoming -> Ongoing -> Done.
// Completing a booking past its drop-off time appends a late penalty.
// Transitions outside the table are ignored; Done is terminal and a
// repeated advance returns the record unchanged.
func (s *BookingService) UpdateStatus(id string, newStatus models.BookingStatus) (models.RentalBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.RentalBooking{}, ErrBookingNotFound
	}
	booking := &s.bookings[idx]

	if booking.Status == models.BookingStatusDone {
		return cloneBooking(*booking), nil
	}

	now := s.now()
	switch {
	case booking.Status == models.BookingStatusUpcoming && newStatus == models.BookingStatusOngoing:
		booking.Status = models.BookingStatusOngoing

	case booking.Status == models.BookingStatusOngoing && newStatus == models.BookingStatusDone:
		if dropOff, err := utils.ParseRentalTime(booking.DropOffTime); err == nil {
			if penalty := utils.LatePenalty(now, dropOff, s.penaltyRate); penalty > 0 {
				booking.TotalPrice += penalty
				s.logger.Info("late return penalty applied",
					zap.String("bookingId", booking.ID),
					zap.Float64("penalty", penalty))
			}
		}
		booking.Status = models.BookingStatusDone
	}

	booking.UpdatedAt = now
	return cloneBooking(*booking), nil
}

// Delete removes an Upcoming booking, reporting success
func (s *BookingService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	if s.bookings[idx].Status != models.BookingStatusUpcoming {
		return false
	}

	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)
	s.logger.Info("booking deleted", zap.String("bookingId", id))
	return true
}

// Chart buckets bookings created in the given year into a dense,
// zero-filled monthly or quarterly histogram
func (s *BookingService) Chart(period models.ChartPeriod, year int) []models.ChartBucket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var labels []string
	if period == models.ChartPeriodQuarterly {
		labels = []string{"Q1", "Q2", "Q3", "Q4"}
	} else {
		labels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	}

	counts := make([]int, len(labels))
	for _, booking := range s.bookings {
		if booking.CreatedAt.Year() != year {
			continue
		}
		month := int(booking.CreatedAt.Month()) - 1
		if period == models.ChartPeriodQuarterly {
			counts[month/3]++
		} else {
			counts[month]++
		}
	}

	buckets := make([]models.ChartBucket, len(labels))
	for i, label := range labels {
		buckets[i] = models.ChartBucket{Label: label, Count: counts[i]}
	}
	return buckets
}

// resolveAddOns maps requested ids onto catalog entries. The selection
// is a set: duplicate ids are collapsed so they cannot double-charge.
// Ids missing from the catalog are dropped.
func (s *BookingService) resolveAddOns(ids []string) ([]models.RentalAddOn, float64) {
	addOns := make([]models.RentalAddOn, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	total := 0.0
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		addOn, ok := s.catalog.Find(id)
		if !ok {
			s.logger.Debug("unknown add-on id dropped", zap.String("addOnId", id))
			continue
		}
		addOns = append(addOns, addOn)
		total += addOn.Price
	}
	return addOns, total
}

func (s *BookingService) indexOf(id string) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *BookingService) nextID() string {
	s.lastSeq++
	return fmt.Sprintf("VR%06d", s.lastSeq)
}

func cloneBooking(booking models.RentalBooking) models.RentalBooking {
	clone := booking
	clone.AddOns = make([]models.RentalAddOn, len(booking.AddOns))
	copy(clone.AddOns, booking.AddOns)
	return clone
}
