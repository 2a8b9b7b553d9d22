package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adityapw/rentafleet-core/internal/models"
	"go.uber.org/zap"
)

// VehicleService owns the in-memory fleet catalog
type VehicleService struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
	lastSeq  int

	now    func() time.Time
	logger *zap.Logger
}

type VehicleOption func(*VehicleService)

// WithVehicleClock overrides the time source
func WithVehicleClock(now func() time.Time) VehicleOption {
	return func(s *VehicleService) { s.now = now }
}

// WithVehicleLogger attaches a logger to the service
func WithVehicleLogger(logger *zap.Logger) VehicleOption {
	return func(s *VehicleService) { s.logger = logger }
}

// NewVehicleService creates a vehicle service with an empty fleet
func NewVehicleService(opts ...VehicleOption) *VehicleService {
	s := &VehicleService{
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new fleet vehicle as Available
func (s *VehicleService) Create(req models.VehicleRequest) models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	vehicle := models.Vehicle{
		ID:               s.nextID(),
		RentalVendorID:   req.RentalVendorID,
		RentalVendorName: defaultString(req.RentalVendorName, "Unknown Vendor"),
		Type:             req.Type,
		Brand:            defaultString(req.Brand, "Unknown Brand"),
		Model:            defaultString(req.Model, "Unknown Model"),
		ProductionYear:   req.ProductionYear,
		Location:         req.Location,
		LicensePlate:     req.LicensePlate,
		Capacity:         req.Capacity,
		Transmission:     req.Transmission,
		FuelType:         req.FuelType,
		DailyPrice:       req.DailyPrice,
		Status:           models.VehicleStatusAvailable,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if vehicle.ProductionYear == 0 {
		vehicle.ProductionYear = now.Year()
	}

	s.vehicles = append(s.vehicles, vehicle)
	s.logger.Info("vehicle registered",
		zap.String("vehicleId", vehicle.ID),
		zap.String("licensePlate", vehicle.LicensePlate))
	return vehicle
}

// Get looks up a vehicle by id
func (s *VehicleService) Get(id string) (models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	return s.vehicles[idx], nil
}

// GetAll returns every registered vehicle
func (s *VehicleService) GetAll() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicles := make([]models.Vehicle, len(s.vehicles))
	copy(vehicles, s.vehicles)
	return vehicles
}

// Update replaces the descriptive fields of a vehicle
func (s *VehicleService) Update(id string, req models.VehicleRequest) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	vehicle := &s.vehicles[idx]

	vehicle.RentalVendorID = req.RentalVendorID
	vehicle.RentalVendorName = defaultString(req.RentalVendorName, vehicle.RentalVendorName)
	vehicle.Type = req.Type
	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.ProductionYear = req.ProductionYear
	vehicle.Location = req.Location
	vehicle.LicensePlate = req.LicensePlate
	vehicle.Capacity = req.Capacity
	vehicle.Transmission = req.Transmission
	vehicle.FuelType = req.FuelType
	vehicle.DailyPrice = req.DailyPrice
	vehicle.UpdatedAt = s.now()

	return *vehicle, nil
}

// SetStatus moves a vehicle between Available, In Use and Unavailable
func (s *VehicleService) SetStatus(id string, status models.VehicleStatus) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	vehicle := &s.vehicles[idx]
	vehicle.Status = status
	vehicle.UpdatedAt = s.now()
	return *vehicle, nil
}

// Delete retires a vehicle by marking it Unavailable. In-use vehicles
// cannot be retired.
func (s *VehicleService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrVehicleNotFound
	}
	vehicle := &s.vehicles[idx]
	if vehicle.Status == models.VehicleStatusInUse {
		return ErrVehicleInUse
	}

	vehicle.Status = models.VehicleStatusUnavailable
	vehicle.UpdatedAt = s.now()
	s.logger.Info("vehicle retired", zap.String("vehicleId", id))
	return nil
}

// Filter returns vehicles matching a free-text keyword and/or type,
// newest first
func (s *VehicleService) Filter(keyword, vehicleType string) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]models.Vehicle, 0, len(s.vehicles))
	for _, vehicle := range s.vehicles {
		if !matchesKeyword(vehicle, keyword) {
			continue
		}
		if vehicleType != "" && !strings.EqualFold(vehicle.Type, vehicleType) {
			continue
		}
		matches = append(matches, vehicle)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches
}

// Sort returns the fleet ordered by registration time
func (s *VehicleService) Sort(order string) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]models.Vehicle, len(s.vehicles))
	copy(sorted, s.vehicles)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == "asc" {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func matchesKeyword(vehicle models.Vehicle, keyword string) bool {
	if keyword == "" {
		return true
	}
	keyword = strings.ToLower(keyword)
	for _, field := range []string{vehicle.Brand, vehicle.Model, vehicle.Location, vehicle.LicensePlate} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

func (s *VehicleService) indexOf(id string) int {
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *VehicleService) nextID() string {
	s.lastSeq++
	return fmt.Sprintf("VEH%04d", s.lastSeq)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
