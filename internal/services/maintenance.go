package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/adityapw/rentafleet-core/internal/models"
	"go.uber.org/zap"
)

// MaintenanceService tracks service visits for fleet vehicles
type MaintenanceService struct {
	mu      sync.RWMutex
	records []models.MaintenanceRecord
	lastSeq int

	vehicles *VehicleService
	now      func() time.Time
	logger   *zap.Logger
}

type MaintenanceOption func(*MaintenanceService)

// WithMaintenanceClock overrides the time source
func WithMaintenanceClock(now func() time.Time) MaintenanceOption {
	return func(s *MaintenanceService) { s.now = now }
}

// WithMaintenanceLogger attaches a logger to the service
func WithMaintenanceLogger(logger *zap.Logger) MaintenanceOption {
	return func(s *MaintenanceService) { s.logger = logger }
}

// NewMaintenanceService creates a maintenance tracker that resolves
// vehicle display names through the given fleet catalog
func NewMaintenanceService(vehicles *VehicleService, opts ...MaintenanceOption) *MaintenanceService {
	s := &MaintenanceService{
		vehicles: vehicles,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create schedules a maintenance visit
func (s *MaintenanceService) Create(req models.CreateMaintenanceRequest) models.MaintenanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record := models.MaintenanceRecord{
		ID:             s.nextID(),
		VehicleID:      req.VehicleID,
		VehicleDisplay: s.vehicleDisplay(req.VehicleID),
		ServiceDate:    req.ServiceDate,
		Description:    req.Description,
		Cost:           req.Cost,
		VendorNote:     req.VendorNote,
		Status:         models.MaintenanceStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.records = append(s.records, record)
	s.logger.Info("maintenance scheduled",
		zap.String("maintenanceId", record.ID),
		zap.String("vehicleId", record.VehicleID))
	return record
}

// Get looks up a maintenance record by id
func (s *MaintenanceService) Get(id string) (models.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.MaintenanceRecord{}, ErrMaintenanceNotFound
	}
	return s.records[idx], nil
}

// GetAll returns every maintenance record
func (s *MaintenanceService) GetAll() []models.MaintenanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.MaintenanceRecord, len(s.records))
	copy(records, s.records)
	return records
}

// Update replaces the details of a maintenance record
func (s *MaintenanceService) Update(req models.UpdateMaintenanceRequest) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(req.ID)
	if idx < 0 {
		return models.MaintenanceRecord{}, ErrMaintenanceNotFound
	}
	record := &s.records[idx]

	record.VehicleID = req.VehicleID
	record.VehicleDisplay = s.vehicleDisplay(req.VehicleID)
	record.ServiceDate = req.ServiceDate
	record.Description = req.Description
	record.Cost = req.Cost
	record.VendorNote = req.VendorNote
	record.UpdatedAt = s.now()

	return *record, nil
}

// UpdateStatus moves a record to the given workflow status
func (s *MaintenanceService) UpdateStatus(id string, status models.MaintenanceStatus) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.MaintenanceRecord{}, ErrMaintenanceNotFound
	}
	record := &s.records[idx]
	record.Status = status
	record.UpdatedAt = s.now()
	return *record, nil
}

// Delete removes a maintenance record, reporting success
func (s *MaintenanceService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return true
}

// vehicleDisplay falls back to the raw id when the vehicle is unknown
func (s *MaintenanceService) vehicleDisplay(vehicleID string) string {
	vehicle, err := s.vehicles.Get(vehicleID)
	if err != nil {
		return vehicleID
	}
	return fmt.Sprintf("%s %s (%s)", vehicle.Brand, vehicle.Model, vehicle.LicensePlate)
}

func (s *MaintenanceService) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MaintenanceService) nextID() string {
	s.lastSeq++
	return fmt.Sprintf("MTN%04d", s.lastSeq)
}
