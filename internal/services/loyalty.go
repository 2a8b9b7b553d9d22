package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/adityapw/rentafleet-core/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoyaltyService manages customer point balances, the coupon catalog
// and purchased vouchers
type LoyaltyService struct {
	mu        sync.RWMutex
	points    map[string]int
	coupons   []models.Coupon
	purchased []models.PurchasedCoupon
	lastSeq   int

	now    func() time.Time
	logger *zap.Logger
}

type LoyaltyOption func(*LoyaltyService)

// WithLoyaltyClock overrides the time source
func WithLoyaltyClock(now func() time.Time) LoyaltyOption {
	return func(s *LoyaltyService) { s.now = now }
}

// WithLoyaltyLogger attaches a logger to the service
func WithLoyaltyLogger(logger *zap.Logger) LoyaltyOption {
	return func(s *LoyaltyService) { s.logger = logger }
}

// NewLoyaltyService creates a loyalty service with empty balances
func NewLoyaltyService(opts ...LoyaltyOption) *LoyaltyService {
	s := &LoyaltyService{
		points: make(map[string]int),
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPoints returns a customer's current balance
func (s *LoyaltyService) GetPoints(customerID string) models.LoyaltyAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.LoyaltyAccount{CustomerID: customerID, Points: s.points[customerID]}
}

// AddPoints credits a customer's balance and returns the new total
func (s *LoyaltyService) AddPoints(customerID string, points int) models.LoyaltyAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points[customerID] += points
	s.logger.Info("loyalty points added",
		zap.String("customerId", customerID),
		zap.Int("points", points),
		zap.Int("balance", s.points[customerID]))
	return models.LoyaltyAccount{CustomerID: customerID, Points: s.points[customerID]}
}

// Coupons returns the coupon catalog
func (s *LoyaltyService) Coupons() []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coupons := make([]models.Coupon, len(s.coupons))
	copy(coupons, s.coupons)
	return coupons
}

// CreateCoupon adds a coupon to the catalog
func (s *LoyaltyService) CreateCoupon(req models.CouponRequest) models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	coupon := models.Coupon{
		ID:          s.nextID("CPN"),
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		PercentOff:  req.PercentOff,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.coupons = append(s.coupons, coupon)
	return coupon
}

// UpdateCoupon replaces the details of an existing coupon
func (s *LoyaltyService) UpdateCoupon(id string, req models.CouponRequest) (models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coupons {
		if s.coupons[i].ID != id {
			continue
		}
		coupon := &s.coupons[i]
		coupon.Name = req.Name
		coupon.Description = req.Description
		coupon.Points = req.Points
		coupon.PercentOff = req.PercentOff
		coupon.UpdatedAt = s.now()
		return *coupon, nil
	}
	return models.Coupon{}, ErrCouponNotFound
}

// PurchaseCoupon exchanges points for a single-use voucher code
func (s *LoyaltyService) PurchaseCoupon(customerID, couponID string) (models.PurchasedCoupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var coupon *models.Coupon
	for i := range s.coupons {
		if s.coupons[i].ID == couponID {
			coupon = &s.coupons[i]
			break
		}
	}
	if coupon == nil {
		return models.PurchasedCoupon{}, ErrCouponNotFound
	}
	if s.points[customerID] < coupon.Points {
		return models.PurchasedCoupon{}, ErrInsufficientPoints
	}

	s.points[customerID] -= coupon.Points
	voucher := models.PurchasedCoupon{
		ID:          s.nextID("PUR"),
		Code:        uuid.NewString(),
		CustomerID:  customerID,
		CouponID:    coupon.ID,
		PurchasedAt: s.now(),
	}
	s.purchased = append(s.purchased, voucher)

	s.logger.Info("coupon purchased",
		zap.String("customerId", customerID),
		zap.String("couponId", coupon.ID),
		zap.Int("balance", s.points[customerID]))
	return voucher, nil
}

// PurchasedCoupons lists a customer's vouchers
func (s *LoyaltyService) PurchasedCoupons(customerID string) []models.PurchasedCoupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vouchers := make([]models.PurchasedCoupon, 0)
	for _, voucher := range s.purchased {
		if voucher.CustomerID == customerID {
			vouchers = append(vouchers, voucher)
		}
	}
	return vouchers
}

// UseCoupon redeems a voucher code exactly once
func (s *LoyaltyService) UseCoupon(code, customerID string) (models.PurchasedCoupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.purchased {
		voucher := &s.purchased[i]
		if voucher.Code != code || voucher.CustomerID != customerID {
			continue
		}
		if voucher.UsedAt != nil {
			return models.PurchasedCoupon{}, ErrVoucherAlreadyUsed
		}
		used := s.now()
		voucher.UsedAt = &used
		return *voucher, nil
	}
	return models.PurchasedCoupon{}, ErrVoucherNotFound
}

func (s *LoyaltyService) nextID(prefix string) string {
	s.lastSeq++
	return fmt.Sprintf("%s%04d", prefix, s.lastSeq)
}
