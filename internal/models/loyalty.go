package models

import "time"

// LoyaltyAccount holds a customer's redeemable point balance
type LoyaltyAccount struct {
	CustomerID string `json:"customerId"`
	Points     int    `json:"points"`
}

// Coupon is a discount purchasable with loyalty points
type Coupon struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	PercentOff  float64   `json:"percentOff"`
	CreatedAt   time.Time `json:"createdDate"`
	UpdatedAt   time.Time `json:"updatedDate"`
}

type CouponRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Points      int     `json:"points"`
	PercentOff  float64 `json:"percentOff"`
}

// PurchasedCoupon is a voucher issued against a coupon, redeemable once
type PurchasedCoupon struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	CustomerID  string     `json:"customerId"`
	CouponID    string     `json:"couponId"`
	PurchasedAt time.Time  `json:"purchasedDate"`
	UsedAt      *time.Time `json:"usedDate"`
}
