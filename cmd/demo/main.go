package main

import (
	"time"

	"github.com/adityapw/rentafleet-core/internal/config"
	"github.com/adityapw/rentafleet-core/internal/models"
	"github.com/adityapw/rentafleet-core/internal/services"
	"github.com/adityapw/rentafleet-core/pkg/utils"
	"go.uber.org/zap"
)

// Walks a rental booking through its full lifecycle against seeded
// fleet and add-on catalogs.
func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Env)
	defer logger.Sync()

	catalog := services.DefaultAddOnCatalog()
	vehicles := services.NewVehicleService(services.WithVehicleLogger(logger))
	bookings := services.NewBookingService(catalog,
		services.WithBookingLogger(logger),
		services.WithDriverRate(cfg.DriverFeePerDay),
		services.WithLatePenaltyRate(cfg.LatePenaltyPerHour))
	maintenance := services.NewMaintenanceService(vehicles, services.WithMaintenanceLogger(logger))
	loyalty := services.NewLoyaltyService(services.WithLoyaltyLogger(logger))

	vehicle := vehicles.Create(models.VehicleRequest{
		RentalVendorID:   1,
		RentalVendorName: "Nusantara Rentals",
		Type:             "SUV",
		Brand:            "Toyota",
		Model:            "Fortuner",
		ProductionYear:   2023,
		Location:         "Jakarta",
		LicensePlate:     "B 1234 XY",
		Capacity:         7,
		Transmission:     "Automatic",
		FuelType:         "Diesel",
		DailyPrice:       850000,
	})

	pickUp := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	dropOff := time.Now().Add(73 * time.Hour).Format(time.RFC3339)

	preview := utils.PreviewRentalPrice(vehicle.DailyPrice, pickUp, dropOff, true, cfg.DriverFeePerDay)
	logger.Info("price preview",
		zap.Int("days", preview.Days),
		zap.Float64("basePrice", preview.BasePrice),
		zap.Float64("driverFee", preview.DriverFee),
		zap.Float64("grandTotal", preview.GrandTotal))

	booking := bookings.Create(models.CreateRentalBookingRequest{
		VehicleID:          vehicle.ID,
		VehicleDailyPrice:  vehicle.DailyPrice,
		PickUpTime:         pickUp,
		DropOffTime:        dropOff,
		PickUpLocation:     "Soekarno-Hatta Airport",
		DropOffLocation:    "Bandung",
		CapacityNeeded:     5,
		TransmissionNeeded: "Automatic",
		IncludeDriver:      true,
		AddOnIDs:           []string{"ADD001", "ADD002"},
	})

	if _, err := vehicles.SetStatus(vehicle.ID, models.VehicleStatusInUse); err != nil {
		logger.Fatal("failed to mark vehicle in use", zap.Error(err))
	}
	if _, err := bookings.UpdateStatus(booking.ID, models.BookingStatusOngoing); err != nil {
		logger.Fatal("failed to start rental", zap.Error(err))
	}
	done, err := bookings.UpdateStatus(booking.ID, models.BookingStatusDone)
	if err != nil {
		logger.Fatal("failed to complete rental", zap.Error(err))
	}
	logger.Info("rental completed",
		zap.String("bookingId", done.ID),
		zap.Float64("totalPrice", done.TotalPrice))

	loyalty.AddPoints("CUST001", 250)
	coupon := loyalty.CreateCoupon(models.CouponRequest{
		Name:        "Weekend Getaway",
		Description: "10% off the next rental",
		Points:      200,
		PercentOff:  10,
	})
	voucher, err := loyalty.PurchaseCoupon("CUST001", coupon.ID)
	if err != nil {
		logger.Fatal("failed to purchase coupon", zap.Error(err))
	}
	logger.Info("voucher issued", zap.String("code", voucher.Code))

	maintenance.Create(models.CreateMaintenanceRequest{
		VehicleID:   vehicle.ID,
		ServiceDate: time.Now().Add(30 * 24 * time.Hour).Format("2006-01-02"),
		Description: "Post-rental inspection",
		Cost:        350000,
	})

	for _, bucket := range bookings.Chart(models.ChartPeriodQuarterly, time.Now().Year()) {
		logger.Info("bookings per quarter",
			zap.String("label", bucket.Label),
			zap.Int("count", bucket.Count))
	}
}
