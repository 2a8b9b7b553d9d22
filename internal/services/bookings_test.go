package services

import (
	"errors"
	"testing"
	"time"

	"github.com/adityapw/rentafleet-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBookingService(now *time.Time, opts ...BookingOption) *BookingService {
	opts = append([]BookingOption{WithClock(func() time.Time { return *now })}, opts...)
	return NewBookingService(DefaultAddOnCatalog(), opts...)
}

func baseRequest() models.CreateRentalBookingRequest {
	return models.CreateRentalBookingRequest{
		VehicleID:          "VEH0001",
		VehicleDailyPrice:  100000,
		PickUpTime:         "2025-11-01T08:00",
		DropOffTime:        "2025-11-03T09:00", // 49 hours -> 3 days
		PickUpLocation:     "Jakarta",
		DropOffLocation:    "Bandung",
		CapacityNeeded:     4,
		TransmissionNeeded: "Automatic",
		IncludeDriver:      true,
	}
}

func TestCreateBookingComputesTotal(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	booking := svc.Create(baseRequest())

	assert.Equal(t, "VR000001", booking.ID)
	assert.Equal(t, models.BookingStatusUpcoming, booking.Status)
	// 3 days x 100000 base + 3 days x 100000 driver
	assert.Equal(t, 600000.0, booking.TotalPrice)
	assert.Equal(t, now, booking.CreatedAt)
	assert.Equal(t, now, booking.UpdatedAt)
}

func TestCreateBookingWithAddOns(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := NewBookingService(NewAddOnCatalog([]models.RentalAddOn{
		{ID: "A1", Name: "GPS", Price: 50000},
		{ID: "A2", Name: "Roof Box", Price: 75000},
	}), WithClock(func() time.Time { return now }))

	req := baseRequest()
	req.DropOffTime = "2025-11-01T10:00" // 1 day
	req.IncludeDriver = false
	req.AddOnIDs = []string{"A1", "A2"}

	booking := svc.Create(req)

	// 100000 base + 0 driver + 125000 add-ons
	assert.Equal(t, 225000.0, booking.TotalPrice)
	assert.Len(t, booking.AddOns, 2)
}

func TestCreateBookingDropsUnknownAndDuplicateAddOns(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	req := baseRequest()
	req.IncludeDriver = false
	req.DropOffTime = "2025-11-01T10:00"
	req.AddOnIDs = []string{"ADD001", "ADD001", "ADD999"}

	booking := svc.Create(req)

	require.Len(t, booking.AddOns, 1)
	assert.Equal(t, "ADD001", booking.AddOns[0].ID)
	// 100000 base + GPS charged once
	assert.Equal(t, 150000.0, booking.TotalPrice)
}

func TestGetRehydratesAddOnsAgainstCurrentCatalog(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	req := baseRequest()
	req.IncludeDriver = false
	req.DropOffTime = "2025-11-01T10:00"
	req.AddOnIDs = []string{"ADD001"}
	created := svc.Create(req)
	assert.Equal(t, 150000.0, created.TotalPrice)

	svc.SetCatalog(NewAddOnCatalog([]models.RentalAddOn{
		{ID: "ADD001", Name: "GPS", Price: 60000},
	}))

	booking, err := svc.Get(created.ID)
	require.NoError(t, err)
	// Displayed add-on price follows the catalog, the charged total stays frozen
	assert.Equal(t, 60000.0, booking.AddOns[0].Price)
	assert.Equal(t, 150000.0, booking.TotalPrice)
}

func TestGetUnknownBooking(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	_, err := svc.Get("VR999999")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateRecomputesTotalFromScratch(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	req := baseRequest()
	req.AddOnIDs = []string{"ADD001", "ADD002"}
	created := svc.Create(req)
	assert.Equal(t, 730000.0, created.TotalPrice) // 300000 + 300000 + 130000

	now = now.Add(time.Hour)
	updated, err := svc.Update(models.UpdateRentalBookingRequest{
		ID:                 created.ID,
		VehicleID:          created.VehicleID,
		VehicleDailyPrice:  100000,
		PickUpTime:         "2025-11-01T08:00",
		DropOffTime:        "2025-11-01T10:00", // now a 1-day rental
		PickUpLocation:     created.PickUpLocation,
		DropOffLocation:    created.DropOffLocation,
		CapacityNeeded:     created.CapacityNeeded,
		TransmissionNeeded: created.TransmissionNeeded,
		IncludeDriver:      false,
		AddOnIDs:           nil,
	})
	require.NoError(t, err)

	// No stale base, driver or add-on components linger
	assert.Equal(t, 100000.0, updated.TotalPrice)
	assert.Empty(t, updated.AddOns)
	assert.Equal(t, models.BookingStatusUpcoming, updated.Status)
	assert.Equal(t, now, updated.UpdatedAt)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateAddOnsIsAdditive(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	req := baseRequest()
	created := svc.Create(req)
	assert.Equal(t, 600000.0, created.TotalPrice)

	first, err := svc.UpdateAddOns(created.ID, []string{"ADD001"})
	require.NoError(t, err)
	assert.Equal(t, 650000.0, first.TotalPrice)
	require.Len(t, first.AddOns, 1)

	// The selection is replaced but the new total is added on top of
	// the existing price, not recomputed
	second, err := svc.UpdateAddOns(created.ID, []string{"ADD002"})
	require.NoError(t, err)
	assert.Equal(t, 730000.0, second.TotalPrice)
	require.Len(t, second.AddOns, 1)
	assert.Equal(t, "ADD002", second.AddOns[0].ID)
}

func TestMutationsRejectedOutsideUpcoming(t *testing.T) {
	for _, status := range []models.BookingStatus{models.BookingStatusOngoing, models.BookingStatusDone} {
		t.Run(string(status), func(t *testing.T) {
			now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
			svc := testBookingService(&now)

			created := svc.Create(baseRequest())
			_, err := svc.UpdateStatus(created.ID, models.BookingStatusOngoing)
			require.NoError(t, err)
			if status == models.BookingStatusDone {
				_, err = svc.UpdateStatus(created.ID, models.BookingStatusDone)
				require.NoError(t, err)
			}
			before, err := svc.Get(created.ID)
			require.NoError(t, err)

			_, err = svc.Update(models.UpdateRentalBookingRequest{ID: created.ID})
			var stateErr *InvalidStateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, created.ID, stateErr.BookingID)

			_, err = svc.UpdateAddOns(created.ID, []string{"ADD001"})
			require.ErrorAs(t, err, &stateErr)

			assert.False(t, svc.Delete(created.ID))

			after, err := svc.Get(created.ID)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	now := time.Date(2025, 11, 1, 7, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	created := svc.Create(baseRequest())

	ongoing, err := svc.UpdateStatus(created.ID, models.BookingStatusOngoing)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusOngoing, ongoing.Status)
	assert.Equal(t, created.TotalPrice, ongoing.TotalPrice)

	// Returned before the scheduled drop-off: no penalty
	done, err := svc.UpdateStatus(created.ID, models.BookingStatusDone)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusDone, done.Status)
	assert.Equal(t, created.TotalPrice, done.TotalPrice)
}

func TestLateReturnPenalty(t *testing.T) {
	now := time.Date(2025, 11, 1, 7, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	created := svc.Create(baseRequest())
	_, err := svc.UpdateStatus(created.ID, models.BookingStatusOngoing)
	require.NoError(t, err)

	// Drop-off was 2025-11-03T09:00; return exactly 5 hours late
	now = time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)
	done, err := svc.UpdateStatus(created.ID, models.BookingStatusDone)
	require.NoError(t, err)

	assert.Equal(t, created.TotalPrice+100000, done.TotalPrice)
}

func TestCompletedBookingIsIdempotent(t *testing.T) {
	now := time.Date(2025, 11, 1, 7, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	created := svc.Create(baseRequest())
	_, err := svc.UpdateStatus(created.ID, models.BookingStatusOngoing)
	require.NoError(t, err)

	now = time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)
	first, err := svc.UpdateStatus(created.ID, models.BookingStatusDone)
	require.NoError(t, err)

	// A repeated advance must not stack another penalty
	now = now.Add(6 * time.Hour)
	second, err := svc.UpdateStatus(created.ID, models.BookingStatusDone)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUnlistedTransitionsAreIgnored(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	created := svc.Create(baseRequest())

	// Upcoming cannot jump straight to Done
	booking, err := svc.UpdateStatus(created.ID, models.BookingStatusDone)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusUpcoming, booking.Status)
	assert.Equal(t, created.TotalPrice, booking.TotalPrice)

	_, err = svc.UpdateStatus(created.ID, models.BookingStatusOngoing)
	require.NoError(t, err)

	// Ongoing cannot move backward
	booking, err = svc.UpdateStatus(created.ID, models.BookingStatusUpcoming)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusOngoing, booking.Status)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	_, err := svc.UpdateStatus("VR999999", models.BookingStatusOngoing)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	created := svc.Create(baseRequest())

	assert.False(t, svc.Delete("VR999999"))
	assert.True(t, svc.Delete(created.ID))

	_, err := svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSortByCreatedAt(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	first := svc.Create(baseRequest())
	now = now.Add(time.Hour)
	second := svc.Create(baseRequest())
	now = now.Add(time.Hour)
	third := svc.Create(baseRequest())

	newestFirst := svc.GetAll()
	require.Len(t, newestFirst, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID},
		[]string{newestFirst[0].ID, newestFirst[1].ID, newestFirst[2].ID})

	oldestFirst := svc.Sort("asc")
	assert.Equal(t, first.ID, oldestFirst[0].ID)
	assert.Equal(t, third.ID, oldestFirst[2].ID)
}

func TestChart(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	svc := testBookingService(&now)

	svc.Create(baseRequest()) // Jan 2025
	now = time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	svc.Create(baseRequest()) // Apr 2025
	now = time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)
	svc.Create(baseRequest()) // Dec 2025
	now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.Create(baseRequest()) // other year, excluded

	quarterly := svc.Chart(models.ChartPeriodQuarterly, 2025)
	assert.Equal(t, []models.ChartBucket{
		{Label: "Q1", Count: 1},
		{Label: "Q2", Count: 1},
		{Label: "Q3", Count: 0},
		{Label: "Q4", Count: 1},
	}, quarterly)

	monthly := svc.Chart(models.ChartPeriodMonthly, 2025)
	require.Len(t, monthly, 12)
	assert.Equal(t, models.ChartBucket{Label: "Jan", Count: 1}, monthly[0])
	assert.Equal(t, models.ChartBucket{Label: "Apr", Count: 1}, monthly[3])
	assert.Equal(t, models.ChartBucket{Label: "Jul", Count: 0}, monthly[6])
	assert.Equal(t, models.ChartBucket{Label: "Dec", Count: 1}, monthly[11])
}

func TestInvalidStateErrorMessage(t *testing.T) {
	err := NewInvalidStateError("VR000001", models.BookingStatusDone)

	var stateErr *InvalidStateError
	require.True(t, errors.As(err, &stateErr))
	assert.Contains(t, err.Error(), "VR000001")
	assert.Contains(t, err.Error(), "Done")
}
