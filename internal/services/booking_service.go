package services

import (
	"strconv"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// bookingReward is granted to the customer once a booking row is persisted.
const bookingReward = 10

const bookingRewardDescription = "booking completed"

// BookingService runs the booking write sequence: insert the booking, grant
// the points reward, append the ledger entry. The three steps are sequential
// and NOT wrapped in a transaction; when a later step fails the earlier
// effects stay applied and the error names the failed tier. Callers must not
// upgrade this to all-or-nothing.
type BookingService struct {
	Bookings  repositories.BookingRepository
	Points    repositories.PointsRepository
	RequestID string
}

// Create returns the new booking id even when a later tier failed, so the
// caller can still reference the persisted row.
func (s BookingService) Create(customerID int64, ref domain.ItemRef, transport, lodging string) (int64, error) {
	booking := models.Booking{
		CustomerID: customerID,
		ItemRef:    ref.String(),
		Transport:  transport,
		Lodging:    lodging,
	}

	id, err := s.Bookings.Create(booking)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", "booking_id="+strconv.FormatInt(id, 10)+" item="+booking.ItemRef)

	if err := s.Points.Add(customerID, bookingReward); err != nil {
		utils.LogEvent(s.RequestID, "booking", "grant_points", "failed: "+err.Error())
		return id, domain.PartialFailureError{
			Stage: "points",
			Msg:   "booking created, but failed to update points",
			Err:   err,
		}
	}

	if err := s.Points.AppendEntry(customerID, bookingRewardDescription, bookingReward); err != nil {
		utils.LogEvent(s.RequestID, "booking", "record_history", "failed: "+err.Error())
		return id, domain.PartialFailureError{
			Stage: "ledger",
			Msg:   "booking created, points granted, but failed to record history",
			Err:   err,
		}
	}

	return id, nil
}
