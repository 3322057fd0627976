package services

import (
	"database/sql"
	"errors"
	"fmt"

	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/utils"
)

const redeemDescription = "points redeemed"

// PointsService handles redemption: balance check, decrement, ledger append.
// Like the booking flow, the two writes are sequential without a transaction
// and a ledger failure after a successful decrement is reported as its own
// tier.
type PointsService struct {
	Points    repositories.PointsRepository
	RequestID string
}

// Redeem takes a positive amount of points off the customer's balance.
func (s PointsService) Redeem(customerID int64, points int) error {
	balance, err := s.Points.Balance(customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "customer", Err: err}
		}
		return err
	}

	if balance < points {
		return domain.InsufficientPointsError{Balance: balance, Requested: points}
	}

	if err := s.Points.Add(customerID, -points); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "points", "redeem", fmt.Sprintf("customer_id=%d points=%d", customerID, points))

	if err := s.Points.AppendEntry(customerID, redeemDescription, -points); err != nil {
		utils.LogEvent(s.RequestID, "points", "record_history", "failed: "+err.Error())
		return domain.PartialFailureError{
			Stage: "ledger",
			Msg:   "points redeemed, but failed to record history",
			Err:   err,
		}
	}

	return nil
}
