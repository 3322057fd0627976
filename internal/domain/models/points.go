package models

// PointsEntry is one row of the append-only loyalty ledger. Points is a
// signed delta: +10 per completed booking, negative on redemption.
type PointsEntry struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customer_id"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	CreatedAt   string `json:"created_at"`
}
