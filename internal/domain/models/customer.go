package models

// Customer carries the loyalty points balance. NationalID is globally unique;
// Points may only change together with a points_ledger entry.
type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes,omitempty"`
	Points     int    `json:"points"`
}
