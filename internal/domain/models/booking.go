package models

// Booking ties a customer to a trip or a package. ItemRef holds the stored
// "<kind>-<id>" reference (see domain.ItemRef). PaymentStatus defaults to
// "pending" and is never updated by this system.
type Booking struct {
	ID            int64  `json:"id"`
	CustomerID    int64  `json:"customer_id"`
	ItemRef       string `json:"item_ref"`
	Transport     string `json:"transport"`
	Lodging       string `json:"lodging"`
	PaymentStatus string `json:"payment_status"`
}
