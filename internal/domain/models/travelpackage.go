package models

// TravelPackage is a combo deal: destination plus discount for a party.
type TravelPackage struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Destination  string  `json:"destination"`
	PartySize    int     `json:"party_size"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discount_type"`
	Price        float64 `json:"price"`
}
