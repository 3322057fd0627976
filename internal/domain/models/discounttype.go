package models

// DiscountType has a globally unique name.
type DiscountType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
