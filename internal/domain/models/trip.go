package models

// Trip is a bookable journey offered by the agency. Trips are created and
// read, never updated or deleted.
type Trip struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Transport   string  `json:"transport"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
}
