package models

// Vehicle is an immutable catalog entry. Stats range over 0..10.
type Vehicle struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Price        int64  `json:"price"`
	Speed        int    `json:"speed"`
	Acceleration int    `json:"acceleration"`
	Handling     int    `json:"handling"`
}
