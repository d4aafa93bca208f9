package domain

import "time"

// RoutePrice is one row of the fixed price list. Lookup is keyed on the
// (pickup, dropoff, vehicle type) triple.
type RoutePrice struct {
	ID          int64     `json:"id"`
	Pickup      string    `json:"pickup"`
	Dropoff     string    `json:"dropoff"`
	VehicleType string    `json:"vehicle_type"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
