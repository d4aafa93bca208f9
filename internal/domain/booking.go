package domain

import "time"

// Booking is a finalized, paid trip. It is related to a Lead only loosely
// by shared email; there is no foreign key in the conversion flow.
type Booking struct {
	ID string `json:"id"`

	BookingType BookingType `json:"booking_type"`

	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	PickupDate      string  `json:"pickup_date"`
	PickupTime      string  `json:"pickup_time"`
	Passengers      int     `json:"passengers"`
	Luggage         int     `json:"luggage"`
	FlightNumber    *string `json:"flight_number,omitempty"`
	ChildSeat       bool    `json:"child_seat"`
	DurationHours   int     `json:"duration_hours"`
	VehicleType     string  `json:"vehicle_type"`

	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`

	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency"`

	LeadID *string `json:"lead_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
