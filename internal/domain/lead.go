package domain

import "time"

type BookingType string

const (
	BookingStandard BookingType = "standard"
	BookingHourly   BookingType = "hourly"
)

type LeadStatus string

const (
	LeadDraft     LeadStatus = "draft"
	LeadConverted LeadStatus = "converted"
)

// Lead is a prospective booking captured before payment. Attribution fields
// are written once at creation and never mutated afterwards.
type Lead struct {
	ID string `json:"id"`

	BookingType BookingType `json:"booking_type"`

	// Trip details. Hourly hire uses pickup + duration + vehicle type,
	// a standard transfer uses the pickup/dropoff pair.
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

	// Contact. At least one of Email/ContactNumber must be present for
	// the record to be persisted at all.
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`

	QuotedPriceCents int64  `json:"quoted_price_cents"`
	Currency         string `json:"currency"`

	UTMSource     *string    `json:"utm_source,omitempty"`
	UTMMedium     *string    `json:"utm_medium,omitempty"`
	UTMCampaign   *string    `json:"utm_campaign,omitempty"`
	UTMTerm       *string    `json:"utm_term,omitempty"`
	UTMContent    *string    `json:"utm_content,omitempty"`
	UTMCapturedAt *time.Time `json:"utm_captured_at,omitempty"`

	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (l *Lead) IsConverted() bool {
	return l.Status == LeadConverted
}

// QuotedPrice reports the quoted price in major currency units.
func (l *Lead) QuotedPrice() float64 {
	return float64(l.QuotedPriceCents) / 100
}
