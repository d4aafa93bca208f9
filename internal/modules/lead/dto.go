package lead

import "time"

// AttributionPayload is the utm block attached to a create submission.
// CapturedAt carries the client store's first-touch timestamp; when it is
// missing the service stamps the record itself.
type AttributionPayload struct {
	UTMSource   string     `json:"utm_source"`
	UTMMedium   string     `json:"utm_medium"`
	UTMCampaign string     `json:"utm_campaign"`
	UTMTerm     string     `json:"utm_term"`
	UTMContent  string     `json:"utm_content"`
	CapturedAt  *time.Time `json:"captured_at,omitempty"`
}

// UpsertLeadRequest is a patch-shaped payload: every field is optional and
// nil means "leave unchanged" on update / "explicit zero" on create.
type UpsertLeadRequest struct {
	ID string `json:"id"`

	BookingType *string `json:"booking_type"`

	PickupLocation  *string `json:"pickup_location"`
	DropoffLocation *string `json:"dropoff_location"`
	PickupDate      *string `json:"pickup_date"`
	PickupTime      *string `json:"pickup_time"`
	Passengers      *int    `json:"passengers"`
	Luggage         *int    `json:"luggage"`
	FlightNumber    *string `json:"flight_number"`
	ChildSeat       *bool   `json:"child_seat"`
	DurationHours   *int    `json:"duration_hours"`
	VehicleType     *string `json:"vehicle_type"`

	FullName      *string `json:"full_name"`
	Email         *string `json:"email"`
	ContactNumber *string `json:"contact_number"`

	// QuotedPrice crosses the boundary in major currency units.
	QuotedPrice *float64 `json:"quoted_price"`
	Currency    *string  `json:"currency"`

	UTM *AttributionPayload `json:"utm"`
}

// hasContact reports whether the payload carries any way to reach the lead.
func (r UpsertLeadRequest) hasContact() bool {
	if r.Email != nil && *r.Email != "" {
		return true
	}
	if r.ContactNumber != nil && *r.ContactNumber != "" {
		return true
	}
	return false
}
