package notify

import (
	"fmt"
	"strings"

	"transferhub/internal/domain"
)

// BookingConfirmation assembles the confirmation email for a paid booking.
func BookingConfirmation(b *domain.Booking) Message {
	var sb strings.Builder

	name := b.FullName
	if name == "" {
		name = "there"
	}

	fmt.Fprintf(&sb, "Hi %s,\n\n", name)
	sb.WriteString("Your booking is confirmed. Here are the details:\n\n")

	if b.BookingType == domain.BookingHourly {
		fmt.Fprintf(&sb, "Service: Hourly hire (%d hours)\n", b.DurationHours)
		fmt.Fprintf(&sb, "Pickup: %s\n", b.PickupLocation)
		if b.VehicleType != "" {
			fmt.Fprintf(&sb, "Vehicle: %s\n", b.VehicleType)
		}
	} else {
		sb.WriteString("Service: Transfer\n")
		fmt.Fprintf(&sb, "Pickup: %s\n", b.PickupLocation)
		fmt.Fprintf(&sb, "Dropoff: %s\n", b.DropoffLocation)
	}

	if b.PickupDate != "" {
		fmt.Fprintf(&sb, "Date: %s", b.PickupDate)
		if b.PickupTime != "" {
			fmt.Fprintf(&sb, " at %s", b.PickupTime)
		}
		sb.WriteString("\n")
	}
	if b.Passengers > 0 {
		fmt.Fprintf(&sb, "Passengers: %d\n", b.Passengers)
	}
	if b.FlightNumber != nil && *b.FlightNumber != "" {
		fmt.Fprintf(&sb, "Flight: %s\n", *b.FlightNumber)
	}
	if b.ChildSeat {
		sb.WriteString("Child seat: yes\n")
	}

	fmt.Fprintf(&sb, "\nTotal paid: %.2f %s\n", float64(b.PriceCents)/100, b.Currency)
	fmt.Fprintf(&sb, "Booking reference: %s\n", b.ID)
	sb.WriteString("\nThank you for booking with us.\n")

	return Message{
		To:      b.Email,
		Subject: fmt.Sprintf("Booking confirmed for %s", b.PickupDate),
		Body:    sb.String(),
	}
}
