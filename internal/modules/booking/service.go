package booking

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"transferhub/internal/domain"
	"transferhub/internal/modules/lead"
	"transferhub/internal/modules/notify"

	"github.com/google/uuid"
)

type Service struct {
	bookings        BookingRepository
	leads           LeadConverter
	sender          notify.Sender
	defaultCurrency string
	now             func() time.Time
}

func NewService(bookings BookingRepository, leads LeadConverter, sender notify.Sender, defaultCurrency string) *Service {
	if defaultCurrency == "" {
		defaultCurrency = "AUD"
	}
	return &Service{
		bookings:        bookings,
		leads:           leads,
		sender:          sender,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// ConfirmPayment turns a paid lead into a Booking, marks every draft lead
// with the same email as converted, and hands the confirmation email to the
// sender. Sender failures are logged, never surfaced: the payment already
// happened.
func (s *Service) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*domain.Booking, error) {
	b := &domain.Booking{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Currency:  s.defaultCurrency,
		CreatedAt: s.now().UTC(),
		UpdatedAt: s.now().UTC(),
	}

	if req.LeadID != "" {
		l, err := s.leads.GetByID(ctx, req.LeadID)
		if errors.Is(err, lead.ErrLeadNotFound) {
			return nil, ErrUnknownLead
		}
		if err != nil {
			return nil, err
		}
		copyLeadDetails(b, l)
	}

	if req.Email != "" {
		b.Email = req.Email
	}
	if b.Email == "" {
		return nil, ErrValidation
	}
	if req.Currency != "" {
		b.Currency = req.Currency
	}
	if req.AmountPaid > 0 {
		b.PriceCents = int64(math.Round(req.AmountPaid * 100))
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if _, err := s.leads.MarkConverted(ctx, b.Email); err != nil {
		return nil, err
	}

	if err := s.sender.Send(ctx, notify.BookingConfirmation(b)); err != nil {
		log.Printf("booking confirmation email failed: booking=%s err=%v", b.ID, err)
	}

	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.List(ctx, limit, offset)
}

func copyLeadDetails(b *domain.Booking, l *domain.Lead) {
	b.BookingType = l.BookingType
	b.PickupLocation = l.PickupLocation
	b.DropoffLocation = l.DropoffLocation
	b.PickupDate = l.PickupDate
	b.PickupTime = l.PickupTime
	b.Passengers = l.Passengers
	b.Luggage = l.Luggage
	b.FlightNumber = l.FlightNumber
	b.ChildSeat = l.ChildSeat
	b.DurationHours = l.DurationHours
	b.VehicleType = l.VehicleType
	b.FullName = l.FullName
	b.Email = l.Email
	b.ContactNumber = l.ContactNumber
	b.PriceCents = l.QuotedPriceCents
	b.Currency = l.Currency
	id := l.ID
	b.LeadID = &id
}
