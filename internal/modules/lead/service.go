package lead

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"transferhub/internal/domain"
	"transferhub/internal/repository"

	"github.com/google/uuid"
)

const defaultAbandonedHours = 24

type Service struct {
	repo            Repository
	defaultCurrency string
	now             func() time.Time
}

func NewService(repo Repository, defaultCurrency string) *Service {
	if defaultCurrency == "" {
		defaultCurrency = "AUD"
	}
	return &Service{
		repo:            repo,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// Upsert creates or partially updates a lead. A payload with neither email
// nor contact number returns (nil, nil): a deliberate skip, not an error,
// and no repository call is made. Repository failures propagate unchanged.
func (s *Service) Upsert(ctx context.Context, req UpsertLeadRequest) (*domain.Lead, error) {
	if !req.hasContact() {
		return nil, nil
	}

	if req.ID != "" {
		return s.update(ctx, req)
	}
	return s.create(ctx, req)
}

func (s *Service) create(ctx context.Context, req UpsertLeadRequest) (*domain.Lead, error) {
	now := s.now().UTC()

	l := &domain.Lead{
		ID:              uuid.NewString(),
		BookingType:     domain.BookingType(strVal(req.BookingType)),
		PickupLocation:  strVal(req.PickupLocation),
		DropoffLocation: strVal(req.DropoffLocation),
		PickupDate:      strVal(req.PickupDate),
		PickupTime:      strVal(req.PickupTime),
		Passengers:      intVal(req.Passengers),
		Luggage:         intVal(req.Luggage),
		FlightNumber:    req.FlightNumber,
		ChildSeat:       boolVal(req.ChildSeat),
		DurationHours:   intVal(req.DurationHours),
		VehicleType:     strVal(req.VehicleType),
		FullName:        strVal(req.FullName),
		Email:           strVal(req.Email),
		ContactNumber:   strVal(req.ContactNumber),
		Currency:        s.defaultCurrency,
		Status:          domain.LeadDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if req.Currency != nil && *req.Currency != "" {
		l.Currency = *req.Currency
	}
	if req.QuotedPrice != nil {
		l.QuotedPriceCents = toCents(*req.QuotedPrice)
	}

	// The capture timestamp is gated on the block being present, not on
	// any individual parameter being set.
	if req.UTM != nil {
		l.UTMSource = optional(req.UTM.UTMSource)
		l.UTMMedium = optional(req.UTM.UTMMedium)
		l.UTMCampaign = optional(req.UTM.UTMCampaign)
		l.UTMTerm = optional(req.UTM.UTMTerm)
		l.UTMContent = optional(req.UTM.UTMContent)
		capturedAt := now
		if req.UTM.CapturedAt != nil {
			capturedAt = req.UTM.CapturedAt.UTC()
		}
		l.UTMCapturedAt = &capturedAt
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// update applies only the fields present in the payload. The utm block is
// ignored entirely: first-touch attribution is immutable after creation.
func (s *Service) update(ctx context.Context, req UpsertLeadRequest) (*domain.Lead, error) {
	patch := repository.LeadPatch{
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupDate:      req.PickupDate,
		PickupTime:      req.PickupTime,
		Passengers:      req.Passengers,
		Luggage:         req.Luggage,
		FlightNumber:    req.FlightNumber,
		ChildSeat:       req.ChildSeat,
		DurationHours:   req.DurationHours,
		VehicleType:     req.VehicleType,
		FullName:        req.FullName,
		Email:           req.Email,
		ContactNumber:   req.ContactNumber,
		Currency:        req.Currency,
	}
	if req.BookingType != nil {
		bt := domain.BookingType(*req.BookingType)
		patch.BookingType = &bt
	}
	if req.QuotedPrice != nil {
		cents := toCents(*req.QuotedPrice)
		patch.QuotedPriceCents = &cents
	}

	updated, err := s.repo.Update(ctx, req.ID, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkConverted flips every draft lead with the given email to converted.
// An empty email is a no-op; a blanket update must never be issued.
func (s *Service) MarkConverted(ctx context.Context, email string) (int64, error) {
	if strings.TrimSpace(email) == "" {
		return 0, nil
	}
	return s.repo.MarkConvertedByEmail(ctx, email)
}

// FindAbandoned returns draft leads created at least hoursAgo hours back,
// newest first. hoursAgo <= 0 falls back to 24.
func (s *Service) FindAbandoned(ctx context.Context, hoursAgo int) ([]domain.Lead, error) {
	if hoursAgo <= 0 {
		hoursAgo = defaultAbandonedHours
	}
	before := s.now().UTC().Add(-time.Duration(hoursAgo) * time.Hour)
	return s.repo.FindAbandoned(ctx, before)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, status, limit, offset)
}

func toCents(major float64) int64 {
	return int64(math.Round(major * 100))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
