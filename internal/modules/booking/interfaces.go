package booking

import (
	"context"

	"transferhub/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error)
}

// LeadConverter is the slice of the lead service the payment flow needs.
type LeadConverter interface {
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	MarkConverted(ctx context.Context, email string) (int64, error)
}
