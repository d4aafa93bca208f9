package lead

import (
	"context"
	"time"

	"transferhub/internal/domain"
	"transferhub/internal/repository"
)

// Repository is the narrow persistence surface the service needs.
type Repository interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, id string, patch repository.LeadPatch) (*domain.Lead, error)
	MarkConvertedByEmail(ctx context.Context, email string) (int64, error)
	FindAbandoned(ctx context.Context, before time.Time) ([]domain.Lead, error)
	List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error)
}
