package pricing

import (
	"context"
	"errors"
	"strings"
	"time"

	"transferhub/internal/domain"
	"transferhub/internal/repository"
)

var ErrRouteNotPriced = errors.New("route not priced")

type Repository interface {
	Create(ctx context.Context, p *domain.RoutePrice) error
	Find(ctx context.Context, pickup, dropoff, vehicleType string) (*domain.RoutePrice, error)
	List(ctx context.Context) ([]domain.RoutePrice, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo            Repository
	defaultCurrency string
}

func NewService(repo Repository, defaultCurrency string) *Service {
	if defaultCurrency == "" {
		defaultCurrency = "AUD"
	}
	return &Service{repo: repo, defaultCurrency: defaultCurrency}
}

// Quote looks up the fixed price for a route. Lookup keys are normalized to
// lower case so "Airport" and "airport" hit the same row.
func (s *Service) Quote(ctx context.Context, pickup, dropoff, vehicleType string) (*domain.RoutePrice, error) {
	p, err := s.repo.Find(ctx, normalize(pickup), normalize(dropoff), normalize(vehicleType))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRouteNotPriced
	}
	return p, err
}

func (s *Service) AddRoute(ctx context.Context, req CreateRouteRequest) (*domain.RoutePrice, error) {
	now := time.Now().UTC()
	p := &domain.RoutePrice{
		Pickup:      normalize(req.Pickup),
		Dropoff:     normalize(req.Dropoff),
		VehicleType: normalize(req.VehicleType),
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Currency == "" {
		p.Currency = s.defaultCurrency
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListRoutes(ctx context.Context) ([]domain.RoutePrice, error) {
	return s.repo.List(ctx)
}

func (s *Service) DeleteRoute(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
