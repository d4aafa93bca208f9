package repository

import (
	"context"
	"errors"
	"time"

	"transferhub/internal/domain"

	"gorm.io/gorm"
)

type PriceRepository struct {
	db *gorm.DB
}

func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

type routePriceModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Pickup      string    `gorm:"column:pickup;index:idx_route,unique"`
	Dropoff     string    `gorm:"column:dropoff;index:idx_route,unique"`
	VehicleType string    `gorm:"column:vehicle_type;index:idx_route,unique"`
	PriceCents  int64     `gorm:"column:price_cents"`
	Currency    string    `gorm:"column:currency"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (routePriceModel) TableName() string { return "route_prices" }

func toDomainRoutePrice(m routePriceModel) *domain.RoutePrice {
	return &domain.RoutePrice{
		ID:          m.ID,
		Pickup:      m.Pickup,
		Dropoff:     m.Dropoff,
		VehicleType: m.VehicleType,
		PriceCents:  m.PriceCents,
		Currency:    m.Currency,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *PriceRepository) Create(ctx context.Context, p *domain.RoutePrice) error {
	m := routePriceModel{
		Pickup:      p.Pickup,
		Dropoff:     p.Dropoff,
		VehicleType: p.VehicleType,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainRoutePrice(m)
	return nil
}

// Find looks up one price-list row by the route triple.
func (r *PriceRepository) Find(ctx context.Context, pickup, dropoff, vehicleType string) (*domain.RoutePrice, error) {
	var m routePriceModel
	tx := r.db.WithContext(ctx).
		Where("pickup = ? AND dropoff = ? AND vehicle_type = ?", pickup, dropoff, vehicleType).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoutePrice(m), nil
}

func (r *PriceRepository) List(ctx context.Context) ([]domain.RoutePrice, error) {
	var models []routePriceModel
	tx := r.db.WithContext(ctx).Order("pickup, dropoff, vehicle_type").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	prices := make([]domain.RoutePrice, 0, len(models))
	for _, m := range models {
		prices = append(prices, *toDomainRoutePrice(m))
	}
	return prices, nil
}

func (r *PriceRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&routePriceModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
