package repository

import (
	"context"
	"errors"
	"time"

	"transferhub/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID string `gorm:"column:id;primaryKey"`

	BookingType string `gorm:"column:booking_type"`

	PickupLocation  string  `gorm:"column:pickup_location"`
	DropoffLocation string  `gorm:"column:dropoff_location"`
	PickupDate      string  `gorm:"column:pickup_date"`
	PickupTime      string  `gorm:"column:pickup_time"`
	Passengers      int     `gorm:"column:passengers"`
	Luggage         int     `gorm:"column:luggage"`
	FlightNumber    *string `gorm:"column:flight_number"`
	ChildSeat       bool    `gorm:"column:child_seat"`
	DurationHours   int     `gorm:"column:duration_hours"`
	VehicleType     string  `gorm:"column:vehicle_type"`

	FullName      string `gorm:"column:full_name"`
	Email         string `gorm:"column:email;index"`
	ContactNumber string `gorm:"column:contact_number"`

	QuotedPriceCents int64  `gorm:"column:quoted_price_cents"`
	Currency         string `gorm:"column:currency"`

	UTMSource     *string    `gorm:"column:utm_source"`
	UTMMedium     *string    `gorm:"column:utm_medium"`
	UTMCampaign   *string    `gorm:"column:utm_campaign"`
	UTMTerm       *string    `gorm:"column:utm_term"`
	UTMContent    *string    `gorm:"column:utm_content"`
	UTMCapturedAt *time.Time `gorm:"column:utm_captured_at"`

	Status    string    `gorm:"column:status;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	return &domain.Lead{
		ID:               m.ID,
		BookingType:      domain.BookingType(m.BookingType),
		PickupLocation:   m.PickupLocation,
		DropoffLocation:  m.DropoffLocation,
		PickupDate:       m.PickupDate,
		PickupTime:       m.PickupTime,
		Passengers:       m.Passengers,
		Luggage:          m.Luggage,
		FlightNumber:     m.FlightNumber,
		ChildSeat:        m.ChildSeat,
		DurationHours:    m.DurationHours,
		VehicleType:      m.VehicleType,
		FullName:         m.FullName,
		Email:            m.Email,
		ContactNumber:    m.ContactNumber,
		QuotedPriceCents: m.QuotedPriceCents,
		Currency:         m.Currency,
		UTMSource:        m.UTMSource,
		UTMMedium:        m.UTMMedium,
		UTMCampaign:      m.UTMCampaign,
		UTMTerm:          m.UTMTerm,
		UTMContent:       m.UTMContent,
		UTMCapturedAt:    m.UTMCapturedAt,
		Status:           domain.LeadStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	return leadModel{
		ID:               l.ID,
		BookingType:      string(l.BookingType),
		PickupLocation:   l.PickupLocation,
		DropoffLocation:  l.DropoffLocation,
		PickupDate:       l.PickupDate,
		PickupTime:       l.PickupTime,
		Passengers:       l.Passengers,
		Luggage:          l.Luggage,
		FlightNumber:     l.FlightNumber,
		ChildSeat:        l.ChildSeat,
		DurationHours:    l.DurationHours,
		VehicleType:      l.VehicleType,
		FullName:         l.FullName,
		Email:            l.Email,
		ContactNumber:    l.ContactNumber,
		QuotedPriceCents: l.QuotedPriceCents,
		Currency:         l.Currency,
		UTMSource:        l.UTMSource,
		UTMMedium:        l.UTMMedium,
		UTMCampaign:      l.UTMCampaign,
		UTMTerm:          l.UTMTerm,
		UTMContent:       l.UTMContent,
		UTMCapturedAt:    l.UTMCapturedAt,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// LeadPatch is a partial update: nil fields are left unchanged. Attribution
// columns are deliberately absent so an update cannot touch them.
type LeadPatch struct {
	BookingType     *domain.BookingType
	PickupLocation  *string
	DropoffLocation *string
	PickupDate      *string
	PickupTime      *string
	Passengers      *int
	Luggage         *int
	FlightNumber    *string
	ChildSeat       *bool
	DurationHours   *int
	VehicleType     *string

	FullName      *string
	Email         *string
	ContactNumber *string

	QuotedPriceCents *int64
	Currency         *string
}

func (p LeadPatch) columns() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.BookingType != nil {
		updates["booking_type"] = string(*p.BookingType)
	}
	if p.PickupLocation != nil {
		updates["pickup_location"] = *p.PickupLocation
	}
	if p.DropoffLocation != nil {
		updates["dropoff_location"] = *p.DropoffLocation
	}
	if p.PickupDate != nil {
		updates["pickup_date"] = *p.PickupDate
	}
	if p.PickupTime != nil {
		updates["pickup_time"] = *p.PickupTime
	}
	if p.Passengers != nil {
		updates["passengers"] = *p.Passengers
	}
	if p.Luggage != nil {
		updates["luggage"] = *p.Luggage
	}
	if p.FlightNumber != nil {
		updates["flight_number"] = *p.FlightNumber
	}
	if p.ChildSeat != nil {
		updates["child_seat"] = *p.ChildSeat
	}
	if p.DurationHours != nil {
		updates["duration_hours"] = *p.DurationHours
	}
	if p.VehicleType != nil {
		updates["vehicle_type"] = *p.VehicleType
	}
	if p.FullName != nil {
		updates["full_name"] = *p.FullName
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.ContactNumber != nil {
		updates["contact_number"] = *p.ContactNumber
	}
	if p.QuotedPriceCents != nil {
		updates["quoted_price_cents"] = *p.QuotedPriceCents
	}
	if p.Currency != nil {
		updates["currency"] = *p.Currency
	}
	return updates
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var m leadModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLead(m), nil
}

// Update applies the patch to one lead and returns the updated record.
func (r *LeadRepository) Update(ctx context.Context, id string, patch LeadPatch) (*domain.Lead, error) {
	updates := patch.columns()
	updates["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).Model(&leadModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// MarkConvertedByEmail flips every draft lead with the given email to
// converted. Returns the number of rows changed; re-invocation matches
// nothing and is a no-op.
func (r *LeadRepository) MarkConvertedByEmail(ctx context.Context, email string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&leadModel{}).
		Where("email = ? AND status = ?", email, string(domain.LeadDraft)).
		Updates(map[string]interface{}{
			"status":     string(domain.LeadConverted),
			"updated_at": time.Now().UTC(),
		})
	return tx.RowsAffected, tx.Error
}

// FindAbandoned returns draft leads created at or before the cutoff,
// newest first. The predicate is on creation time, not last update.
func (r *LeadRepository) FindAbandoned(ctx context.Context, before time.Time) ([]domain.Lead, error) {
	var models []leadModel
	tx := r.db.WithContext(ctx).
		Where("status = ? AND created_at <= ?", string(domain.LeadDraft), before).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, *toDomainLead(m))
	}
	return leads, nil
}

// List returns leads for the admin console, optionally filtered by status.
func (r *LeadRepository) List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&leadModel{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []leadModel
	tx := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, *toDomainLead(m))
	}
	return leads, total, nil
}
