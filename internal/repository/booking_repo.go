package repository

import (
	"context"
	"errors"
	"time"

	"transferhub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
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

	PriceCents int64  `gorm:"column:price_cents"`
	Currency   string `gorm:"column:currency"`

	LeadID *string `gorm:"column:lead_id"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		BookingType:     domain.BookingType(m.BookingType),
		PickupLocation:  m.PickupLocation,
		DropoffLocation: m.DropoffLocation,
		PickupDate:      m.PickupDate,
		PickupTime:      m.PickupTime,
		Passengers:      m.Passengers,
		Luggage:         m.Luggage,
		FlightNumber:    m.FlightNumber,
		ChildSeat:       m.ChildSeat,
		DurationHours:   m.DurationHours,
		VehicleType:     m.VehicleType,
		FullName:        m.FullName,
		Email:           m.Email,
		ContactNumber:   m.ContactNumber,
		PriceCents:      m.PriceCents,
		Currency:        m.Currency,
		LeadID:          m.LeadID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		BookingType:     string(b.BookingType),
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		PickupDate:      b.PickupDate,
		PickupTime:      b.PickupTime,
		Passengers:      b.Passengers,
		Luggage:         b.Luggage,
		FlightNumber:    b.FlightNumber,
		ChildSeat:       b.ChildSeat,
		DurationHours:   b.DurationHours,
		VehicleType:     b.VehicleType,
		FullName:        b.FullName,
		Email:           b.Email,
		ContactNumber:   b.ContactNumber,
		PriceCents:      b.PriceCents,
		Currency:        b.Currency,
		LeadID:          b.LeadID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, *toDomainBooking(m))
	}
	return bookings, total, nil
}
