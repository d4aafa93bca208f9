package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Migrate creates or updates the schema for every table this package owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&leadModel{},
		&bookingModel{},
		&postModel{},
		&routePriceModel{},
	)
}
