package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
)

type BookingRepositoryInterface interface {
	CreateBooking(ctx context.Context, booking *db_models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*db_models.Booking, error)
}

func NewBookingRepository(db *gorm.DB) BookingRepositoryInterface {
	return &BookingRepository{db: db}
}

type BookingRepository struct {
	db *gorm.DB
}

func (r BookingRepository) CreateBooking(ctx context.Context, booking *db_models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(booking).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r BookingRepository) GetBookingByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
