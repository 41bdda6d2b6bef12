package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
)

type HotelRepositoryInterface interface {
	GetHotelsByDestination(ctx context.Context, destinationID string) ([]db_models.Hotel, error)
	GetHotelByID(ctx context.Context, id string) (*db_models.Hotel, error)
	GetAllHotels(ctx context.Context) ([]db_models.Hotel, error)
}

func NewHotelRepository(db *gorm.DB) HotelRepositoryInterface {
	return &HotelRepository{db: db}
}

type HotelRepository struct {
	db *gorm.DB
}

func (r HotelRepository) GetHotelsByDestination(ctx context.Context, destinationID string) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("destination_id = ? AND is_active = ?", destinationID, true).
		Order("name asc").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r HotelRepository) GetHotelByID(ctx context.Context, id string) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r HotelRepository) GetAllHotels(ctx context.Context) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}
