package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
)

type TravelTimeRepositoryInterface interface {
	// GetHours returns the stored duration for a pair in either direction,
	// or nil when the pair is not in the table.
	GetHours(ctx context.Context, fromName string, toName string) (*db_models.TravelTime, error)
}

func NewTravelTimeRepository(db *gorm.DB) TravelTimeRepositoryInterface {
	return &TravelTimeRepository{db: db}
}

type TravelTimeRepository struct {
	db *gorm.DB
}

func (r TravelTimeRepository) GetHours(ctx context.Context, fromName string, toName string) (*db_models.TravelTime, error) {
	var row db_models.TravelTime
	err := r.db.WithContext(ctx).
		Where("(from_name = ? AND to_name = ?) OR (from_name = ? AND to_name = ?)",
			fromName, toName, toName, fromName).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
