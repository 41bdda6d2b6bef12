package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
)

type DestinationRepositoryInterface interface {
	GetAllDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error)
	GetDestinationByID(ctx context.Context, id string) (*db_models.Destination, error)
	GetDestinationByName(ctx context.Context, name string) (*db_models.Destination, error)
}

func NewDestinationRepository(db *gorm.DB) DestinationRepositoryInterface {
	return &DestinationRepository{db: db}
}

type DestinationRepository struct {
	db *gorm.DB
}

func (r DestinationRepository) GetAllDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Order("name asc").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r DestinationRepository) GetDestinationByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r DestinationRepository) GetDestinationByName(ctx context.Context, name string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}
