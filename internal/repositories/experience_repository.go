package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
)

type ExperienceRepositoryInterface interface {
	GetExperiencesByDestination(ctx context.Context, destinationID string) ([]db_models.Experience, error)
	GetExperienceByID(ctx context.Context, id string) (*db_models.Experience, error)
	GetAllExperiences(ctx context.Context) ([]db_models.Experience, error)
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepositoryInterface {
	return &ExperienceRepository{db: db}
}

type ExperienceRepository struct {
	db *gorm.DB
}

func (r ExperienceRepository) GetExperiencesByDestination(ctx context.Context, destinationID string) ([]db_models.Experience, error) {
	var experiences []db_models.Experience
	err := r.db.WithContext(ctx).
		Where("destination_id = ? AND is_active = ?", destinationID, true).
		Order("title asc").
		Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r ExperienceRepository) GetExperienceByID(ctx context.Context, id string) (*db_models.Experience, error) {
	var experience db_models.Experience
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&experience).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &experience, nil
}

func (r ExperienceRepository) GetAllExperiences(ctx context.Context) ([]db_models.Experience, error) {
	var experiences []db_models.Experience
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}
