package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
)

type CostSettingRepositoryInterface interface {
	GetActiveCostSettings(ctx context.Context) ([]db_models.CostSetting, error)
}

func NewCostSettingRepository(db *gorm.DB) CostSettingRepositoryInterface {
	return &CostSettingRepository{db: db}
}

type CostSettingRepository struct {
	db *gorm.DB
}

func (r CostSettingRepository) GetActiveCostSettings(ctx context.Context) ([]db_models.CostSetting, error) {
	var settings []db_models.CostSetting
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("title asc").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}
