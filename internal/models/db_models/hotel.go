package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Hotel struct {
	BaseModel
	DestinationID uuid.UUID `gorm:"index"`
	Name          string
	Category      string
	Description   string
	PricePerNight decimal.Decimal `gorm:"type:numeric(12,2)"`
	Images        pq.StringArray  `gorm:"type:text[]"`
	IsActive      bool            `gorm:"default:true"`
}
