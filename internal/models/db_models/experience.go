package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Experience struct {
	BaseModel
	DestinationID uuid.UUID `gorm:"index"`
	Title         string
	Description   string
	// Duration is catalog copy as entered by the operator ("5-6 Hours");
	// the budget validator parses it best-effort.
	Duration string
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Images   pq.StringArray  `gorm:"type:text[]"`
	IsActive bool            `gorm:"default:true"`
}
