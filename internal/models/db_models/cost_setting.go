package db_models

import "github.com/shopspring/decimal"

type ChargeType string

const (
	ChargeOneTime  ChargeType = "one_time"
	ChargePerNight ChargeType = "per_night"
)

type NationalityScope string

const (
	ScopeDomestic      NationalityScope = "domestic"
	ScopeInternational NationalityScope = "international"
)

type TravelerClass string

const (
	ClassAdult       TravelerClass = "adult"
	ClassChild6To12  TravelerClass = "child_6_12"
	ClassChildUnder6 TravelerClass = "child_under_6"
)

// CostSetting is one operator-maintained fee rule: a per-person amount that
// applies to one nationality scope and one traveler class, charged either
// once per trip or for every billed day.
type CostSetting struct {
	BaseModel
	Title         string
	Price         decimal.Decimal  `gorm:"type:numeric(12,2)"`
	ChargeType    ChargeType       `gorm:"type:varchar(16)"`
	Scope         NationalityScope `gorm:"type:varchar(16)"`
	TravelerClass TravelerClass    `gorm:"type:varchar(16)"`
	IsActive      bool             `gorm:"default:true"`
}
