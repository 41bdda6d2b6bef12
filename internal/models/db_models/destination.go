package db_models

import "github.com/lib/pq"

type Destination struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Region      string
	Description string
	Images      pq.StringArray `gorm:"type:text[]"`
	Altitude    string
	BestSeason  string
	IsActive    bool `gorm:"default:true"`

	Experiences []Experience
	Hotels      []Hotel
}
