package db_models

// TravelTime is one row of the static transfer-duration table between two
// named destinations. Lookups try both directions; the table stores each
// pair once.
type TravelTime struct {
	BaseModel
	FromName string  `gorm:"index:idx_travel_pair,unique"`
	ToName   string  `gorm:"index:idx_travel_pair,unique"`
	Hours    float64 `gorm:"type:numeric(5,2)"`
}
