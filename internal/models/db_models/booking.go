package db_models

import "time"

const BookingStatusPending = "pending"

// Booking is the durable record created at submission time. The day/item
// tree is frozen into CustomItinerary as JSON; nothing references the live
// session after this row exists.
type Booking struct {
	BaseModel
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Nationality     string
	Adults          int
	Children6To12   int       `gorm:"column:children_6_12"`
	ChildrenUnder6  int       `gorm:"column:children_under_6"`
	ArrivalDate     time.Time `gorm:"type:date"`
	DepartureDate   time.Time `gorm:"type:date"`
	Message         string
	CustomItinerary string `gorm:"type:jsonb"`
	Status          string `gorm:"type:varchar(16);default:pending"`
}
