package itinerary_models

import "time"

type Nationality string

const (
	NationalityIndian        Nationality = "Indian"
	NationalityInternational Nationality = "International"
)

type TravelerProfile struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Nationality    Nationality
	Adults         int
	Children6To12  int
	ChildrenUnder6 int
	ArrivalDate    time.Time
	DepartureDate  time.Time
	Message        string
}

// HasTravelDates reports whether both trip dates are set; per-night fees are
// only computable once they are.
func (p TravelerProfile) HasTravelDates() bool {
	return !p.ArrivalDate.IsZero() && !p.DepartureDate.IsZero()
}
