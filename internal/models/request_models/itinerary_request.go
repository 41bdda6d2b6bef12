package request_models

import (
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

type StartItineraryRequest struct {
	DestinationID string `json:"destination_id" binding:"required,uuid4"`
}

type AddExperienceRequest struct {
	ExperienceID string `json:"experience_id" binding:"required,uuid4"`
}

type AddTravelRequest struct {
	DestinationID string `json:"destination_id" binding:"required,uuid4"`
}

type AddHotelRequest struct {
	HotelID string `json:"hotel_id" binding:"required,uuid4"`
}

type ReorderItemsRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
}

// TravelerDetailsRequest carries party and contact details. It is lenient on
// binding so the traveler can fill it incrementally during the session; the
// submission service enforces the hard requirements.
type TravelerDetailsRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Nationality    string `json:"nationality" binding:"omitempty,oneof=Indian International"`
	Adults         int    `json:"adults" binding:"omitempty,min=1"`
	Children6To12  int    `json:"children_6_12" binding:"min=0"`
	ChildrenUnder6 int    `json:"children_under_6" binding:"min=0"`
	// ISO dates, e.g. "2025-03-01"
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
	Message       string `json:"message"`
}

func (r TravelerDetailsRequest) ToProfile() itinerary_models.TravelerProfile {
	return itinerary_models.TravelerProfile{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Nationality:    itinerary_models.Nationality(r.Nationality),
		Adults:         r.Adults,
		Children6To12:  r.Children6To12,
		ChildrenUnder6: r.ChildrenUnder6,
		ArrivalDate:    utils.ParseISODate(r.ArrivalDate),
		DepartureDate:  utils.ParseISODate(r.DepartureDate),
		Message:        r.Message,
	}
}
