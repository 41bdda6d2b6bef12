package response_models

import (
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
)

type ItineraryItemView struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	RefID string `json:"ref_id,omitempty"`
	// travel legs only
	From  string  `json:"from,omitempty"`
	To    string  `json:"to,omitempty"`
	Hours float64 `json:"hours,omitempty"`
	// experiences keep the catalog's free-text duration for display
	Duration string `json:"duration,omitempty"`
}

type DayView struct {
	DayNumber int                 `json:"day_number"`
	Hours     float64             `json:"hours"`
	Items     []ItineraryItemView `json:"items"`
}

type ItineraryResponse struct {
	SessionID string                      `json:"session_id"`
	Entry     itinerary_models.EntryPoint `json:"entry_destination"`
	Days      []DayView                   `json:"days"`
}

// BuildItineraryResponse shapes a builder session for the API. perDayHours
// must be aligned with b.Days; the caller computes it with the budget
// validator so this package stays presentation-only.
func BuildItineraryResponse(b *itinerary_models.Builder, perDayHours []float64) ItineraryResponse {
	out := ItineraryResponse{
		SessionID: b.ID.String(),
		Entry:     b.Entry,
		Days:      make([]DayView, 0, len(b.Days)),
	}
	for i, d := range b.Days {
		view := DayView{DayNumber: d.DayNumber, Items: make([]ItineraryItemView, 0, len(d.Items))}
		if i < len(perDayHours) {
			view.Hours = perDayHours[i]
		}
		for _, it := range d.Items {
			switch item := it.(type) {
			case itinerary_models.ExperienceItem:
				view.Items = append(view.Items, ItineraryItemView{
					ID:       item.ID.String(),
					Type:     string(itinerary_models.KindExperience),
					Title:    item.Title,
					RefID:    item.ExperienceID,
					Duration: item.Duration,
				})
			case itinerary_models.TravelItem:
				view.Items = append(view.Items, ItineraryItemView{
					ID:    item.ID.String(),
					Type:  string(itinerary_models.KindTravel),
					Title: "Travel to " + item.ToName,
					RefID: item.ToID,
					From:  item.FromName,
					To:    item.ToName,
					Hours: item.Hours,
				})
			case itinerary_models.HotelItem:
				view.Items = append(view.Items, ItineraryItemView{
					ID:    item.ID.String(),
					Type:  string(itinerary_models.KindHotel),
					Title: item.Name,
					RefID: item.HotelID,
				})
			}
		}
		out.Days = append(out.Days, view)
	}
	return out
}
