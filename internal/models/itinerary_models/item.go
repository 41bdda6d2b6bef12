package itinerary_models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type ItemKind string

const (
	KindExperience ItemKind = "experience"
	KindTravel     ItemKind = "travel"
	KindHotel      ItemKind = "hotel"
)

// Item is a closed variant: exactly the three concrete types in this file
// implement it. Switch on the concrete type, not on presence of fields.
type Item interface {
	ItemID() uuid.UUID
	Kind() ItemKind
	sealedItem()
}

type ExperienceItem struct {
	ID           uuid.UUID `json:"id"`
	ExperienceID string    `json:"experience_id"`
	Title        string    `json:"title"`
	// Duration keeps the catalog's free-text form ("5-6 Hours"); the budget
	// validator parses it at computation time.
	Duration string `json:"duration"`
}

type TravelItem struct {
	ID       uuid.UUID `json:"id"`
	FromID   string    `json:"from_id,omitempty"`
	ToID     string    `json:"to_id"`
	FromName string    `json:"from_name"`
	ToName   string    `json:"to_name"`
	Hours    float64   `json:"hours"`
}

type HotelItem struct {
	ID      uuid.UUID `json:"id"`
	HotelID string    `json:"hotel_id"`
	Name    string    `json:"name"`
}

func (e ExperienceItem) ItemID() uuid.UUID { return e.ID }
func (e ExperienceItem) Kind() ItemKind    { return KindExperience }
func (e ExperienceItem) sealedItem()       {}

func (t TravelItem) ItemID() uuid.UUID { return t.ID }
func (t TravelItem) Kind() ItemKind    { return KindTravel }
func (t TravelItem) sealedItem()       {}

func (h HotelItem) ItemID() uuid.UUID { return h.ID }
func (h HotelItem) Kind() ItemKind    { return KindHotel }
func (h HotelItem) sealedItem()       {}

func marshalItem(it Item) (json.RawMessage, error) {
	switch v := it.(type) {
	case ExperienceItem:
		return json.Marshal(struct {
			Type ItemKind `json:"type"`
			ExperienceItem
		}{KindExperience, v})
	case TravelItem:
		return json.Marshal(struct {
			Type ItemKind `json:"type"`
			TravelItem
		}{KindTravel, v})
	case HotelItem:
		return json.Marshal(struct {
			Type ItemKind `json:"type"`
			HotelItem
		}{KindHotel, v})
	default:
		return nil, fmt.Errorf("unknown item type %T", it)
	}
}

func unmarshalItem(raw json.RawMessage) (Item, error) {
	var tag struct {
		Type ItemKind `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case KindExperience:
		var v ExperienceItem
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindTravel:
		var v TravelItem
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindHotel:
		var v HotelItem
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", tag.Type)
	}
}
