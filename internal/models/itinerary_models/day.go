package itinerary_models

import "encoding/json"

// Day is one calendar day of the itinerary. DayNumber is 1-based and the
// whole sequence stays dense: removing a day renumbers everything after it.
// An item's position is its index in Items; there is no separate order field.
type Day struct {
	DayNumber int
	Items     []Item
}

type dayWire struct {
	DayNumber int               `json:"day_number"`
	Items     []json.RawMessage `json:"items"`
}

func (d Day) MarshalJSON() ([]byte, error) {
	wire := dayWire{DayNumber: d.DayNumber, Items: make([]json.RawMessage, 0, len(d.Items))}
	for _, it := range d.Items {
		raw, err := marshalItem(it)
		if err != nil {
			return nil, err
		}
		wire.Items = append(wire.Items, raw)
	}
	return json.Marshal(wire)
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var wire dayWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.DayNumber = wire.DayNumber
	d.Items = make([]Item, 0, len(wire.Items))
	for _, raw := range wire.Items {
		it, err := unmarshalItem(raw)
		if err != nil {
			return err
		}
		d.Items = append(d.Items, it)
	}
	return nil
}

// HasHotel reports whether the day is already closed by a hotel stay.
func (d Day) HasHotel() bool {
	for _, it := range d.Items {
		if _, ok := it.(HotelItem); ok {
			return true
		}
	}
	return false
}
