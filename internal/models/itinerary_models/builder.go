package itinerary_models

import (
	"time"

	"github.com/google/uuid"
)

// EntryPoint is the destination the traveler arrives into. It doubles as the
// location fallback when no travel leg precedes a query point.
type EntryPoint struct {
	DestinationID string `json:"destination_id"`
	Name          string `json:"name"`
}

// Builder is one live itinerary-building session. It only exists in memory;
// nothing is persisted until the traveler submits.
type Builder struct {
	ID        uuid.UUID
	Entry     EntryPoint
	Days      []Day
	Traveler  TravelerProfile
	CreatedAt time.Time
}

// NewBuilder starts a session with a single day holding the zero-duration
// arrival leg into the entry destination.
func NewBuilder(entry EntryPoint) *Builder {
	arrival := TravelItem{
		ID:     uuid.New(),
		ToID:   entry.DestinationID,
		ToName: entry.Name,
		Hours:  0,
	}
	return &Builder{
		ID:        uuid.New(),
		Entry:     entry,
		Days:      []Day{{DayNumber: 1, Items: []Item{arrival}}},
		CreatedAt: time.Now(),
	}
}

// CurrentLocation resolves the location at an insertion point, falling back
// to the entry destination when no travel leg exists anywhere before it.
func (b *Builder) CurrentLocation(dayIdx int, itemIdx int) (id string, name string) {
	if leg, ok := LocationAt(b.Days, dayIdx, itemIdx); ok {
		return leg.ToID, leg.ToName
	}
	return b.Entry.DestinationID, b.Entry.Name
}
