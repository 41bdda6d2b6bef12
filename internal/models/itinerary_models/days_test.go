package itinerary_models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func experience(title string) ExperienceItem {
	return ExperienceItem{ID: uuid.New(), ExperienceID: uuid.NewString(), Title: title, Duration: "2 Hours"}
}

func travelTo(name string, hours float64) TravelItem {
	return TravelItem{ID: uuid.New(), ToID: uuid.NewString(), ToName: name, Hours: hours}
}

func hotel(name string) HotelItem {
	return HotelItem{ID: uuid.New(), HotelID: uuid.NewString(), Name: name}
}

func TestAppendDayNumbersSequentially(t *testing.T) {
	days := AppendDay(nil)
	days = AppendDay(days)
	days = AppendDay(days)

	require.Len(t, days, 3)
	for i, d := range days {
		assert.Equal(t, i+1, d.DayNumber)
	}
}

func TestRemoveDayRenumbersDense(t *testing.T) {
	days := AppendDay(AppendDay(AppendDay(AppendDay(nil))))
	days = RemoveDayAt(days, 1)

	require.Len(t, days, 3)
	for i, d := range days {
		assert.Equal(t, i+1, d.DayNumber, "day numbers must stay 1..N after removal")
	}
}

func TestRemoveLastRemainingDayIsNoOp(t *testing.T) {
	days := AppendDay(nil)
	got := RemoveDayAt(days, 0)
	require.Len(t, got, 1)
}

func TestAppendItemIsFunctionalUpdate(t *testing.T) {
	days := AppendDay(nil)
	before := days[0].Items

	got := AppendItem(days, 0, experience("Monastery walk"))

	require.Len(t, got[0].Items, 1)
	assert.Len(t, before, 0, "input slice must stay untouched")
	assert.Len(t, days[0].Items, 0)
}

func TestRemoveItemFiltersByID(t *testing.T) {
	keep := experience("River rafting")
	drop := experience("Cable car")
	days := AppendItem(AppendItem(AppendDay(nil), 0, keep), 0, drop)

	got := RemoveItem(days, 0, drop.ID)

	require.Len(t, got[0].Items, 1)
	assert.Equal(t, keep.ID, got[0].Items[0].ItemID())
}

func TestReorderItemsAcceptsPermutation(t *testing.T) {
	a, b, c := experience("a"), experience("b"), experience("c")
	days := AppendItem(AppendItem(AppendItem(AppendDay(nil), 0, a), 0, b), 0, c)

	got, ok := ReorderItems(days, 0, []uuid.UUID{c.ID, a.ID, b.ID})

	require.True(t, ok)
	assert.Equal(t, c.ID, got[0].Items[0].ItemID())
	assert.Equal(t, a.ID, got[0].Items[1].ItemID())
	assert.Equal(t, b.ID, got[0].Items[2].ItemID())
}

func TestReorderItemsRejectsNonPermutation(t *testing.T) {
	a, b := experience("a"), experience("b")
	days := AppendItem(AppendItem(AppendDay(nil), 0, a), 0, b)

	_, ok := ReorderItems(days, 0, []uuid.UUID{a.ID, uuid.New()})
	assert.False(t, ok, "foreign id must be rejected")

	_, ok = ReorderItems(days, 0, []uuid.UUID{a.ID, a.ID})
	assert.False(t, ok, "duplicate id must be rejected, items would be lost")

	_, ok = ReorderItems(days, 0, []uuid.UUID{a.ID})
	assert.False(t, ok, "shorter sequence must be rejected")
}

func TestLocationAtScansBackwardAcrossDays(t *testing.T) {
	days := AppendDay(nil)
	days = AppendItem(days, 0, travelTo("Gangtok", 0))
	days = AppendItem(days, 0, experience("Market"))
	days = AppendDay(days)
	days = AppendItem(days, 1, experience("Sunrise point"))

	leg, ok := LocationAt(days, 1, -1)
	require.True(t, ok, "scan must reach the previous day's travel leg")
	assert.Equal(t, "Gangtok", leg.ToName)
}

func TestLocationAtNeverLooksAhead(t *testing.T) {
	days := AppendDay(nil)
	days = AppendItem(days, 0, travelTo("Gangtok", 0))
	days = AppendItem(days, 0, experience("Market"))
	days = AppendItem(days, 0, travelTo("Pelling", 4.5))

	// insertion point before the Pelling leg still resolves to Gangtok
	leg, ok := LocationAt(days, 0, 1)
	require.True(t, ok)
	assert.Equal(t, "Gangtok", leg.ToName)

	// end of day sees the later leg
	leg, ok = LocationAt(days, 0, -1)
	require.True(t, ok)
	assert.Equal(t, "Pelling", leg.ToName)
}

func TestLocationAtWithoutAnyLeg(t *testing.T) {
	days := AppendItem(AppendDay(nil), 0, experience("Market"))
	_, ok := LocationAt(days, 0, 0)
	assert.False(t, ok)
}

func TestDayJSONRoundTripKeepsVariants(t *testing.T) {
	days := AppendDay(nil)
	days = AppendItem(days, 0, travelTo("Gangtok", 0))
	days = AppendItem(days, 0, experience("Monastery walk"))
	days = AppendItem(days, 0, hotel("Hilltop Residency"))

	raw, err := json.Marshal(days[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"travel"`)
	assert.Contains(t, string(raw), `"type":"experience"`)
	assert.Contains(t, string(raw), `"type":"hotel"`)

	var back Day
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Len(t, back.Items, 3)
	assert.IsType(t, TravelItem{}, back.Items[0])
	assert.IsType(t, ExperienceItem{}, back.Items[1])
	assert.IsType(t, HotelItem{}, back.Items[2])
	assert.True(t, back.HasHotel())
}
