package itinerary_models

import "github.com/google/uuid"

// The functions below are the itinerary's mutation core. Every one of them is
// a functional update: the input slice is never written to, a fresh day
// sequence comes back, so callers can hand out snapshots freely.

func cloneDays(days []Day) []Day {
	out := make([]Day, len(days))
	copy(out, days)
	return out
}

// AppendDay adds an empty day with the next sequential number.
func AppendDay(days []Day) []Day {
	out := cloneDays(days)
	return append(out, Day{DayNumber: len(days) + 1})
}

// RemoveDayAt drops the day at idx and renumbers the rest to keep the
// 1..N sequence dense. Removing the only remaining day is a no-op.
func RemoveDayAt(days []Day, idx int) []Day {
	if len(days) <= 1 || idx < 0 || idx >= len(days) {
		return days
	}
	out := make([]Day, 0, len(days)-1)
	for i, d := range days {
		if i == idx {
			continue
		}
		d.DayNumber = len(out) + 1
		out = append(out, d)
	}
	return out
}

// AppendItem places it at the end of the day at dayIdx.
func AppendItem(days []Day, dayIdx int, it Item) []Day {
	if dayIdx < 0 || dayIdx >= len(days) {
		return days
	}
	out := cloneDays(days)
	d := out[dayIdx]
	items := make([]Item, 0, len(d.Items)+1)
	items = append(items, d.Items...)
	d.Items = append(items, it)
	out[dayIdx] = d
	return out
}

// RemoveItem filters the item with itemID out of the day at dayIdx.
func RemoveItem(days []Day, dayIdx int, itemID uuid.UUID) []Day {
	if dayIdx < 0 || dayIdx >= len(days) {
		return days
	}
	out := cloneDays(days)
	d := out[dayIdx]
	items := make([]Item, 0, len(d.Items))
	for _, it := range d.Items {
		if it.ItemID() == itemID {
			continue
		}
		items = append(items, it)
	}
	d.Items = items
	out[dayIdx] = d
	return out
}

// ReorderItems replaces the day's sequence with the permutation named by
// order. The ids must be exactly the day's current item ids; anything else
// is rejected so a misbehaving caller cannot silently drop items.
func ReorderItems(days []Day, dayIdx int, order []uuid.UUID) ([]Day, bool) {
	if dayIdx < 0 || dayIdx >= len(days) {
		return days, false
	}
	d := days[dayIdx]
	if len(order) != len(d.Items) {
		return days, false
	}

	byID := make(map[uuid.UUID]Item, len(d.Items))
	for _, it := range d.Items {
		byID[it.ItemID()] = it
	}

	items := make([]Item, 0, len(order))
	for _, id := range order {
		it, ok := byID[id]
		if !ok {
			return days, false
		}
		delete(byID, id) // each id may appear once
		items = append(items, it)
	}

	out := cloneDays(days)
	d.Items = items
	out[dayIdx] = d
	return out, true
}

// LocationAt infers where the traveler is at the given insertion point by
// scanning strictly backward, most recent item first, for the nearest travel
// leg. itemIdx < 0 means end of day. The scan never looks ahead, so inserting
// a leg later in the itinerary does not change earlier insertion points.
func LocationAt(days []Day, dayIdx int, itemIdx int) (TravelItem, bool) {
	if len(days) == 0 {
		return TravelItem{}, false
	}
	if dayIdx >= len(days) {
		dayIdx = len(days) - 1
	}
	if dayIdx < 0 {
		dayIdx = 0
	}

	for di := dayIdx; di >= 0; di-- {
		items := days[di].Items
		start := len(items) - 1
		if di == dayIdx && itemIdx >= 0 && itemIdx-1 < start {
			start = itemIdx - 1
		}
		for ii := start; ii >= 0; ii-- {
			if leg, ok := items[ii].(TravelItem); ok {
				return leg, true
			}
		}
	}
	return TravelItem{}, false
}
