package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrSessionNotFound    = errors.New("itinerary session not found")
	ErrDestinationMissing = errors.New("destination not found")
	ErrExperienceMissing  = errors.New("experience not found")
	ErrHotelMissing       = errors.New("hotel not found")
	ErrDayOutOfRange      = errors.New("day index out of range")
	ErrItemNotFound       = errors.New("item not found in day")
	ErrLastDay            = errors.New("an itinerary must keep at least one day")
	ErrHotelAlreadySet    = errors.New("only one hotel stay per day")
	ErrDayClosedByHotel   = errors.New("day already closed by a hotel stay")
	ErrNotAPermutation    = errors.New("reordered items do not match the day's items")
	ErrEmptyDay           = errors.New("day has no items")
	ErrDayOverBudget      = errors.New("day exceeds the daily hour budget")
	ErrDatabaseError      = errors.New("database error")
)
