package utils

import (
	"math"
	"time"
)

// India Standard Time (+05:30); all traveler-facing dates render in IST.
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

const isoDateLayout = "2006-01-02"

// ParseISODate parses a date-only string ("2025-03-01") in IST.
// Returns the zero time for empty or malformed input so callers can
// treat an unset date as "not yet chosen".
func ParseISODate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(isoDateLayout, s, istLoc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format(isoDateLayout)
}

// TripLengthDays bills a stay of N nights as N+1 calendar days, counting
// both the arrival and the departure day. Returns 0 when either date is
// unset, which callers treat as "fees not computable yet".
func TripLengthDays(arrival, departure time.Time) int {
	if arrival.IsZero() || departure.IsZero() {
		return 0
	}
	nights := math.Ceil(departure.Sub(arrival).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return int(nights) + 1
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsIST converts an epoch value in seconds to IST. Returns the
// zero time if t <= 0 to let callers decide how to render.
func FromUnixSecondsIST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(istLoc)
}

func FormatRFC3339IST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format(time.RFC3339)
}
