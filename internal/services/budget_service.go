package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

// MaxDayHours is the hard ceiling of committed hours per itinerary day.
const MaxDayHours = 18.0

// defaultExperienceHours applies when an experience's free-text duration
// has no parseable number in it.
const defaultExperienceHours = 2.0

var firstNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseDurationHours extracts the first numeric token of a free-text
// duration. "5-6 Hours" parses as 5, not an average or a maximum.
func ParseDurationHours(s string) float64 {
	m := firstNumberRe.FindString(s)
	if m == "" {
		return defaultExperienceHours
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return defaultExperienceHours
	}
	return v
}

type BudgetValidatorInterface interface {
	HoursForDay(day itinerary_models.Day) float64
	ValidateItinerary(days []itinerary_models.Day) error
}

func NewBudgetValidator() BudgetValidatorInterface {
	return &BudgetValidator{}
}

type BudgetValidator struct{}

func (v *BudgetValidator) HoursForDay(day itinerary_models.Day) float64 {
	var total float64
	for _, it := range day.Items {
		switch item := it.(type) {
		case itinerary_models.TravelItem:
			total += item.Hours
		case itinerary_models.ExperienceItem:
			total += ParseDurationHours(item.Duration)
		case itinerary_models.HotelItem:
			// a hotel night commits no daytime hours
		}
	}
	return total
}

// ValidateItinerary reports the first offending day, scanning day 1 forward.
// Every empty-day check runs before any budget check, so an empty day 1
// outranks an over-budget day 2. Invoked at submission time only; mutations
// are never blocked by it.
func (v *BudgetValidator) ValidateItinerary(days []itinerary_models.Day) error {
	for _, d := range days {
		if len(d.Items) == 0 {
			return fmt.Errorf("day %d: %w", d.DayNumber, utils.ErrEmptyDay)
		}
	}
	for _, d := range days {
		if hours := v.HoursForDay(d); hours > MaxDayHours {
			return fmt.Errorf("day %d has %.1f hours planned: %w", d.DayNumber, hours, utils.ErrDayOverBudget)
		}
	}
	return nil
}
