package services

import (
	"github.com/shopspring/decimal"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

type FeeLine struct {
	Label  string
	Amount decimal.Decimal
}

type FeeBreakdown struct {
	Total decimal.Decimal
	Lines []FeeLine
}

type CostCalculatorInterface interface {
	ComputeFees(profile itinerary_models.TravelerProfile, rules []db_models.CostSetting) FeeBreakdown
	ComputeTotalCost(
		days []itinerary_models.Day,
		profile itinerary_models.TravelerProfile,
		rules []db_models.CostSetting,
		experiences []db_models.Experience,
		hotels []db_models.Hotel,
	) (decimal.Decimal, FeeBreakdown)
}

func NewCostCalculator() CostCalculatorInterface {
	return &CostCalculator{}
}

type CostCalculator struct{}

func scopeMatches(scope db_models.NationalityScope, nationality itinerary_models.Nationality) bool {
	switch scope {
	case db_models.ScopeDomestic:
		return nationality == itinerary_models.NationalityIndian
	case db_models.ScopeInternational:
		return nationality == itinerary_models.NationalityInternational
	}
	return false
}

func countForClass(class db_models.TravelerClass, profile itinerary_models.TravelerProfile) int {
	switch class {
	case db_models.ClassAdult:
		return profile.Adults
	case db_models.ClassChild6To12:
		return profile.Children6To12
	case db_models.ClassChildUnder6:
		return profile.ChildrenUnder6
	}
	return 0
}

// ComputeFees applies every matching fee rule to the traveler party.
// Per-night rules bill tripLengthDays = nights + 1, counting both the
// arrival and departure day. With either date unset the result is zero:
// dates are a precondition, not an error.
func (c *CostCalculator) ComputeFees(profile itinerary_models.TravelerProfile, rules []db_models.CostSetting) FeeBreakdown {
	out := FeeBreakdown{Total: decimal.Zero, Lines: []FeeLine{}}
	if !profile.HasTravelDates() {
		return out
	}

	tripDays := utils.TripLengthDays(profile.ArrivalDate, profile.DepartureDate)
	for _, rule := range rules {
		if !scopeMatches(rule.Scope, profile.Nationality) {
			continue
		}
		count := countForClass(rule.TravelerClass, profile)
		if count <= 0 {
			continue
		}

		amount := rule.Price.Mul(decimal.NewFromInt(int64(count)))
		if rule.ChargeType == db_models.ChargePerNight {
			amount = amount.Mul(decimal.NewFromInt(int64(tripDays)))
		}

		out.Lines = append(out.Lines, FeeLine{Label: rule.Title, Amount: amount})
		out.Total = out.Total.Add(amount)
	}
	return out
}

// ComputeTotalCost folds fees plus the catalog price of every experience and
// hotel item across all days. It is pure and recomputed from scratch on each
// call; any single mutation can change which items are in scope, so nothing
// is cached.
func (c *CostCalculator) ComputeTotalCost(
	days []itinerary_models.Day,
	profile itinerary_models.TravelerProfile,
	rules []db_models.CostSetting,
	experiences []db_models.Experience,
	hotels []db_models.Hotel,
) (decimal.Decimal, FeeBreakdown) {

	fees := c.ComputeFees(profile, rules)
	total := fees.Total

	experiencePrices := make(map[string]decimal.Decimal, len(experiences))
	for _, e := range experiences {
		experiencePrices[e.ID.String()] = e.Price
	}
	hotelPrices := make(map[string]decimal.Decimal, len(hotels))
	for _, h := range hotels {
		hotelPrices[h.ID.String()] = h.PricePerNight
	}

	for _, d := range days {
		for _, it := range d.Items {
			switch item := it.(type) {
			case itinerary_models.ExperienceItem:
				if price, ok := experiencePrices[item.ExperienceID]; ok {
					total = total.Add(price)
				}
			case itinerary_models.HotelItem:
				if price, ok := hotelPrices[item.HotelID]; ok {
					total = total.Add(price)
				}
			case itinerary_models.TravelItem:
				// transfers are priced into the package, not per leg
			}
		}
	}
	return total, fees
}
