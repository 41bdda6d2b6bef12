package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

func rule(price int64, charge db_models.ChargeType, scope db_models.NationalityScope, class db_models.TravelerClass) db_models.CostSetting {
	return db_models.CostSetting{
		Title:         "Permit fee",
		Price:         decimal.NewFromInt(price),
		ChargeType:    charge,
		Scope:         scope,
		TravelerClass: class,
	}
}

func TestComputeFeesPerNightScenario(t *testing.T) {
	calc := NewCostCalculator()
	profile := itinerary_models.TravelerProfile{
		Nationality:   itinerary_models.NationalityInternational,
		Adults:        2,
		Children6To12: 1,
		ArrivalDate:   utils.ParseISODate("2025-03-01"),
		DepartureDate: utils.ParseISODate("2025-03-04"),
	}
	rules := []db_models.CostSetting{
		rule(100, db_models.ChargePerNight, db_models.ScopeInternational, db_models.ClassAdult),
	}

	fees := calc.ComputeFees(profile, rules)

	// 3 nights billed as 4 days: 100 x 2 adults x 4
	require.Len(t, fees.Lines, 1)
	assert.True(t, fees.Total.Equal(decimal.NewFromInt(800)), "got %s", fees.Total)
}

func TestComputeFeesUnsetDatesReturnsZero(t *testing.T) {
	calc := NewCostCalculator()
	profile := itinerary_models.TravelerProfile{
		Nationality: itinerary_models.NationalityIndian,
		Adults:      2,
	}
	rules := []db_models.CostSetting{
		rule(500, db_models.ChargePerNight, db_models.ScopeDomestic, db_models.ClassAdult),
	}

	fees := calc.ComputeFees(profile, rules)
	assert.True(t, fees.Total.IsZero())
	assert.Empty(t, fees.Lines)
}

func TestComputeFeesScopeAndClassFiltering(t *testing.T) {
	calc := NewCostCalculator()
	profile := itinerary_models.TravelerProfile{
		Nationality:   itinerary_models.NationalityIndian,
		Adults:        1,
		ArrivalDate:   utils.ParseISODate("2025-05-10"),
		DepartureDate: utils.ParseISODate("2025-05-12"),
	}
	rules := []db_models.CostSetting{
		rule(50, db_models.ChargeOneTime, db_models.ScopeDomestic, db_models.ClassAdult),
		rule(90, db_models.ChargeOneTime, db_models.ScopeInternational, db_models.ClassAdult), // wrong scope
		rule(30, db_models.ChargeOneTime, db_models.ScopeDomestic, db_models.ClassChild6To12), // zero count
	}

	fees := calc.ComputeFees(profile, rules)

	require.Len(t, fees.Lines, 1)
	assert.True(t, fees.Total.Equal(decimal.NewFromInt(50)), "one-time fee is not multiplied by days, got %s", fees.Total)
}

func TestComputeTotalCostFoldsItemPrices(t *testing.T) {
	calc := NewCostCalculator()

	exp := db_models.Experience{Price: decimal.NewFromInt(120)}
	exp.ID = uuid.New()
	htl := db_models.Hotel{PricePerNight: decimal.NewFromInt(200)}
	htl.ID = uuid.New()

	days := []itinerary_models.Day{
		{DayNumber: 1, Items: []itinerary_models.Item{
			itinerary_models.TravelItem{ID: uuid.New(), ToName: "Gangtok", Hours: 0},
			itinerary_models.ExperienceItem{ID: uuid.New(), ExperienceID: exp.ID.String()},
			itinerary_models.ExperienceItem{ID: uuid.New(), ExperienceID: uuid.NewString()}, // unmatched: 0
			itinerary_models.HotelItem{ID: uuid.New(), HotelID: htl.ID.String()},
		}},
	}
	profile := itinerary_models.TravelerProfile{Nationality: itinerary_models.NationalityIndian, Adults: 1}

	total, fees := calc.ComputeTotalCost(days, profile, nil,
		[]db_models.Experience{exp}, []db_models.Hotel{htl})

	assert.True(t, fees.Total.IsZero(), "no dates, no rules: fee total must be zero")
	assert.True(t, total.Equal(decimal.NewFromInt(320)), "got %s", total)
}

func TestComputeTotalCostEmptyItineraryAndUnsetDates(t *testing.T) {
	calc := NewCostCalculator()
	total, fees := calc.ComputeTotalCost(nil, itinerary_models.TravelerProfile{}, nil, nil, nil)
	assert.True(t, total.IsZero())
	assert.True(t, fees.Total.IsZero())
}
