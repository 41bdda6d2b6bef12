package itinerary_fx

import (
	"go.uber.org/fx"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
	mem "github.com/ogghostdeveloper/Tourism-sub000/pkg/memcache"
)

var Module = fx.Provide(
	provideBudgetValidator,
	provideCostCalculator,
	provideItineraryService)

func provideBudgetValidator() services.BudgetValidatorInterface {
	return services.NewBudgetValidator()
}

func provideCostCalculator() services.CostCalculatorInterface {
	return services.NewCostCalculator()
}

func provideItineraryService(
	sessions mem.BuilderSessionStore,
	destinationRepo repositories.DestinationRepositoryInterface,
	experienceRepo repositories.ExperienceRepositoryInterface,
	hotelRepo repositories.HotelRepositoryInterface,
	travelTime services.TravelTimeProviderInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(sessions, destinationRepo, experienceRepo, hotelRepo, travelTime)
}
