package traveltime_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
)

var Module = fx.Provide(provideTravelTimeRepo, provideTravelTimeService)

func provideTravelTimeRepo(db *gorm.DB) repositories.TravelTimeRepositoryInterface {
	return repositories.NewTravelTimeRepository(db)
}

func provideTravelTimeService(repo repositories.TravelTimeRepositoryInterface) services.TravelTimeProviderInterface {
	return services.NewTravelTimeService(repo, services.NewInMemoryPairCache())
}
