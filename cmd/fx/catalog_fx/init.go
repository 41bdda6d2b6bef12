package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
)

var Module = fx.Provide(
	provideDestinationRepo,
	provideExperienceRepo,
	provideHotelRepo,
	provideCostSettingRepo,
	provideCatalogService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepositoryInterface {
	return repositories.NewDestinationRepository(db)
}

func provideExperienceRepo(db *gorm.DB) repositories.ExperienceRepositoryInterface {
	return repositories.NewExperienceRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepositoryInterface {
	return repositories.NewHotelRepository(db)
}

func provideCostSettingRepo(db *gorm.DB) repositories.CostSettingRepositoryInterface {
	return repositories.NewCostSettingRepository(db)
}

func provideCatalogService(
	destinationRepo repositories.DestinationRepositoryInterface,
	experienceRepo repositories.ExperienceRepositoryInterface,
	hotelRepo repositories.HotelRepositoryInterface,
	costSettingRepo repositories.CostSettingRepositoryInterface,
) services.CatalogServiceInterface {
	return services.NewCatalogService(destinationRepo, experienceRepo, hotelRepo, costSettingRepo)
}
