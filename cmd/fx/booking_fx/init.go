package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
)

var Module = fx.Provide(provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepositoryInterface {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	itineraries services.ItineraryServiceInterface,
	validator services.BudgetValidatorInterface,
	bookingRepo repositories.BookingRepositoryInterface,
	mail services.IMailService,
) services.BookingServiceInterface {
	return services.NewBookingService(itineraries, validator, bookingRepo, mail)
}
