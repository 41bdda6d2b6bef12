package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewBookingController))
