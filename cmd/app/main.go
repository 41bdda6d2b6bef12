package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/booking_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/catalog_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/controllers_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/db_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/itinerary_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/mail_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/memcache_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/cmd/fx/traveltime_fx"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/api/controllers"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		traveltime_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		mail_fx.Module,
		booking_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, catalogController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController) {

	catalog := r.Group("/")
	catalog.GET("/destinations", catalogController.ListDestinations)
	catalog.GET("/destinations/:id/experiences", catalogController.ListExperiences)
	catalog.GET("/destinations/:id/hotels", catalogController.ListHotels)
	catalog.GET("/cost-settings", catalogController.ListCostSettings)

	itineraries := r.Group("/itineraries")
	itineraries.POST("", itineraryController.StartItinerary)
	itineraries.GET("/:id", itineraryController.GetItinerary)
	itineraries.POST("/:id/days", itineraryController.AddDay)
	itineraries.DELETE("/:id/days/:day", itineraryController.RemoveDay)
	itineraries.POST("/:id/days/:day/experiences", itineraryController.AddExperience)
	itineraries.POST("/:id/days/:day/travel", itineraryController.AddTravel)
	itineraries.POST("/:id/days/:day/hotel", itineraryController.AddHotel)
	itineraries.DELETE("/:id/days/:day/items/:itemId", itineraryController.RemoveItem)
	itineraries.PUT("/:id/days/:day/items", itineraryController.ReorderItems)
	itineraries.GET("/:id/location", itineraryController.GetLocation)
	itineraries.PUT("/:id/traveler", itineraryController.UpdateTraveler)
	itineraries.GET("/:id/estimate", itineraryController.GetEstimate)
	itineraries.POST("/:id/submit", bookingController.SubmitItinerary)
}
