package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/request_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/response_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// SubmitItinerary godoc
// @Summary Submit the finished itinerary
// @Description Validate the itinerary, create the booking enquiry and send confirmation mails
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.TravelerDetailsRequest true "Traveler details"
// @Success 200 {object} response_models.BookingResponse
// @Failure 422 {object} utils.APIResponse
// @Router /itineraries/{id}/submit [post]
func (bc *BookingController) SubmitItinerary(c *gin.Context) {
	var req request_models.TravelerDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid traveler details")
		return
	}

	booking, err := bc.bookingService.SubmitItinerary(c.Request.Context(), c.Param("id"), req.ToProfile())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BookingResponse{
		ID:        booking.ID.String(),
		Status:    booking.Status,
		CreatedAt: utils.FormatRFC3339IST(utils.FromUnixSecondsIST(booking.CreatedAt)),
	}, "Itinerary submitted successfully")
}
