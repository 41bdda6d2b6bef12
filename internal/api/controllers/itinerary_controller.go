package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/request_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/response_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	catalogService   services.CatalogServiceInterface
	validator        services.BudgetValidatorInterface
	costCalculator   services.CostCalculatorInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	catalogService services.CatalogServiceInterface,
	validator services.BudgetValidatorInterface,
	costCalculator services.CostCalculatorInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		catalogService:   catalogService,
		validator:        validator,
		costCalculator:   costCalculator,
	}
}

// dayIndex reads the 1-based day number from the path and converts it to a
// slice index.
func dayIndex(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return 0, false
	}
	return day - 1, true
}

func (ic *ItineraryController) respondDays(c *gin.Context, sessionID string, message string) {
	builder, err := ic.itineraryService.GetSession(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	hours := make([]float64, 0, len(builder.Days))
	for _, d := range builder.Days {
		hours = append(hours, ic.validator.HoursForDay(d))
	}
	utils.RespondSuccess(c, response_models.BuildItineraryResponse(builder, hours), message)
}

// StartItinerary godoc
// @Summary Start a building session
// @Description Create a new itinerary session that begins with an arrival into the chosen destination
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.StartItineraryRequest true "Entry destination"
// @Success 200 {object} response_models.ItineraryResponse
// @Router /itineraries [post]
func (ic *ItineraryController) StartItinerary(c *gin.Context) {
	var req request_models.StartItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination_id is required")
		return
	}

	builder, err := ic.itineraryService.StartSession(c.Request.Context(), req.DestinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ic.respondDays(c, builder.ID.String(), "Itinerary session started")
}

// GetItinerary godoc
// @Summary Get the current itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Router /itineraries/{id} [get]
func (ic *ItineraryController) GetItinerary(c *gin.Context) {
	ic.respondDays(c, c.Param("id"), "Itinerary fetched")
}

func (ic *ItineraryController) AddDay(c *gin.Context) {
	if _, err := ic.itineraryService.AddDay(c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ic.respondDays(c, c.Param("id"), "Day added")
}

func (ic *ItineraryController) RemoveDay(c *gin.Context) {
	idx, ok := dayIndex(c)
	if !ok {
		return
	}
	if _, err := ic.itineraryService.RemoveDay(c.Param("id"), idx); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ic.respondDays(c, c.Param("id"), "Day removed")
}

// AddExperience godoc
// @Summary Add an experience to a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param day path int true "Day number (1-based)"
// @Param request body request_models.AddExperienceRequest true "Experience"
// @Success 200 {object} response_models.ItineraryResponse
// @Router /itineraries/{id}/days/{day}/experiences [post]
func (ic *ItineraryController) AddExperience(c *gin.Context) {
	idx, ok := dayIndex(c)
	if !ok {
		return
	}
	var req request_models.AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "experience_id is required")
		return
	}
	if _, err := ic.itineraryService.AddExperience(c.Request.Context(), c.Param("id"), idx, req.ExperienceID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ic.respondDays(c, c.Param("id"), "Experience added")
}

func (ic *ItineraryController) AddTravel(c *gin.Context) {
	idx, ok := dayIndex(c)
	if !ok {
		return
	}
	var req request_models.AddTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination_id is required")
		return
	}
	if _, err := ic.itineraryService.AddTravel(c.Request.Context(), c.Param("id"), idx, req.DestinationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ic.respondDays(c, c.Param("id"), "Travel leg added")
}

func (ic *ItineraryController) AddHotel(c *gin.Context) {
	idx, ok := dayIndex(c)
	if !ok {
		return
	}
	var req request_models.AddHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	if _, err := ic.itineraryService.AddHotel(c.Request.Context(), c.Param("id"), idx, req.HotelID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ic.respondDays(c, c.Param("id"), "Hotel stay added")
}

func (ic *ItineraryController) RemoveItem(c *gin.Context) {
	idx, ok := dayIndex(c)
	if !ok {
		return
	}
	if _, err := ic.itineraryService.RemoveItem(c.Param("id"), idx, c.Param("itemId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ic.respondDays(c, c.Param("id"), "Item removed")
}

func (ic *ItineraryController) ReorderItems(c *gin.Context) {
	idx, ok := dayIndex(c)
	if !ok {
		return
	}
	var req request_models.ReorderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "item_ids is required")
		return
	}
	if _, err := ic.itineraryService.ReorderItems(c.Param("id"), idx, req.ItemIDs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ic.respondDays(c, c.Param("id"), "Items reordered")
}

// GetLocation godoc
// @Summary Resolve the location at an insertion point
// @Description Returns the destination whose catalog should be offered at the given day/item position
// @Tags Itinerary
// @Produce json
// @Param id path string true "Session ID"
// @Param day query int false "Day number (1-based, defaults to last day)"
// @Param item query int false "Item position within the day (defaults to end of day)"
// @Success 200 {object} response_models.LocationResponse
// @Router /itineraries/{id}/location [get]
func (ic *ItineraryController) GetLocation(c *gin.Context) {
	dayIdx := 1 << 30 // clamped to the last day by the scan
	if raw := c.Query("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil || day < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
			return
		}
		dayIdx = day - 1
	}
	itemIdx := -1
	if raw := c.Query("item"); raw != "" {
		item, err := strconv.Atoi(raw)
		if err != nil || item < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid item position")
			return
		}
		itemIdx = item
	}

	id, name, err := ic.itineraryService.LocationAt(c.Param("id"), dayIdx, itemIdx)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.LocationResponse{DestinationID: id, Name: name}, "Location resolved")
}

func (ic *ItineraryController) UpdateTraveler(c *gin.Context) {
	var req request_models.TravelerDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid traveler details")
		return
	}
	if err := ic.itineraryService.UpdateTraveler(c.Param("id"), req.ToProfile()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Traveler details updated")
}

// GetEstimate godoc
// @Summary Price estimate for the current itinerary
// @Description Fees by traveler class and nationality plus the catalog price of every placed item
// @Tags Itinerary
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response_models.EstimateResponse
// @Router /itineraries/{id}/estimate [get]
func (ic *ItineraryController) GetEstimate(c *gin.Context) {
	builder, err := ic.itineraryService.GetSession(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	rules, experiences, hotels, err := ic.catalogService.CostInputs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	grand, fees := ic.costCalculator.ComputeTotalCost(builder.Days, builder.Traveler, rules, experiences, hotels)

	out := response_models.EstimateResponse{
		TripLengthDays: utils.TripLengthDays(builder.Traveler.ArrivalDate, builder.Traveler.DepartureDate),
		FeeLines:       make([]response_models.FeeLineView, 0, len(fees.Lines)),
		FeesTotal:      fees.Total.String(),
		ItemsTotal:     grand.Sub(fees.Total).String(),
		GrandTotal:     grand.String(),
	}
	for _, line := range fees.Lines {
		out.FeeLines = append(out.FeeLines, response_models.FeeLineView{
			Label:  line.Label,
			Amount: line.Amount.String(),
		})
	}
	utils.RespondSuccess(c, out, "Estimate computed")
}
