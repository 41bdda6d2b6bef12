package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Description Fetch a paginated list of destinations open for itinerary building
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.DestinationResponse
// @Router /destinations [get]
func (cc *CatalogController) ListDestinations(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	destinations, err := cc.catalogService.ListDestinations(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (cc *CatalogController) ListExperiences(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	experiences, err := cc.catalogService.ListExperiences(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, experiences, "Experiences fetched successfully")
}

func (cc *CatalogController) ListHotels(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	hotels, err := cc.catalogService.ListHotels(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

func (cc *CatalogController) ListCostSettings(c *gin.Context) {
	settings, err := cc.catalogService.ListCostSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Cost settings fetched successfully")
}
