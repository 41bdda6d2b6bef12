package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary session not found or expired")
	case errors.Is(err, ErrDestinationMissing),
		errors.Is(err, ErrExperienceMissing),
		errors.Is(err, ErrHotelMissing):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDayOutOfRange), errors.Is(err, ErrItemNotFound):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLastDay):
		RespondError(c, http.StatusConflict, "An itinerary must keep at least one day")
	case errors.Is(err, ErrHotelAlreadySet):
		RespondError(c, http.StatusConflict, "Only one hotel stay can be added per day")
	case errors.Is(err, ErrDayClosedByHotel):
		RespondError(c, http.StatusConflict, "This day is already closed by a hotel stay")
	case errors.Is(err, ErrNotAPermutation):
		RespondError(c, http.StatusBadRequest, "Reordered items must match the day's current items")
	case errors.Is(err, ErrEmptyDay), errors.Is(err, ErrDayOverBudget):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
