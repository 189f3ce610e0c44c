package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/circuitbreaker"
	"github.com/guttosm/trip-service/internal/domain/dto"
	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/guttosm/trip-service/internal/i18n"
	"github.com/guttosm/trip-service/internal/middleware"
	"github.com/guttosm/trip-service/internal/service"
)

// RootBanner is the plain-text body of GET /.
const RootBanner = "Backend for the trip planner service"

// TripHandler provides HTTP handlers for trip routes.
type TripHandler struct {
	trips service.TripService
	sink  middleware.ActivitySink
}

// NewTripHandler creates a handler. sink may be nil, in which case audit entries
// only go to the console log.
func NewTripHandler(trips service.TripService, sink middleware.ActivitySink) *TripHandler {
	return &TripHandler{trips: trips, sink: sink}
}

// Root handles GET /.
//
// @Summary      Service banner
// @Tags         Trips
// @Produce      plain
// @Success      200 {string} string "Backend for the trip planner service"
// @Router       / [get]
func (h *TripHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, RootBanner)
}

// ListTrips handles GET /trips.
//
// @Summary      List trips
// @Description  Returns every stored trip, newest first.
// @Tags         Trips
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Trip} "Stored trips"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	builder := NewResponseBuilder(c)

	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(trips)
}

// CreateTrip handles POST /trips.
//
// @Summary      Plan and store a trip
// @Description  Selects the subset of items with the most calories whose total weight fits maxWeight. When the best selection falls below minCalories the trip is stored with no items. Supports idempotency via the Idempotency-Key header.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateTripRequest true "Trip budget and candidate items"
// @Success      201 {object} dto.SuccessResponse{data=model.Trip} "Stored trip"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - same idempotency key in progress"
// @Failure      422 {object} dto.ErrorResponse "Request exceeds the allowed size"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateTripRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	solveReq, err := req.Validate()
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithDetails(http.StatusBadRequest, validationMessageKey(validationErr.Field), validationErr.Details(), err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	fields := map[string]interface{}{
		"name":         solveReq.Name,
		"candidates":   len(solveReq.Items),
		"max_weight":   solveReq.MaxWeight,
		"min_calories": solveReq.MinCalories,
	}

	trip, err := h.trips.Create(c.Request.Context(), solveReq)
	if err != nil {
		middleware.AuditLogError(h.sink, c, model.ActionCreateTrip, "", "Trip creation failed", err, fields)
		writeServiceError(builder, err)
		return
	}

	fields["selected"] = len(trip.OptimalItems)
	fields["total_calories"] = trip.TotalCalories
	middleware.AuditLog(h.sink, c, model.ActionCreateTrip, trip.ID.Hex(), "Trip created", fields)

	builder.SuccessCreated(trip)
}

// DeleteTrip handles DELETE /trips/:id.
//
// @Summary      Delete a trip
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip id (24 hex characters)"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "Trip deleted"
// @Failure      400 {object} dto.ErrorResponse "Malformed trip id"
// @Failure      404 {object} dto.ErrorResponse "Trip not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.trips.Delete(c.Request.Context(), id); err != nil {
		middleware.AuditLogError(h.sink, c, model.ActionDeleteTrip, id, "Trip deletion failed", err, nil)
		writeServiceError(builder, err)
		return
	}

	middleware.AuditLog(h.sink, c, model.ActionDeleteTrip, id, "Trip deleted", nil)

	message := i18n.GetTranslator().Translate(i18n.SuccessKeyTripDeleted, i18n.GetLocale(c))
	builder.SuccessOK(dto.MessageResponse{Message: message})
}

// writeServiceError maps service and repository errors to HTTP statuses.
func writeServiceError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
	case errors.Is(err, service.ErrInvalidTripID):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidTripID, err)
	case errors.Is(err, service.ErrNegativeBound), errors.Is(err, service.ErrNegativeItemValue):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	case service.IsLimitError(err):
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyLimitExceeded,
			map[string]string{"limit": err.Error()}, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func validationMessageKey(field string) string {
	switch {
	case field == dto.FieldName:
		return i18n.ErrKeyValidationName
	case field == dto.FieldMinCalories:
		return i18n.ErrKeyValidationMinCalories
	case field == dto.FieldMaxWeight:
		return i18n.ErrKeyValidationMaxWeight
	case strings.HasPrefix(field, dto.FieldItems):
		return i18n.ErrKeyValidationItems
	default:
		return i18n.ErrKeyInvalidRequestBody
	}
}
