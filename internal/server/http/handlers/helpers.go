package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/server/http/dto"
	"github.com/polkiloo/staybook/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrLoginFailed):
		return http.StatusUnauthorized
	// ErrUnavailable is also a NotFound, so it is matched first.
	case errors.Is(err, domainErrors.ErrUnavailable):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func toPropertyResponse(p model.Property) dto.PropertyResponse {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return dto.PropertyResponse{
		ID:           p.ID,
		Location:     p.Location,
		NightlyPrice: p.NightlyPrice,
		Amenities:    amenities,
		Available:    p.Available,
	}
}

func toBookingResponse(b model.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		Location:   b.Location,
		CheckIn:    b.CheckIn.Format(model.DateLayout),
		CheckOut:   b.CheckOut.Format(model.DateLayout),
		Nights:     b.Nights,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:          p.ID,
		BookingID:   p.Booking.ID,
		PropertyID:  p.Booking.PropertyID,
		Location:    p.Booking.Location,
		Amount:      p.Amount,
		Status:      string(p.Status),
		ProcessedAt: p.ProcessedAt,
	}
}
