package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/staybook/internal/server/http/dto"
)

// BookingHandler manages booking and payment endpoints.
type BookingHandler struct {
	facade BookingFacade
}

// NewBookingHandler constructs BookingHandler.
func NewBookingHandler(facade BookingFacade) *BookingHandler {
	return &BookingHandler{facade: facade}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "property_id, check_in and check_out are required"})
		return
	}

	booking, err := h.facade.CreateBooking(c.Request.Context(), CurrentUserID(c), req.PropertyID, req.CheckIn, req.CheckOut)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(*booking))
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.facade.Bookings(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, response)
}

// Checkout handles POST /api/bookings/:id/checkout.
func (h *BookingHandler) Checkout(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	booking, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(*booking))
}

// Pay handles POST /api/bookings/:id/payments.
func (h *BookingHandler) Pay(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	payment, err := h.facade.ProcessPayment(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(*payment))
}
