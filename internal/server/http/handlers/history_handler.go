package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/staybook/internal/server/http/dto"
)

// HistoryHandler serves the current user's history.
type HistoryHandler struct {
	facade HistoryFacade
}

// NewHistoryHandler constructs HistoryHandler.
func NewHistoryHandler(facade HistoryFacade) *HistoryHandler {
	return &HistoryHandler{facade: facade}
}

// Get handles GET /api/history.
func (h *HistoryHandler) Get(c *gin.Context) {
	history, err := h.facade.History(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := dto.HistoryResponse{
		Bookings: make([]dto.BookingResponse, 0, len(history.Bookings)),
		Payments: make([]dto.PaymentResponse, 0, len(history.Payments)),
	}
	for _, b := range history.Bookings {
		response.Bookings = append(response.Bookings, toBookingResponse(b))
	}
	for _, p := range history.Payments {
		response.Payments = append(response.Payments, toPaymentResponse(p))
	}
	c.JSON(http.StatusOK, response)
}
