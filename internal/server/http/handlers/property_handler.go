package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/server/http/dto"
)

// PropertyHandler serves the catalog.
type PropertyHandler struct {
	facade CatalogFacade
}

// NewPropertyHandler constructs PropertyHandler.
func NewPropertyHandler(facade CatalogFacade) *PropertyHandler {
	return &PropertyHandler{facade: facade}
}

// List handles GET /api/properties.
func (h *PropertyHandler) List(c *gin.Context) {
	response := make([]dto.PropertyResponse, 0)
	for p := range h.facade.Properties(c.Request.Context()) {
		response = append(response, toPropertyResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/properties/:id. Booked properties are reported as missing.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	property, err := h.facade.Property(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPropertyResponse(*property))
}
