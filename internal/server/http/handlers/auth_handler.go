package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/server/http/dto"
	"github.com/polkiloo/staybook/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed credentials payload"})
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Secret)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithSession(c, user, token)
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed credentials payload"})
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Name, req.Secret)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithSession(c, user, token)
}

func respondWithSession(c *gin.Context, user *model.User, token string) {
	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.SessionResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name},
	})
}
