package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/usersvc/internal/domain/errors"
	"github.com/polkiloo/usersvc/internal/server/http/dto"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"

	msgInvalidCredentials = "Invalid email or password"
)

// AuthHandler processes login requests.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /login. Every failure mode, malformed body included,
// yields the same generic 401 so callers cannot probe for accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.LoginResponse{Status: statusFailed, Message: msgInvalidCredentials})
		return
	}

	user, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.LoginResponse{Status: statusFailed, Message: msgInvalidCredentials})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Status: statusSuccess, UserID: user.ID})
}
