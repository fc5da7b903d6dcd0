package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/usersvc/internal/domain/errors"
	"github.com/polkiloo/usersvc/internal/server/http/dto"
)

const (
	msgInvalidInput   = "Invalid input"
	msgInvalidData    = "Invalid data"
	msgDuplicateEmail = "User with this email already exists"
	msgUserNotFound   = "User not found"
	msgUserCreated    = "User created successfully"
	msgUserUpdated    = "User updated successfully"
	msgUserDeleted    = "User deleted successfully"
	msgUserNotExists  = "User doesnt exists"
	msgSearchMissing  = "Please provide a name to search"
	msgInternalError  = "Internal server error"
)

// UserHandler processes CRUD and search requests over user records.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Get handles GET /user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-integer id cannot name any record.
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgUserNotFound})
		return
	}

	user, err := h.facade.User(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgUserNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgInvalidInput})
		return
	}

	_, err := h.facade.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyField):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgInvalidInput})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgDuplicateEmail})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: msgUserCreated})
}

// Update handles PUT /user/:id. A valid body against an unknown id still
// reports success, preserving the published contract of the endpoint.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgInvalidData})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgInvalidData})
		return
	}

	if err := h.facade.UpdateUser(c.Request.Context(), id, req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			// fall through to the success response below
		case errors.Is(err, domainErrors.ErrEmptyField), errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgInvalidData})
			return
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
			return
		}
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgUserUpdated})
}

// Delete handles DELETE /user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgUserNotExists})
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgUserNotExists})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgUserDeleted})
}

// Search handles GET /search?name=<q>.
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("name")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgSearchMissing})
		return
	}

	users, err := h.facade.SearchUsers(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmptyField) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgSearchMissing})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}
