package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"leaseline.app/server/common/id"
	"leaseline.app/server/internal/http/dto"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/store"
)

type UserHandler struct {
	users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &model.User{
		ID:    id.New(),
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
	}
	if err := h.users.Create(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}
