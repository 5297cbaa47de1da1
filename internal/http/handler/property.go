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

type PropertyHandler struct {
	properties store.PropertyStore
}

func NewPropertyHandler(properties store.PropertyStore) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

func (h *PropertyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property := &model.Property{
		ID:        id.New(),
		UserID:    req.UserID,
		Name:      req.Name,
		Address:   req.Address,
		Units:     req.Units,
		Rent:      req.Rent,
		SMSNumber: req.SMSNumber,
	}
	if err := h.properties.Create(ctx, property); err != nil {
		slog.ErrorContext(ctx, "failed to create property", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}

	properties, err := h.properties.ListByUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list properties", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}
