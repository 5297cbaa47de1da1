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

type TenantHandler struct {
	tenants store.TenantStore
}

func NewTenantHandler(tenants store.TenantStore) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

func (h *TenantHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant := &model.Tenant{
		ID:         id.New(),
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		UnitNumber: req.UnitNumber,
	}
	if err := h.tenants.Create(ctx, tenant); err != nil {
		slog.ErrorContext(ctx, "failed to create tenant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tenant"})
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

func (h *TenantHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	propertyID, ok := parseQueryID(c, "property_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_id required"})
		return
	}

	tenants, err := h.tenants.ListByProperty(ctx, propertyID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list tenants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tenants"})
		return
	}

	c.JSON(http.StatusOK, tenants)
}
