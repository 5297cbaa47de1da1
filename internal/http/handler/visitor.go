package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"leaseline.app/server/internal/http/dto"
	"leaseline.app/server/internal/service"
)

type VisitorHandler struct {
	approvals service.VisitorApprovalService
}

func NewVisitorHandler(approvals service.VisitorApprovalService) *VisitorHandler {
	return &VisitorHandler{approvals: approvals}
}

// CreateRequest registers a visitor entry request and texts the tenant.
func (h *VisitorHandler) CreateRequest(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.VisitorRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.approvals.CreateRequest(ctx, service.VisitorRequestParams{
		TenantID:     req.TenantID,
		VisitorName:  req.VisitorName,
		VisitorPhone: req.VisitorPhone,
		Message:      req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		default:
			slog.ErrorContext(ctx, "failed to create visitor request", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create visitor request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.VisitorRequestResponse{
		Approval:          result.Approval,
		NotificationSent:  result.NotificationSent,
		NotificationError: result.NotificationError,
	})
}
