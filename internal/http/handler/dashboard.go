package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"leaseline.app/server/internal/service"
)

type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}

	stats, err := h.dashboard.Stats(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to compute dashboard stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
