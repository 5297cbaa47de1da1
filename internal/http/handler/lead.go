package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leaseline.app/server/internal/http/dto"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/service"
	"leaseline.app/server/internal/store"
)

type LeadHandler struct {
	ingest service.LeadIngestService
	leads  store.LeadStore
}

func NewLeadHandler(ingest service.LeadIngestService, leads store.LeadStore) *LeadHandler {
	return &LeadHandler{
		ingest: ingest,
		leads:  leads,
	}
}

// Create runs the full ingestion flow: classify, persist, auto-respond.
// A 201 does not imply the auto-response went out; check notification_sent.
func (h *LeadHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.ingest.Ingest(ctx, service.LeadIngestParams{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Message:    req.Message,
		Source:     model.LeadSource(req.Source),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		default:
			slog.ErrorContext(ctx, "failed to create lead", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create lead"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateLeadResponse{
		Lead:              result.Lead,
		NotificationSent:  result.NotificationSent,
		NotificationError: result.NotificationError,
	})
}

func (h *LeadHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if userID, ok := parseQueryID(c, "user_id"); ok {
		leads, err := h.leads.ListByUser(ctx, userID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to list leads", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
			return
		}
		c.JSON(http.StatusOK, leads)
		return
	}

	if propertyID, ok := parseQueryID(c, "property_id"); ok {
		leads, err := h.leads.ListByProperty(ctx, propertyID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to list leads", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
			return
		}
		c.JSON(http.StatusOK, leads)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "user_id or property_id required"})
}

func (h *LeadHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status *model.LeadStatus
	if req.Status != nil {
		st := model.LeadStatus(*req.Status)
		switch st {
		case model.LeadStatusNew, model.LeadStatusContacted, model.LeadStatusInProgress,
			model.LeadStatusConverted, model.LeadStatusClosed:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = &st
	}

	lead, err := h.leads.Update(ctx, store.UpdateLeadParams{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Status:  status,
		Urgency: req.Urgency,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update lead", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lead"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

func parseQueryID(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
