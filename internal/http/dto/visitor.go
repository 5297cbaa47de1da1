package dto

import "leaseline.app/server/internal/model"

type VisitorRequestRequest struct {
	TenantID     int64   `json:"tenant_id" binding:"required"`
	VisitorName  *string `json:"visitor_name,omitempty"`
	VisitorPhone string  `json:"visitor_phone" binding:"required"`
	Message      *string `json:"message,omitempty"`
}

type VisitorRequestResponse struct {
	Approval          *model.VisitorApproval `json:"approval"`
	NotificationSent  bool                   `json:"notification_sent"`
	NotificationError string                 `json:"notification_error,omitempty"`
}
