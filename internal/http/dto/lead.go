package dto

import "leaseline.app/server/internal/model"

type CreateLeadRequest struct {
	PropertyID int64   `json:"property_id" binding:"required"`
	Name       *string `json:"name,omitempty"`
	Phone      string  `json:"phone" binding:"required"`
	Email      *string `json:"email,omitempty"`
	Message    string  `json:"message" binding:"required"`
	Source     string  `json:"source,omitempty"`
}

type CreateLeadResponse struct {
	Lead              *model.Lead `json:"lead"`
	NotificationSent  bool        `json:"notification_sent"`
	NotificationError string      `json:"notification_error,omitempty"`
}

type UpdateLeadRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Status  *string `json:"status,omitempty"`
	Urgency *int32  `json:"urgency,omitempty" binding:"omitempty,min=1,max=5"`
}
