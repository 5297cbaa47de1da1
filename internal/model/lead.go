package model

import (
	"encoding/json"
	"time"
)

// LeadCategory is the closed set of inbound-message intents.
type LeadCategory string

const (
	CategoryRentalInquiry       LeadCategory = "rental_inquiry"
	CategoryMaintenance         LeadCategory = "maintenance"
	CategoryViewingRequest      LeadCategory = "viewing_request"
	CategoryGeneral             LeadCategory = "general"
	CategoryVisitorEntry        LeadCategory = "visitor_entry"
	CategoryTenantCommunication LeadCategory = "tenant_communication"
	CategoryComplaint           LeadCategory = "complaint"
	CategoryPayment             LeadCategory = "payment"
)

// Valid reports whether c is one of the defined categories.
func (c LeadCategory) Valid() bool {
	switch c {
	case CategoryRentalInquiry, CategoryMaintenance, CategoryViewingRequest,
		CategoryGeneral, CategoryVisitorEntry, CategoryTenantCommunication,
		CategoryComplaint, CategoryPayment:
		return true
	}
	return false
}

// LeadStatus tracks a lead through its lifecycle. The core only drives
// new → contacted; later transitions come from the landlord.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusContacted  LeadStatus = "contacted"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusConverted  LeadStatus = "converted"
	LeadStatusClosed     LeadStatus = "closed"
)

// LeadSource is the channel the inquiry arrived on.
type LeadSource string

const (
	LeadSourceSMS   LeadSource = "sms"
	LeadSourceEmail LeadSource = "email"
	LeadSourcePhone LeadSource = "phone"
	LeadSourceWeb   LeadSource = "web"
)

type Lead struct {
	ID         int64        `json:"id"`
	PropertyID int64        `json:"property_id"`
	Name       *string      `json:"name,omitempty"`
	Phone      string       `json:"phone"`
	Email      *string      `json:"email,omitempty"`
	Message    string       `json:"message"`
	Category   LeadCategory `json:"category"`
	Urgency    int32        `json:"urgency"` // 1-5, 5 most urgent
	Status     LeadStatus   `json:"status"`
	Source     LeadSource   `json:"source"`
	// ResponseTime is minutes from lead creation to the auto-response
	// completing. Nil until the auto-response has been sent.
	ResponseTime *int32          `json:"response_time_minutes,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
