package model

import "time"

type CommunicationType string

const (
	CommunicationTypeSMS   CommunicationType = "sms"
	CommunicationTypeEmail CommunicationType = "email"
	CommunicationTypeCall  CommunicationType = "call"
)

type CommunicationDirection string

const (
	DirectionInbound  CommunicationDirection = "inbound"
	DirectionOutbound CommunicationDirection = "outbound"
)

type CommunicationStatus string

const (
	CommunicationStatusSent      CommunicationStatus = "sent"
	CommunicationStatusDelivered CommunicationStatus = "delivered"
	CommunicationStatusFailed    CommunicationStatus = "failed"
)

// Communication is one row of the message audit trail. Every inbound SMS and
// every outbound notification gets a record, whether or not the send worked.
type Communication struct {
	ID          int64                  `json:"id"`
	LeadID      *int64                 `json:"lead_id,omitempty"`
	TenantID    *int64                 `json:"tenant_id,omitempty"`
	PropertyID  int64                  `json:"property_id"`
	Type        CommunicationType      `json:"type"`
	Direction   CommunicationDirection `json:"direction"`
	Message     string                 `json:"message"`
	PhoneNumber *string                `json:"phone_number,omitempty"`
	Status      CommunicationStatus    `json:"status"`
	ProviderSID *string                `json:"provider_sid,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}
