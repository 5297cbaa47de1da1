package model

import "time"

// ApprovalStatus is the visitor-approval state machine. pending is the only
// non-terminal state; a request transitions exactly once, to approved or
// denied, and is then immutable.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusDenied   ApprovalStatus = "denied"
)

type VisitorApproval struct {
	ID             int64          `json:"id"`
	TenantID       int64          `json:"tenant_id"`
	VisitorName    *string        `json:"visitor_name,omitempty"`
	VisitorPhone   string         `json:"visitor_phone"`
	Status         ApprovalStatus `json:"status"`
	RequestMessage *string        `json:"request_message,omitempty"`
	// ApprovalMessage holds the tenant's raw reply text once resolved.
	ApprovalMessage *string   `json:"approval_message,omitempty"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// Expired reports whether the request's expiry has passed as of now.
// Expiry is enforced lazily at read time; expired rows keep status pending
// in storage but are ineligible for reply matching.
func (v *VisitorApproval) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
