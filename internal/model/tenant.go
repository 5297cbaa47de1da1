package model

import "time"

// Tenant is a unit occupant. Tenants are created by the property owner and
// are read-only inputs to the visitor approval flow: a matching phone number
// is what distinguishes a tenant reply from a new lead.
type Tenant struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email,omitempty"`
	UnitNumber *string   `json:"unit_number,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
