package store

import (
	"context"
	"errors"

	"leaseline.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for landlord account data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// PropertyStore defines the contract for property data access
type PropertyStore interface {
	GetByID(ctx context.Context, id int64) (*model.Property, error)
	// GetBySMSNumber resolves the property a webhook message was addressed
	// to, by its dedicated inbound number.
	GetBySMSNumber(ctx context.Context, smsNumber string) (*model.Property, error)
	Create(ctx context.Context, property *model.Property) error
	ListByUser(ctx context.Context, userID int64) ([]model.Property, error)
}

// TenantStore defines the contract for tenant data access
type TenantStore interface {
	GetByID(ctx context.Context, id int64) (*model.Tenant, error)
	// GetActiveByPhone returns the oldest active tenant with this phone
	// number, or ErrNotFound. A hit means an inbound message is a tenant
	// reply, not a lead.
	GetActiveByPhone(ctx context.Context, phone string) (*model.Tenant, error)
	Create(ctx context.Context, tenant *model.Tenant) error
	ListByProperty(ctx context.Context, propertyID int64) ([]model.Tenant, error)
}

// UpdateLeadParams carries the optional fields of a lead update; nil
// leaves the column unchanged.
type UpdateLeadParams struct {
	ID      int64
	Name    *string
	Email   *string
	Status  *model.LeadStatus
	Urgency *int32
}

// LeadStore defines the contract for lead data access
type LeadStore interface {
	GetByID(ctx context.Context, id int64) (*model.Lead, error)
	Create(ctx context.Context, lead *model.Lead) error
	// MarkContacted moves the lead to contacted and records how many
	// minutes the auto-response took.
	MarkContacted(ctx context.Context, id int64, responseTimeMinutes int32) (*model.Lead, error)
	Update(ctx context.Context, params UpdateLeadParams) (*model.Lead, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]model.Lead, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Lead, error)
}

// CommunicationStore defines the contract for the message audit trail
type CommunicationStore interface {
	Create(ctx context.Context, comm *model.Communication) error
	ListByLead(ctx context.Context, leadID int64) ([]model.Communication, error)
}

// VisitorApprovalStore defines the contract for visitor approval data access
type VisitorApprovalStore interface {
	GetByID(ctx context.Context, id int64) (*model.VisitorApproval, error)
	Create(ctx context.Context, approval *model.VisitorApproval) error
	ListByTenant(ctx context.Context, tenantID int64) ([]model.VisitorApproval, error)
	// ListPendingByTenant returns pending requests oldest first. Expiry is
	// not filtered here; callers skip expired rows.
	ListPendingByTenant(ctx context.Context, tenantID int64) ([]model.VisitorApproval, error)
	// Resolve transitions a request out of pending, recording the tenant's
	// raw reply. It is conditional on the row still being pending: when a
	// concurrent reply already resolved it, Resolve returns ErrNotFound and
	// the caller treats the reply as a no-op.
	Resolve(ctx context.Context, id int64, status model.ApprovalStatus, approvalMessage *string) (*model.VisitorApproval, error)
}
