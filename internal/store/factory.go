package store

import (
	"leaseline.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Properties() PropertyStore {
	return newPropertyStore(s.queries)
}

func (s *Stores) Tenants() TenantStore {
	return newTenantStore(s.queries)
}

func (s *Stores) Leads() LeadStore {
	return newLeadStore(s.queries)
}

func (s *Stores) Communications() CommunicationStore {
	return newCommunicationStore(s.queries)
}

func (s *Stores) VisitorApprovals() VisitorApprovalStore {
	return newVisitorApprovalStore(s.queries)
}
