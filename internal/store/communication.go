package store

import (
	"context"

	"leaseline.app/server/core/db/sqlc"
	"leaseline.app/server/internal/model"
)

type communicationStore struct {
	queries *sqlc.Queries
}

func newCommunicationStore(queries *sqlc.Queries) CommunicationStore {
	return &communicationStore{queries: queries}
}

func (s *communicationStore) Create(ctx context.Context, comm *model.Communication) error {
	row, err := s.queries.CreateCommunication(ctx, sqlc.CreateCommunicationParams{
		ID:          comm.ID,
		LeadID:      comm.LeadID,
		TenantID:    comm.TenantID,
		PropertyID:  comm.PropertyID,
		Type:        string(comm.Type),
		Direction:   string(comm.Direction),
		Message:     comm.Message,
		PhoneNumber: comm.PhoneNumber,
		Status:      string(comm.Status),
		ProviderSid: comm.ProviderSID,
	})
	if err != nil {
		return err
	}
	*comm = *toCommunicationModel(row)
	return nil
}

func (s *communicationStore) ListByLead(ctx context.Context, leadID int64) ([]model.Communication, error) {
	rows, err := s.queries.ListCommunicationsByLead(ctx, &leadID)
	if err != nil {
		return nil, err
	}
	comms := make([]model.Communication, len(rows))
	for i, row := range rows {
		comms[i] = *toCommunicationModel(row)
	}
	return comms, nil
}

func toCommunicationModel(row sqlc.Communication) *model.Communication {
	return &model.Communication{
		ID:          row.ID,
		LeadID:      row.LeadID,
		TenantID:    row.TenantID,
		PropertyID:  row.PropertyID,
		Type:        model.CommunicationType(row.Type),
		Direction:   model.CommunicationDirection(row.Direction),
		Message:     row.Message,
		PhoneNumber: row.PhoneNumber,
		Status:      model.CommunicationStatus(row.Status),
		ProviderSID: row.ProviderSid,
		CreatedAt:   row.CreatedAt.Time,
	}
}
