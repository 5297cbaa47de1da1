package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"leaseline.app/server/core/db/sqlc"
	"leaseline.app/server/internal/model"
)

type visitorApprovalStore struct {
	queries *sqlc.Queries
}

func newVisitorApprovalStore(queries *sqlc.Queries) VisitorApprovalStore {
	return &visitorApprovalStore{queries: queries}
}

func (s *visitorApprovalStore) GetByID(ctx context.Context, id int64) (*model.VisitorApproval, error) {
	row, err := s.queries.GetVisitorApproval(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toVisitorApprovalModel(row), nil
}

func (s *visitorApprovalStore) Create(ctx context.Context, approval *model.VisitorApproval) error {
	row, err := s.queries.CreateVisitorApproval(ctx, sqlc.CreateVisitorApprovalParams{
		ID:             approval.ID,
		TenantID:       approval.TenantID,
		VisitorName:    approval.VisitorName,
		VisitorPhone:   approval.VisitorPhone,
		RequestMessage: approval.RequestMessage,
		ExpiresAt:      pgtype.Timestamptz{Time: approval.ExpiresAt, Valid: true},
	})
	if err != nil {
		return err
	}
	*approval = *toVisitorApprovalModel(row)
	return nil
}

func (s *visitorApprovalStore) ListByTenant(ctx context.Context, tenantID int64) ([]model.VisitorApproval, error) {
	rows, err := s.queries.ListApprovalsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return toVisitorApprovalModels(rows), nil
}

func (s *visitorApprovalStore) ListPendingByTenant(ctx context.Context, tenantID int64) ([]model.VisitorApproval, error) {
	rows, err := s.queries.ListPendingApprovalsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return toVisitorApprovalModels(rows), nil
}

// Resolve is a conditional write: the UPDATE matches only rows still in
// pending, so of two racing replies exactly one sees the row. The loser
// gets ErrNotFound.
func (s *visitorApprovalStore) Resolve(ctx context.Context, id int64, status model.ApprovalStatus, approvalMessage *string) (*model.VisitorApproval, error) {
	row, err := s.queries.ResolveVisitorApproval(ctx, sqlc.ResolveVisitorApprovalParams{
		ID:              id,
		Status:          string(status),
		ApprovalMessage: approvalMessage,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toVisitorApprovalModel(row), nil
}

func toVisitorApprovalModels(rows []sqlc.VisitorApproval) []model.VisitorApproval {
	approvals := make([]model.VisitorApproval, len(rows))
	for i, row := range rows {
		approvals[i] = *toVisitorApprovalModel(row)
	}
	return approvals
}

func toVisitorApprovalModel(row sqlc.VisitorApproval) *model.VisitorApproval {
	return &model.VisitorApproval{
		ID:              row.ID,
		TenantID:        row.TenantID,
		VisitorName:     row.VisitorName,
		VisitorPhone:    row.VisitorPhone,
		Status:          model.ApprovalStatus(row.Status),
		RequestMessage:  row.RequestMessage,
		ApprovalMessage: row.ApprovalMessage,
		ExpiresAt:       row.ExpiresAt.Time,
		CreatedAt:       row.CreatedAt.Time,
	}
}
