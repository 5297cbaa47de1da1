package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"leaseline.app/server/core/db/sqlc"
	"leaseline.app/server/internal/model"
)

type leadStore struct {
	queries *sqlc.Queries
}

func newLeadStore(queries *sqlc.Queries) LeadStore {
	return &leadStore{queries: queries}
}

func (s *leadStore) GetByID(ctx context.Context, id int64) (*model.Lead, error) {
	row, err := s.queries.GetLead(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toLeadModel(row), nil
}

func (s *leadStore) Create(ctx context.Context, lead *model.Lead) error {
	row, err := s.queries.CreateLead(ctx, sqlc.CreateLeadParams{
		ID:         lead.ID,
		PropertyID: lead.PropertyID,
		Name:       lead.Name,
		Phone:      lead.Phone,
		Email:      lead.Email,
		Message:    lead.Message,
		Category:   string(lead.Category),
		Urgency:    lead.Urgency,
		Status:     string(lead.Status),
		Source:     string(lead.Source),
		Metadata:   lead.Metadata,
	})
	if err != nil {
		return err
	}
	*lead = *toLeadModel(row)
	return nil
}

func (s *leadStore) MarkContacted(ctx context.Context, id int64, responseTimeMinutes int32) (*model.Lead, error) {
	row, err := s.queries.MarkLeadContacted(ctx, sqlc.MarkLeadContactedParams{
		ID:                  id,
		ResponseTimeMinutes: &responseTimeMinutes,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toLeadModel(row), nil
}

func (s *leadStore) Update(ctx context.Context, params UpdateLeadParams) (*model.Lead, error) {
	var status *string
	if params.Status != nil {
		st := string(*params.Status)
		status = &st
	}
	row, err := s.queries.UpdateLead(ctx, sqlc.UpdateLeadParams{
		ID:      params.ID,
		Name:    params.Name,
		Email:   params.Email,
		Status:  status,
		Urgency: params.Urgency,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toLeadModel(row), nil
}

func (s *leadStore) ListByProperty(ctx context.Context, propertyID int64) ([]model.Lead, error) {
	rows, err := s.queries.ListLeadsByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	leads := make([]model.Lead, len(rows))
	for i, row := range rows {
		leads[i] = *toLeadModel(row)
	}
	return leads, nil
}

func (s *leadStore) ListByUser(ctx context.Context, userID int64) ([]model.Lead, error) {
	rows, err := s.queries.ListLeadsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	leads := make([]model.Lead, len(rows))
	for i, row := range rows {
		leads[i] = *toLeadModel(row)
	}
	return leads, nil
}

func toLeadModel(row sqlc.Lead) *model.Lead {
	return &model.Lead{
		ID:           row.ID,
		PropertyID:   row.PropertyID,
		Name:         row.Name,
		Phone:        row.Phone,
		Email:        row.Email,
		Message:      row.Message,
		Category:     model.LeadCategory(row.Category),
		Urgency:      row.Urgency,
		Status:       model.LeadStatus(row.Status),
		Source:       model.LeadSource(row.Source),
		ResponseTime: row.ResponseTimeMinutes,
		Metadata:     row.Metadata,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
