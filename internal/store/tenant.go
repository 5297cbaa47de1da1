package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"leaseline.app/server/core/db/sqlc"
	"leaseline.app/server/internal/model"
)

type tenantStore struct {
	queries *sqlc.Queries
}

func newTenantStore(queries *sqlc.Queries) TenantStore {
	return &tenantStore{queries: queries}
}

func (s *tenantStore) GetByID(ctx context.Context, id int64) (*model.Tenant, error) {
	row, err := s.queries.GetTenant(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTenantModel(row), nil
}

func (s *tenantStore) GetActiveByPhone(ctx context.Context, phone string) (*model.Tenant, error) {
	row, err := s.queries.GetActiveTenantByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTenantModel(row), nil
}

func (s *tenantStore) Create(ctx context.Context, tenant *model.Tenant) error {
	row, err := s.queries.CreateTenant(ctx, sqlc.CreateTenantParams{
		ID:         tenant.ID,
		PropertyID: tenant.PropertyID,
		Name:       tenant.Name,
		Phone:      tenant.Phone,
		Email:      tenant.Email,
		UnitNumber: tenant.UnitNumber,
	})
	if err != nil {
		return err
	}
	*tenant = *toTenantModel(row)
	return nil
}

func (s *tenantStore) ListByProperty(ctx context.Context, propertyID int64) ([]model.Tenant, error) {
	rows, err := s.queries.ListTenantsByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	tenants := make([]model.Tenant, len(rows))
	for i, row := range rows {
		tenants[i] = *toTenantModel(row)
	}
	return tenants, nil
}

func toTenantModel(row sqlc.Tenant) *model.Tenant {
	return &model.Tenant{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		Name:       row.Name,
		Phone:      row.Phone,
		Email:      row.Email,
		UnitNumber: row.UnitNumber,
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt.Time,
	}
}
