package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"leaseline.app/server/core/db/sqlc"
	"leaseline.app/server/internal/model"
)

type propertyStore struct {
	queries *sqlc.Queries
}

func newPropertyStore(queries *sqlc.Queries) PropertyStore {
	return &propertyStore{queries: queries}
}

func (s *propertyStore) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	row, err := s.queries.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPropertyModel(row), nil
}

func (s *propertyStore) GetBySMSNumber(ctx context.Context, smsNumber string) (*model.Property, error) {
	row, err := s.queries.GetPropertyBySMSNumber(ctx, &smsNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPropertyModel(row), nil
}

func (s *propertyStore) Create(ctx context.Context, property *model.Property) error {
	row, err := s.queries.CreateProperty(ctx, sqlc.CreatePropertyParams{
		ID:        property.ID,
		UserID:    property.UserID,
		Name:      property.Name,
		Address:   property.Address,
		Units:     property.Units,
		Rent:      property.Rent,
		SmsNumber: property.SMSNumber,
	})
	if err != nil {
		return err
	}
	*property = *toPropertyModel(row)
	return nil
}

func (s *propertyStore) ListByUser(ctx context.Context, userID int64) ([]model.Property, error) {
	rows, err := s.queries.ListPropertiesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	properties := make([]model.Property, len(rows))
	for i, row := range rows {
		properties[i] = *toPropertyModel(row)
	}
	return properties, nil
}

func toPropertyModel(row sqlc.Property) *model.Property {
	return &model.Property{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Address:   row.Address,
		Units:     row.Units,
		Rent:      row.Rent,
		SMSNumber: row.SmsNumber,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Time,
	}
}
