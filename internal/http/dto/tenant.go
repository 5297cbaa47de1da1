package dto

type CreateTenantRequest struct {
	PropertyID int64   `json:"property_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Email      *string `json:"email,omitempty"`
	UnitNumber *string `json:"unit_number,omitempty"`
}
