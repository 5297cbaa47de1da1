package dto

type CreatePropertyRequest struct {
	UserID    int64   `json:"user_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Units     int32   `json:"units" binding:"required,min=1"`
	Rent      *string `json:"rent,omitempty"`
	SMSNumber *string `json:"sms_number,omitempty"`
}
