package model

import "time"

type Property struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Units   int32  `json:"units"`
	Rent    *string `json:"rent,omitempty"`
	// SMSNumber is the property's dedicated inbound number. Inbound webhook
	// messages from unknown senders are routed to a property by matching
	// the To number against this.
	SMSNumber *string   `json:"sms_number,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
