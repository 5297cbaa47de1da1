package model

import "time"

// User is a landlord account. Authentication is handled by an external
// identity provider; this record only anchors property ownership.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
