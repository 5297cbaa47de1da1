// Package classify turns raw inbound SMS text into a lead categorization:
// a category, an urgency score, a suggested auto-response, and whatever
// contact details can be pulled out of the message.
package classify

import (
	"context"

	"leaseline.app/server/internal/model"
)

// Categorization is the result of classifying an inbound message.
type Categorization struct {
	Category          model.LeadCategory
	Urgency           int32 // 1-5, 5 most urgent
	SuggestedResponse string
	ExtractedInfo     ExtractedInfo
}

// ExtractedInfo holds contact details pulled from the message body.
// All fields are best-effort and may be empty.
type ExtractedInfo struct {
	Name                   string `json:"name,omitempty"`
	Email                  string `json:"email,omitempty"`
	PreferredContactMethod string `json:"preferred_contact_method,omitempty"`
	Timeframe              string `json:"timeframe,omitempty"`
	Budget                 string `json:"budget,omitempty"`
	SpecificNeeds          string `json:"specific_needs,omitempty"`
}

// Classifier categorizes a single inbound message. The phone number is
// context for the classifier, not an output.
type Classifier interface {
	Classify(ctx context.Context, message, phone string) (Categorization, error)
}
