// Package sms sends outbound text messages through Twilio and carries the
// canned message templates for the visitor approval flow.
package sms

import "context"

// Result describes a successfully submitted message.
type Result struct {
	// SID is the provider's message identifier, recorded on the
	// Communication row for reconciliation.
	SID string
}

// Gateway submits a single outbound SMS. Implementations do not retry;
// callers decide whether a failed send is fatal for their flow.
type Gateway interface {
	Send(ctx context.Context, to, body string) (*Result, error)
}
