package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment so business context
// (lead_id, tenant_id, approval_id, ...) is included in every log statement
// without threading it through call sites.
type LogFields struct {
	LeadID     *int64  // Lead being ingested or followed up
	TenantID   *int64  // Tenant resolved from an inbound phone number
	PropertyID *int64  // Owning property
	ApprovalID *int64  // Visitor approval request
	Phone      *string // Counterparty phone number
	Category   *string // Classified message category
	Component  string  // Component name (e.g., "leaseline.service.visitor_approval")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.LeadID != nil {
		result.LeadID = next.LeadID
	}
	if next.TenantID != nil {
		result.TenantID = next.TenantID
	}
	if next.PropertyID != nil {
		result.PropertyID = next.PropertyID
	}
	if next.ApprovalID != nil {
		result.ApprovalID = next.ApprovalID
	}
	if next.Phone != nil {
		result.Phone = next.Phone
	}
	if next.Category != nil {
		result.Category = next.Category
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if
// truncated. Useful for logging potentially long message bodies.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
