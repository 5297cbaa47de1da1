package classify

import (
	"context"
	"fmt"
	"log/slog"

	"leaseline.app/server/common/llm"
	"leaseline.app/server/internal/model"
)

type categorizationResponse struct {
	Category          string `json:"category" jsonschema:"enum=rental_inquiry,enum=maintenance,enum=viewing_request,enum=general,enum=visitor_entry,enum=tenant_communication,enum=complaint,enum=payment" jsonschema_description:"Message category"`
	Urgency           int32  `json:"urgency" jsonschema_description:"Urgency from 1 (low) to 5 (most urgent)"`
	SuggestedResponse string `json:"suggested_response" jsonschema_description:"An appropriate SMS reply to send back"`
	ExtractedInfo     struct {
		Name                   string `json:"name" jsonschema_description:"Extracted name if found, else empty"`
		Email                  string `json:"email" jsonschema_description:"Extracted email if found, else empty"`
		PreferredContactMethod string `json:"preferred_contact_method" jsonschema_description:"phone/text/email if mentioned, else empty"`
		Timeframe              string `json:"timeframe" jsonschema_description:"When they need or want something, else empty"`
		Budget                 string `json:"budget" jsonschema_description:"Budget mentioned if any, else empty"`
		SpecificNeeds          string `json:"specific_needs" jsonschema_description:"Specific requirements mentioned, else empty"`
	} `json:"extracted_info" jsonschema_description:"Contact details pulled from the message"`
}

var categorizationSchema = llm.GenerateSchema[categorizationResponse]()

const classifySystemPrompt = `You are an expert at categorizing property management inquiries. Analyze the message and classify it into one of these categories:
- rental_inquiry: Someone interested in renting
- maintenance: Repair/maintenance requests from tenants
- viewing_request: Wanting to schedule a property tour
- general: General questions about properties
- visitor_entry: Requesting visitor access/entry
- tenant_communication: Current tenant general communication
- complaint: Tenant complaints or issues
- payment: Payment-related inquiries

Also determine urgency (1-5, where 5 is most urgent) and suggest an appropriate response.
Extract any useful information like name, email, contact preferences, timeframe, budget, or specific needs.`

// LLMClassifier categorizes messages with a structured-output chat call.
// Callers should wrap it with WithFallback so an API outage degrades to the
// rule table instead of failing ingestion.
type LLMClassifier struct {
	llm       llm.Client
	maxTokens int
}

func NewLLMClassifier(client llm.Client, maxTokens int) *LLMClassifier {
	return &LLMClassifier{llm: client, maxTokens: maxTokens}
}

func (c *LLMClassifier) Classify(ctx context.Context, message, phone string) (Categorization, error) {
	var response categorizationResponse
	_, err := c.llm.Chat(ctx, llm.Request{
		SystemPrompt: classifySystemPrompt,
		UserPrompt:   fmt.Sprintf("Phone: %s\nMessage: %s", phone, message),
		SchemaName:   "lead_categorization",
		Schema:       categorizationSchema,
		MaxTokens:    c.maxTokens,
		Temperature:  llm.Temp(0.2), // Low temp for consistent classification
	}, &response)
	if err != nil {
		return Categorization{}, fmt.Errorf("llm classify: %w", err)
	}

	category := model.LeadCategory(response.Category)
	if !category.Valid() {
		slog.WarnContext(ctx, "llm returned unknown category, defaulting to general",
			"category", response.Category)
		category = model.CategoryGeneral
	}

	result := Categorization{
		Category:          category,
		Urgency:           clampUrgency(response.Urgency),
		SuggestedResponse: response.SuggestedResponse,
		ExtractedInfo: ExtractedInfo{
			Name:                   response.ExtractedInfo.Name,
			Email:                  response.ExtractedInfo.Email,
			PreferredContactMethod: response.ExtractedInfo.PreferredContactMethod,
			Timeframe:              response.ExtractedInfo.Timeframe,
			Budget:                 response.ExtractedInfo.Budget,
			SpecificNeeds:          response.ExtractedInfo.SpecificNeeds,
		},
	}
	if result.SuggestedResponse == "" {
		result.SuggestedResponse = defaultResponse
	}

	slog.InfoContext(ctx, "message classified by llm",
		"phone", phone,
		"category", result.Category,
		"urgency", result.Urgency,
		"model", c.llm.Model())

	return result, nil
}

func clampUrgency(u int32) int32 {
	if u < 1 {
		return 1
	}
	if u > 5 {
		return 5
	}
	return u
}
