package classify

import (
	"context"
	"fmt"

	"leaseline.app/server/common/llm"
	"leaseline.app/server/internal/model"
)

// FollowUpWriter produces a follow-up message for a lead that has not
// replied since first contact.
type FollowUpWriter interface {
	Generate(ctx context.Context, category model.LeadCategory, originalMessage string, daysSinceContact int) (string, error)
}

type followUpResponse struct {
	Message string `json:"message" jsonschema_description:"The follow-up SMS to send, ready to deliver as-is"`
}

var followUpSchema = llm.GenerateSchema[followUpResponse]()

const followUpSystemPrompt = `Generate a friendly, professional follow-up message for a property management lead.
Keep it concise, personable, and focused on moving the conversation forward.
Adjust tone based on days since last contact and lead category.`

// LLMFollowUpWriter generates follow-up copy with the chat API. The worker
// falls back to the FollowUp templates when generation fails.
type LLMFollowUpWriter struct {
	llm llm.Client
}

func NewLLMFollowUpWriter(client llm.Client) *LLMFollowUpWriter {
	return &LLMFollowUpWriter{llm: client}
}

func (w *LLMFollowUpWriter) Generate(ctx context.Context, category model.LeadCategory, originalMessage string, daysSinceContact int) (string, error) {
	prompt := fmt.Sprintf("Category: %s\nOriginal message: %s\nDays since last contact: %d\n\nGenerate a follow-up message that feels natural and helpful.",
		category, originalMessage, daysSinceContact)

	var response followUpResponse
	_, err := w.llm.Chat(ctx, llm.Request{
		SystemPrompt: followUpSystemPrompt,
		UserPrompt:   prompt,
		SchemaName:   "follow_up_message",
		Schema:       followUpSchema,
		Temperature:  llm.Temp(0.7), // Some variety keeps follow-ups from reading canned
	}, &response)
	if err != nil {
		return "", fmt.Errorf("follow-up generation: %w", err)
	}
	if response.Message == "" {
		return "", fmt.Errorf("follow-up generation: empty message")
	}
	return response.Message, nil
}
