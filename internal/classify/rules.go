package classify

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"leaseline.app/server/common/logger"
	"leaseline.app/server/internal/model"
)

// rule is one row of the priority table. The first rule whose match
// function fires wins, so ordering matters: a message mentioning both an
// apartment and a broken pipe is a rental inquiry, not a maintenance
// request.
type rule struct {
	category model.LeadCategory
	urgency  int32
	response string
	match    func(lower string) bool
}

var (
	unitNumberRe = regexp.MustCompile(`\d{3}`)
	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	budgetRe     = regexp.MustCompile(`\$[\d,]+`)
	nameTokenRe  = regexp.MustCompile(`^[A-Za-z]+$`)
)

const defaultResponse = "Thank you for your message. We'll get back to you shortly."

var rules = []rule{
	{
		category: model.CategoryRentalInquiry,
		urgency:  4,
		response: "Thanks for your interest! Our property is available. I'd be happy to schedule a viewing. When would be a good time for you?",
		match:    anyKeyword("rent", "lease", "available", "apartment", "unit", "bedroom"),
	},
	{
		category: model.CategoryMaintenance,
		urgency:  4,
		response: "I received your maintenance request. I'll arrange for someone to take a look as soon as possible. Is this urgent?",
		match:    anyKeyword("broken", "repair", "fix", "maintenance", "leak", "heat", "ac", "plumbing"),
	},
	{
		category: model.CategoryViewingRequest,
		urgency:  3,
		response: "I'd be happy to show you the property. Are you available this week? I have openings on weekdays after 5pm and weekends.",
		match:    anyKeyword("view", "tour", "see", "visit", "show"),
	},
	{
		category: model.CategoryVisitorEntry,
		urgency:  5,
		response: "I'll notify the tenant right away. Please wait for their approval.",
		match: func(lower string) bool {
			// A bare run of 3 digits is most likely a unit number.
			return anyKeyword("here for", "visiting", "delivery", "guest")(lower) ||
				unitNumberRe.MatchString(lower)
		},
	},
	{
		category: model.CategoryPayment,
		urgency:  3,
		response: "Thanks for reaching out about payment. Let me check your account and get back to you with details.",
		match:    anyKeyword("payment", "rent due", "deposit", "late fee"),
	},
}

func anyKeyword(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// RuleClassifier is the zero-dependency keyword classifier. It never
// returns an error, which makes it the fallback of last resort.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

func (c *RuleClassifier) Classify(ctx context.Context, message, phone string) (Categorization, error) {
	lower := strings.ToLower(message)

	result := Categorization{
		Category:          model.CategoryGeneral,
		Urgency:           3,
		SuggestedResponse: defaultResponse,
	}
	for _, r := range rules {
		if r.match(lower) {
			result.Category = r.category
			result.Urgency = r.urgency
			result.SuggestedResponse = r.response
			break
		}
	}

	result.ExtractedInfo = extractInfo(message)

	slog.InfoContext(ctx, "message classified by rules",
		"phone", phone,
		"category", result.Category,
		"urgency", result.Urgency,
		"message", logger.Truncate(message, 80))

	return result, nil
}

// extractInfo pulls contact details from free text. The name heuristic is
// deliberately naive: a leading alphabetic token of 3+ characters, which
// covers "John here for unit 204" style messages.
func extractInfo(message string) ExtractedInfo {
	var info ExtractedInfo

	words := strings.Fields(message)
	if len(words) > 0 && len(words[0]) > 2 && nameTokenRe.MatchString(words[0]) {
		info.Name = words[0]
	}
	if m := emailRe.FindString(message); m != "" {
		info.Email = m
	}
	if m := budgetRe.FindString(message); m != "" {
		info.Budget = m
	}

	return info
}
