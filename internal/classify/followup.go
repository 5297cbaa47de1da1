package classify

import "leaseline.app/server/internal/model"

// FollowUp returns deterministic follow-up copy for a lead that has gone
// quiet. The worker prefers an LLM-generated message and uses this when
// generation fails.
func FollowUp(category model.LeadCategory, daysSinceContact int) string {
	switch category {
	case model.CategoryRentalInquiry:
		switch {
		case daysSinceContact <= 1:
			return "Hi! I wanted to follow up on your rental inquiry. Are you still looking for a place?"
		case daysSinceContact <= 3:
			return "Just checking if you're still interested in viewing our property. I have some availability this week."
		default:
			return "Hope you're doing well! Our property is still available if you're still looking. Let me know if you'd like to schedule a viewing."
		}
	case model.CategoryViewingRequest:
		return "Hi! Following up on your request to view the property. I have some openings this week - would any of these times work for you?"
	case model.CategoryMaintenance:
		return "Checking in on your maintenance request. Has the issue been resolved? Please let me know if you need any updates."
	default:
		return "Hi! Just wanted to follow up on your message. Is there anything else I can help you with?"
	}
}
