package sms

import "fmt"

// Templates for the visitor approval flow. These are the exact texts
// tenants and visitors see, so wording changes are product decisions.

func VisitorApprovalRequest(propertyName, visitorPhone string) string {
	return fmt.Sprintf("🔔 Visitor request for %s. Someone at %s is requesting entry. Reply YES to approve, NO to deny, or SAVE to add to trusted list.",
		propertyName, visitorPhone)
}

func VisitorAccessGranted(propertyName string) string {
	return fmt.Sprintf("✅ Access approved for %s! You may enter.", propertyName)
}

func VisitorAccessDenied(propertyName string) string {
	return fmt.Sprintf("❌ Access denied for %s. Please contact the tenant directly.", propertyName)
}
