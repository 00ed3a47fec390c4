package services

import "strings"

// AssistantService matches operator questions against a fixed keyword table
// and returns canned replies. Matching is case-insensitive substring; the
// first matching rule wins.
type AssistantService struct{}

type cannedReply struct {
	keywords []string
	reply    string
}

var cannedReplies = []cannedReply{
	{[]string{"low stock", "reorder"}, "You can review items at or below their reorder point under Inventory > Low Stock Alerts. Adjust stock with a RECEIVED movement once a purchase order arrives."},
	{[]string{"adjust", "stock"}, "Open the item on the Inventory screen and choose Adjust Stock. Pick a movement type, a positive quantity and a reference (PO or order number); the ledger records every change."},
	{[]string{"export", "csv"}, "Every list screen has an Export CSV action. The file uses the visible columns; empty lists cannot be exported."},
	{[]string{"report", "pdf"}, "Marketing reports live under Reports. Preview renders in the browser; Download produces a PDF named after the report title and date."},
	{[]string{"vendor", "commission"}, "Vendor commission rates are set per vendor on the Vendors screen. Only admins can change them."},
	{[]string{"order", "status"}, "Order statuses move through PENDING, PROCESSING, SHIPPED and DELIVERED; CANCELED is terminal. Update them from the Orders screen."},
	{[]string{"integration", "connect"}, "Integrations are managed by admins under Settings > Integrations. Connecting runs a short provider handshake before the status flips."},
	{[]string{"password", "login"}, "Accounts are managed by an administrator. If you are locked out, ask an admin to reset your password."},
}

const fallbackReply = "I can help with inventory, orders, vendors, exports, reports and integrations. Try asking about one of those."

func (s *AssistantService) Reply(message string) string {
	m := strings.ToLower(message)
	for _, r := range cannedReplies {
		for _, kw := range r.keywords {
			if strings.Contains(m, kw) {
				return r.reply
			}
		}
	}
	return fallbackReply
}
