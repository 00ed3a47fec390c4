package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantReply(t *testing.T) {
	svc := &AssistantService{}

	cases := []struct {
		message string
		want    string // substring expected in the reply
	}{
		{"How do I handle LOW STOCK alerts?", "reorder point"},
		{"how can i adjust stock for a product", "Adjust Stock"},
		{"can I export this list to csv?", "Export CSV"},
		{"where is the pdf report", "Marketing reports"},
		{"what commission does a vendor pay", "commission rates"},
		{"change an order status", "PENDING"},
		{"connect the stripe integration", "handshake"},
		{"i forgot my password", "reset your password"},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Contains(t, svc.Reply(tc.message), tc.want)
		})
	}
}

func TestAssistantFallback(t *testing.T) {
	svc := &AssistantService{}
	reply := svc.Reply("what is the weather like today")
	assert.Contains(t, reply, "Try asking about one of those")
}

func TestAssistantFirstRuleWins(t *testing.T) {
	svc := &AssistantService{}
	// mentions both "low stock" and "export"; the low-stock rule is first
	reply := svc.Reply("export my low stock items")
	assert.Contains(t, reply, "Low Stock Alerts")
}
