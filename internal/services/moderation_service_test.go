package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContent(t *testing.T) {
	ms := NewModerationService(nil)

	tests := []struct {
		name       string
		text       string
		allowed    bool
		wantReason string
	}{
		{"clean message", "Looking forward to our walk on Saturday!", true, ""},
		{"empty message", "", true, ""},
		{"profanity", "this is fucking ridiculous", false, "inappropriate_language"},
		{"profanity is case insensitive", "SPAM alert", false, "inappropriate_language"},
		{"word boundary respected", "I passed my assessment", true, ""},
		{"http url", "check http://example.com for details", false, "url_not_allowed"},
		{"www url", "visit www.example.com today", false, "url_not_allowed"},
		{"email address", "reach me at jane@example.com", false, "contact_info_not_allowed"},
		{"phone number", "call me on 555-123-4567", false, "contact_info_not_allowed"},
		{"phone with parens", "my number is (555) 123 4567", false, "contact_info_not_allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, reason := ms.FilterContent(tt.text)
			assert.Equal(t, tt.allowed, allowed)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestGetRejectionMessage(t *testing.T) {
	ms := NewModerationService(nil)

	assert.Contains(t, ms.GetRejectionMessage("url_not_allowed"), "not allowed")
	assert.Contains(t, ms.GetRejectionMessage("contact_info_not_allowed"), "TerraBuddy")
	assert.Equal(t, "Your message could not be sent.", ms.GetRejectionMessage("something_else"))
}
