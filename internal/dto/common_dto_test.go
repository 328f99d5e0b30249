package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthRequestValidation(t *testing.T) {
	valid := AuthRequest{Action: "signup", Email: "jane@example.com", Name: "Jane", Password: "supersecret"}
	assert.NoError(t, Validate(&valid))

	tests := []struct {
		name string
		req  AuthRequest
	}{
		{"unknown action", AuthRequest{Action: "register", Email: "jane@example.com", Password: "supersecret"}},
		{"bad email", AuthRequest{Action: "login", Email: "not-an-email", Password: "supersecret"}},
		{"short password", AuthRequest{Action: "login", Email: "jane@example.com", Password: "short"}},
		{"missing password", AuthRequest{Action: "login", Email: "jane@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(&tt.req))
		})
	}
}

func TestCreateSessionRequestValidation(t *testing.T) {
	valid := CreateSessionRequest{
		BuddyID:     uuid.New(),
		Type:        "video",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Duration:    60,
	}
	assert.NoError(t, Validate(&valid))

	bad := valid
	bad.Type = "phone"
	assert.Error(t, Validate(&bad))

	bad = valid
	bad.Duration = 0
	assert.Error(t, Validate(&bad))
}

func TestUpdateSessionRequestValidation(t *testing.T) {
	for _, status := range []string{"confirmed", "completed", "cancelled"} {
		assert.NoError(t, Validate(&UpdateSessionRequest{Status: status}))
	}
	assert.Error(t, Validate(&UpdateSessionRequest{Status: "pending"}))
	assert.Error(t, Validate(&UpdateSessionRequest{}))
}

func TestSendMessageRequestValidation(t *testing.T) {
	assert.NoError(t, Validate(&SendMessageRequest{Content: "hello"}))
	assert.Error(t, Validate(&SendMessageRequest{}))

	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}
	assert.Error(t, Validate(&SendMessageRequest{Content: string(long)}))
}
