package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{SessionPending, SessionConfirmed, true},
		{SessionPending, SessionCompleted, true},
		{SessionPending, SessionCancelled, true},
		{SessionConfirmed, SessionCompleted, true},
		{SessionConfirmed, SessionCancelled, true},
		{SessionConfirmed, SessionPending, false},
		{SessionCompleted, SessionConfirmed, false},
		{SessionCompleted, SessionCancelled, false},
		{SessionCancelled, SessionConfirmed, false},
		{SessionCancelled, SessionCompleted, false},
		{SessionPending, SessionPending, false},
		{SessionCompleted, SessionCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminalStatusesNeverAdvance(t *testing.T) {
	all := []string{SessionPending, SessionConfirmed, SessionCompleted, SessionCancelled}
	for _, terminal := range []string{SessionCompleted, SessionCancelled} {
		for _, to := range all {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}
