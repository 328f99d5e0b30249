package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewed(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPending, false},
		{StatusApproved, true},
		{StatusRejected, true},
		{"", false},
	}

	for _, tt := range tests {
		a := BuddyApplication{Status: tt.status}
		assert.Equal(t, tt.want, a.Reviewed(), "status=%q", tt.status)
	}
}

func TestAnswersDecodesSnapshot(t *testing.T) {
	a := BuddyApplication{QuizAnswers: []byte(`[{"questionId":1,"answer":"B"},{"questionId":2,"answer":"B"}]`)}

	answers := a.Answers()

	assert.Len(t, answers, 2)
	assert.Equal(t, 1, answers[0].QuestionID)
	assert.Equal(t, "B", answers[0].Answer)
}

func TestAnswersEmptyColumn(t *testing.T) {
	a := BuddyApplication{}
	assert.Empty(t, a.Answers())
}
