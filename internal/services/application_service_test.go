package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

// stubExamVerifier stands in for ExamService in tests.
type stubExamVerifier struct {
	passed  bool
	answers []quiz.Answer
	calls   int
}

func (s *stubExamVerifier) Passed(uuid.UUID) (bool, []quiz.Answer) {
	s.calls++
	return s.passed, s.answers
}

func TestCreateRejectsImperfectScore(t *testing.T) {
	exams := &stubExamVerifier{passed: true}
	svc := NewApplicationService(nil, exams)

	for _, score := range []int{0, 1, quiz.CertificationQuestionCount - 1, quiz.CertificationQuestionCount + 1} {
		application, err := svc.Create(&dto.CreateApplicationRequest{
			UserID:    uuid.New(),
			Name:      "Jane",
			Email:     "jane@example.com",
			QuizScore: score,
		})
		assert.ErrorIs(t, err, ErrInvalidQuizScore, "score=%d", score)
		assert.Nil(t, application)
	}

	// The score gate fires before the exam is ever consulted.
	assert.Zero(t, exams.calls)
}

func TestCreateRequiresPassedExam(t *testing.T) {
	exams := &stubExamVerifier{passed: false}
	svc := NewApplicationService(nil, exams)

	application, err := svc.Create(&dto.CreateApplicationRequest{
		UserID:    uuid.New(),
		Name:      "Jane",
		Email:     "jane@example.com",
		QuizScore: quiz.CertificationQuestionCount,
	})

	assert.ErrorIs(t, err, ErrExamNotPassed)
	assert.Nil(t, application)
	assert.Equal(t, 1, exams.calls)
}

func TestReviewRejectsUnknownAction(t *testing.T) {
	svc := NewApplicationService(nil, &stubExamVerifier{})

	application, err := svc.Review(uuid.New(), "escalate")

	assert.ErrorIs(t, err, ErrUnknownReviewAction)
	assert.Nil(t, application)
}
