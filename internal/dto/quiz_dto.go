package dto

import "github.com/terrabuddy/terrabuddy-backend/internal/quiz"

type SaveQuizAnswersRequest struct {
	Answers []quiz.Answer `json:"answers" validate:"required,min=1,dive"`
}

// ExamAnswerRequest submits one certification-quiz answer.
type ExamAnswerRequest struct {
	Answer string `json:"answer" validate:"required,oneof=A B C"`
}
