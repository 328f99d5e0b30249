package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BuddyApplication is a prospective Buddy's submission. The quiz answers
// are a snapshot taken at submission time; the applicant's live profile
// answers never touch it. approved and rejected are terminal.
type BuddyApplication struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Email       string         `gorm:"not null;size:255" json:"email"`
	Avatar      string         `gorm:"size:500" json:"avatar,omitempty"`
	Bio         string         `gorm:"type:text" json:"bio"`
	QuizScore   int            `gorm:"not null" json:"quiz_score"`
	QuizAnswers datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"quiz_answers"`
	Status      string         `gorm:"not null;default:'pending';size:20;index" json:"status"`
	SubmittedAt time.Time      `gorm:"not null;index" json:"submitted_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Reviewed reports whether the application is in a terminal state.
func (a *BuddyApplication) Reviewed() bool {
	return a.Status == StatusApproved || a.Status == StatusRejected
}

func (a *BuddyApplication) Answers() []quiz.Answer {
	var answers []quiz.Answer
	if len(a.QuizAnswers) > 0 {
		_ = json.Unmarshal(a.QuizAnswers, &answers)
	}
	return answers
}
