package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Password    string         `gorm:"not null" json:"-"`
	Avatar      string         `gorm:"size:500" json:"avatar,omitempty"`
	QuizAnswers datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"quiz_answers"`
	IsAdmin     bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Answers decodes the stored compatibility quiz answers. An empty or
// unreadable column just means no answers yet.
func (u *User) Answers() []quiz.Answer {
	var answers []quiz.Answer
	if len(u.QuizAnswers) > 0 {
		_ = json.Unmarshal(u.QuizAnswers, &answers)
	}
	return answers
}
