package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Review statuses shared by Buddy and BuddyApplication.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Buddy is an approved companion users can book. Only status=approved
// buddies are matchable and bookable.
type Buddy struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name          string         `gorm:"not null;size:255" json:"name"`
	Avatar        string         `gorm:"size:500" json:"avatar"`
	Bio           string         `gorm:"type:text" json:"bio"`
	Status        string         `gorm:"not null;default:'pending';size:20;index" json:"status"`
	Rating        float64        `gorm:"default:0" json:"rating"`
	TotalSessions int            `gorm:"default:0" json:"total_sessions"`
	HourlyRate    float64        `gorm:"not null" json:"hourly_rate"`
	Availability  datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"availability"`
	Specialties   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"specialties"`
	Verified      bool           `gorm:"default:false" json:"verified"`
	QuizAnswers   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"quiz_answers"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Buddy) Answers() []quiz.Answer {
	var answers []quiz.Answer
	if len(b.QuizAnswers) > 0 {
		_ = json.Unmarshal(b.QuizAnswers, &answers)
	}
	return answers
}
