package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat line inside a session. Immutable once created;
// ordered by CreatedAt within a session.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	SenderName string    `gorm:"size:255" json:"sender_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Read       bool      `gorm:"default:false" json:"read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	Session Session `gorm:"foreignKey:SessionID" json:"-"`
}
