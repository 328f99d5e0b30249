package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session statuses. Status only ever advances: pending or confirmed may
// move to completed or cancelled; completed and cancelled are terminal.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// Session is a scheduled, priced engagement between a user and a Buddy.
// Price is computed once at booking from the buddy's rate, the session
// type and the duration, and frozen; later rate changes don't touch it.
type Session struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuddyID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"buddy_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string         `gorm:"not null;size:20" json:"type"`
	Status      string         `gorm:"not null;default:'pending';size:20" json:"status"`
	ScheduledAt time.Time      `gorm:"not null;index" json:"scheduled_at"`
	Duration    int            `gorm:"not null" json:"duration"`
	Price       float64        `gorm:"not null" json:"price"`
	Location    string         `gorm:"size:255" json:"location,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Buddy Buddy `gorm:"foreignKey:BuddyID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// CanTransition reports whether a status change is a legal monotonic
// advance.
func CanTransition(from, to string) bool {
	switch from {
	case SessionPending:
		return to == SessionConfirmed || to == SessionCompleted || to == SessionCancelled
	case SessionConfirmed:
		return to == SessionCompleted || to == SessionCancelled
	default:
		return false
	}
}
