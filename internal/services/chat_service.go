package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/clock"
	"github.com/terrabuddy/terrabuddy-backend/internal/models"
	"gorm.io/gorm"
)

var ErrMessageRejected = errors.New("message rejected by content filter")

// autoReplyContent is the canned acknowledgement a buddy sends until live
// messaging lands.
const autoReplyContent = "Thanks for your message! Looking forward to our session. Is there anything specific you'd like to discuss?"

type ChatService struct {
	db         *gorm.DB
	moderation *ModerationService
	clk        clock.Clock
	replyDelay time.Duration
}

func NewChatService(db *gorm.DB, moderation *ModerationService, clk clock.Clock, replyDelay time.Duration) *ChatService {
	return &ChatService{db: db, moderation: moderation, clk: clk, replyDelay: replyDelay}
}

// Send stores a message in a session the sender booked. Content passes the
// moderation filter first; a stored message is immutable afterwards. The
// buddy's acknowledgement is scheduled on the clock so tests never sleep.
func (s *ChatService) Send(userID uuid.UUID, sessionID uuid.UUID, senderName, content string) (*models.Message, error) {
	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionMember
	}

	if ok, reason := s.moderation.FilterContent(content); !ok {
		slog.Info("chat message rejected", "session_id", sessionID, "reason", reason)
		return nil, fmt.Errorf("%w: %s", ErrMessageRejected, s.moderation.GetRejectionMessage(reason))
	}

	message := models.Message{
		ID:         uuid.New(),
		SessionID:  session.ID,
		SenderID:   userID,
		SenderName: senderName,
		Content:    content,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.scheduleAutoReply(session)
	return &message, nil
}

func (s *ChatService) scheduleAutoReply(session models.Session) {
	s.clk.AfterFunc(s.replyDelay, func() {
		var buddy models.Buddy
		if err := s.db.First(&buddy, "id = ?", session.BuddyID).Error; err != nil {
			slog.Error("auto-reply buddy lookup failed", "error", err, "buddy_id", session.BuddyID)
			return
		}

		reply := models.Message{
			ID:         uuid.New(),
			SessionID:  session.ID,
			SenderID:   buddy.ID,
			SenderName: buddy.Name,
			Content:    autoReplyContent,
		}
		if err := s.db.Create(&reply).Error; err != nil {
			slog.Error("auto-reply create failed", "error", err, "session_id", session.ID)
		}
	})
}

// List returns a session's messages oldest first, for its booking user.
func (s *ChatService) List(userID, sessionID uuid.UUID) ([]models.Message, error) {
	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionMember
	}

	var messages []models.Message
	err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").Find(&messages).Error
	return messages, err
}
