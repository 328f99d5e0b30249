package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/models"
	"github.com/terrabuddy/terrabuddy-backend/internal/pricing"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrBuddyNotBookable  = errors.New("buddy is not approved for bookings")
	ErrInvalidTransition = errors.New("invalid session status transition")
	ErrNotSessionMember  = errors.New("not a participant of this session")
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Book creates the session in one step: the price is computed from the
// buddy's current rate and frozen on the record. Later rate changes never
// reprice an existing session.
func (s *BookingService) Book(userID uuid.UUID, req *dto.CreateSessionRequest) (*models.Session, error) {
	var buddy models.Buddy
	if err := s.db.First(&buddy, "id = ?", req.BuddyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuddyNotFound
		}
		return nil, err
	}
	if buddy.Status != models.StatusApproved {
		return nil, ErrBuddyNotBookable
	}

	session := models.Session{
		ID:          uuid.New(),
		BuddyID:     buddy.ID,
		UserID:      userID,
		Type:        req.Type,
		Status:      models.SessionConfirmed,
		ScheduledAt: req.ScheduledAt,
		Duration:    req.Duration,
		Price:       pricing.Price(buddy.HourlyRate, req.Type, req.Duration),
		Location:    req.Location,
		Notes:       req.Notes,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

// ListForUser returns the user's sessions, most recently scheduled first.
func (s *BookingService) ListForUser(userID uuid.UUID) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Where("user_id = ?", userID).
		Order("scheduled_at DESC").Find(&sessions).Error
	return sessions, err
}

func (s *BookingService) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// UpdateStatus advances the session's status. Only the booking user may do
// it, and only along the monotonic pending/confirmed → completed|cancelled
// paths.
func (s *BookingService) UpdateStatus(userID, sessionID uuid.UUID, status string) (*models.Session, error) {
	session, err := s.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionMember
	}
	if !models.CanTransition(session.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.db.Model(session).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}
	session.Status = status
	return session, nil
}
