package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/models"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidQuizScore    = fmt.Errorf("quiz score must be %d/%d", quiz.CertificationQuestionCount, quiz.CertificationQuestionCount)
	ErrExamNotPassed       = errors.New("certification exam not passed")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationReviewed = errors.New("application already reviewed")
	ErrUnknownReviewAction = errors.New("invalid action")
)

// Review actions accepted by PATCH /api/applications.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// examVerifier reports whether a user's certification exam run passed,
// along with the answers recorded server-side during that run.
type examVerifier interface {
	Passed(userID uuid.UUID) (bool, []quiz.Answer)
}

type ApplicationService struct {
	db    *gorm.DB
	exams examVerifier
}

func NewApplicationService(db *gorm.DB, exams examVerifier) *ApplicationService {
	return &ApplicationService{db: db, exams: exams}
}

// Create accepts a submission only when the reported certification score
// is a perfect run and the server-side exam for the applicant actually
// reached the passed state. The exam's own answer snapshot is recorded,
// not the client's copy.
func (s *ApplicationService) Create(req *dto.CreateApplicationRequest) (*models.BuddyApplication, error) {
	if req.QuizScore != quiz.CertificationQuestionCount {
		return nil, ErrInvalidQuizScore
	}

	passed, examAnswers := s.exams.Passed(req.UserID)
	if !passed {
		return nil, ErrExamNotPassed
	}

	answers, err := json.Marshal(examAnswers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode quiz answers: %w", err)
	}

	application := models.BuddyApplication{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Name:        req.Name,
		Email:       req.Email,
		Bio:         req.Bio,
		QuizScore:   req.QuizScore,
		QuizAnswers: datatypes.JSON(answers),
		Status:      models.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&application).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &application, nil
}

// ListPending returns unreviewed applications, newest first.
func (s *ApplicationService) ListPending() ([]models.BuddyApplication, error) {
	var applications []models.BuddyApplication
	err := s.db.Where("status = ?", models.StatusPending).
		Order("submitted_at DESC").Find(&applications).Error
	return applications, err
}

// Review transitions a pending application to approved or rejected. Both
// outcomes are terminal: a second review attempt fails with
// ErrApplicationReviewed and leaves the record untouched. Approval also
// creates the Buddy record from the application snapshot, in the same
// transaction.
func (s *ApplicationService) Review(id uuid.UUID, action string) (*models.BuddyApplication, error) {
	var status string
	switch action {
	case ActionApprove:
		status = models.StatusApproved
	case ActionReject:
		status = models.StatusRejected
	default:
		return nil, ErrUnknownReviewAction
	}

	var application models.BuddyApplication
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&application, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		if application.Reviewed() {
			return ErrApplicationReviewed
		}

		if err := tx.Model(&application).Update("status", status).Error; err != nil {
			return err
		}

		if status == models.StatusApproved {
			buddy := models.Buddy{
				ID:          uuid.New(),
				UserID:      &application.UserID,
				Name:        application.Name,
				Avatar:      application.Avatar,
				Bio:         application.Bio,
				Status:      models.StatusApproved,
				HourlyRate:  defaultHourlyRate,
				Verified:    true,
				QuizAnswers: application.QuizAnswers,
			}
			if err := tx.Create(&buddy).Error; err != nil {
				return fmt.Errorf("failed to create buddy from application: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// defaultHourlyRate is the starting rate for newly approved buddies until
// they set their own.
const defaultHourlyRate = 20.0
