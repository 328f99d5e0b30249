package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/models"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// SaveQuizAnswers merges the submitted compatibility answers into the
// user's profile: re-answering a question replaces the old answer, other
// answers are kept.
func (s *UserService) SaveQuizAnswers(userID uuid.UUID, answers []quiz.Answer) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	merged := quiz.Merge(user.Answers(), answers...)
	encoded, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode quiz answers: %w", err)
	}

	if err := s.db.Model(user).Update("quiz_answers", datatypes.JSON(encoded)).Error; err != nil {
		return nil, fmt.Errorf("failed to save quiz answers: %w", err)
	}
	user.QuizAnswers = datatypes.JSON(encoded)
	return user, nil
}
