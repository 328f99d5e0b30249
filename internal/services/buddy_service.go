package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/matching"
	"github.com/terrabuddy/terrabuddy-backend/internal/models"
	"gorm.io/gorm"
)

var ErrBuddyNotFound = errors.New("buddy not found")

type BuddyService struct {
	db             *gorm.DB
	matchThreshold int
}

func NewBuddyService(db *gorm.DB, matchThreshold int) *BuddyService {
	return &BuddyService{db: db, matchThreshold: matchThreshold}
}

// ListApproved returns bookable buddies ordered by rating, best first.
func (s *BuddyService) ListApproved() ([]models.Buddy, error) {
	var buddies []models.Buddy
	err := s.db.Where("status = ?", models.StatusApproved).
		Order("rating DESC").Find(&buddies).Error
	return buddies, err
}

func (s *BuddyService) GetByID(id uuid.UUID) (*models.Buddy, error) {
	var buddy models.Buddy
	if err := s.db.First(&buddy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuddyNotFound
		}
		return nil, err
	}
	return &buddy, nil
}

// BuddyMatch pairs a buddy with their compatibility score for one user.
type BuddyMatch struct {
	models.Buddy
	MatchScore int `json:"match_score"`
}

// Matches scores every approved buddy against the user's quiz answers and
// returns them ranked, best match first. topOnly additionally applies the
// configured display threshold.
func (s *BuddyService) Matches(user *models.User, topOnly bool) ([]BuddyMatch, error) {
	buddies, err := s.ListApproved()
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.Candidate, len(buddies))
	for i, b := range buddies {
		candidates[i] = matching.Candidate{
			Answers:  b.Answers(),
			Approved: b.Status == models.StatusApproved,
			Value:    buddies[i],
		}
	}

	ranked := matching.Rank(candidates, user.Answers())
	if topOnly {
		ranked = matching.TopMatches(ranked, s.matchThreshold)
	}

	matches := make([]BuddyMatch, len(ranked))
	for i, r := range ranked {
		matches[i] = BuddyMatch{Buddy: r.Value.(models.Buddy), MatchScore: r.Score}
	}
	return matches, nil
}
