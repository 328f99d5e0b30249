package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/certification"
	"github.com/terrabuddy/terrabuddy-backend/internal/clock"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

var ErrExamNotStarted = errors.New("exam not started")

// ExamService keeps one in-flight certification exam per user. Exam runs
// are ephemeral by design: what persists is the application created after
// a pass. Each exam is owned by its one respondent, so the only shared
// state is the registry map itself.
type ExamService struct {
	mu    sync.Mutex
	exams map[uuid.UUID]*certification.Exam

	clk        clock.Clock
	resetDelay time.Duration
}

// examResetDelay mirrors the client's brief "incorrect answer" interstitial
// before the run restarts.
const examResetDelay = 1500 * time.Millisecond

func NewExamService(clk clock.Clock) *ExamService {
	return &ExamService{
		exams:      make(map[uuid.UUID]*certification.Exam),
		clk:        clk,
		resetDelay: examResetDelay,
	}
}

// Start begins a fresh exam for the user, discarding any previous run.
func (s *ExamService) Start(userID uuid.UUID) certification.Progress {
	exam := certification.New(quiz.CertificationQuestions, s.clk, s.resetDelay)
	s.mu.Lock()
	s.exams[userID] = exam
	s.mu.Unlock()
	return exam.Progress()
}

func (s *ExamService) Answer(userID uuid.UUID, letter string) (certification.Progress, error) {
	exam, ok := s.get(userID)
	if !ok {
		return certification.Progress{}, ErrExamNotStarted
	}
	return exam.Answer(letter)
}

func (s *ExamService) Progress(userID uuid.UUID) (certification.Progress, error) {
	exam, ok := s.get(userID)
	if !ok {
		return certification.Progress{}, ErrExamNotStarted
	}
	return exam.Progress(), nil
}

// Passed reports whether the user's current run reached the passed state,
// along with the recorded answer snapshot.
func (s *ExamService) Passed(userID uuid.UUID) (bool, []quiz.Answer) {
	exam, ok := s.get(userID)
	if !ok {
		return false, nil
	}
	return exam.Passed(), exam.Answers()
}

func (s *ExamService) get(userID uuid.UUID) (*certification.Exam, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exam, ok := s.exams[userID]
	return exam, ok
}
