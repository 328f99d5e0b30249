// Package certification implements the all-or-nothing boundary-knowledge
// quiz a prospective Buddy must pass before applying. One wrong answer
// resets the whole run.
package certification

import (
	"errors"
	"sync"
	"time"

	"github.com/terrabuddy/terrabuddy-backend/internal/clock"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

type State string

const (
	// StateAnswering: the respondent is partway through the bank.
	StateAnswering State = "answering"
	// StateResetting: a wrong answer was just given; the exam returns to
	// question 0 with score 0 after the reset delay.
	StateResetting State = "resetting"
	// StatePassed: every question answered correctly, in order. Terminal.
	StatePassed State = "passed"
)

var (
	ErrExamPassed    = errors.New("exam already passed")
	ErrExamResetting = errors.New("exam is resetting after a wrong answer")
)

// Exam tracks one respondent's run through the certification bank.
// It is safe for concurrent use; the reset timer fires on another
// goroutine.
type Exam struct {
	mu        sync.Mutex
	questions []quiz.CertificationQuestion
	clk       clock.Clock
	delay     time.Duration

	state      State
	questionAt int
	score      int
	answers    []quiz.Answer
	resetTimer clock.Timer
}

// New starts an exam over the given bank in answering(0,0). delay is how
// long the resetting state lasts before the run restarts.
func New(questions []quiz.CertificationQuestion, clk clock.Clock, delay time.Duration) *Exam {
	return &Exam{
		questions: questions,
		clk:       clk,
		delay:     delay,
		state:     StateAnswering,
	}
}

// Progress is a snapshot of the exam for callers and serialization.
type Progress struct {
	State         State       `json:"state"`
	QuestionIndex int         `json:"question_index"`
	Score         int         `json:"score"`
	Total         int         `json:"total"`
	Correct       bool        `json:"correct"`
	Question      interface{} `json:"question,omitempty"`
}

// Answer submits the option letter for the current question. A correct
// answer advances (and passes after the final question); a wrong answer
// moves to resetting and schedules the automatic restart. Prior score
// never survives a reset.
func (e *Exam) Answer(letter string) (Progress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StatePassed:
		return e.progressLocked(false), ErrExamPassed
	case StateResetting:
		return e.progressLocked(false), ErrExamResetting
	}

	q := e.questions[e.questionAt]
	if letter != q.CorrectAnswer {
		e.state = StateResetting
		e.resetTimer = e.clk.AfterFunc(e.delay, e.reset)
		return e.progressLocked(false), nil
	}

	e.answers = quiz.Merge(e.answers, quiz.Answer{QuestionID: q.ID, Answer: letter})
	e.score++
	e.questionAt++
	if e.questionAt == len(e.questions) {
		e.state = StatePassed
	}
	return e.progressLocked(true), nil
}

func (e *Exam) reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateResetting {
		return
	}
	e.state = StateAnswering
	e.questionAt = 0
	e.score = 0
	e.answers = nil
}

// Progress reports the current state without mutating it.
func (e *Exam) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progressLocked(false)
}

func (e *Exam) progressLocked(correct bool) Progress {
	p := Progress{
		State:         e.state,
		QuestionIndex: e.questionAt,
		Score:         e.score,
		Total:         len(e.questions),
		Correct:       correct,
	}
	if e.state == StateAnswering && e.questionAt < len(e.questions) {
		p.Question = e.questions[e.questionAt].ToPublicView()
	}
	return p
}

// Passed reports whether the run reached the terminal passed state.
func (e *Exam) Passed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == StatePassed
}

// Answers returns a copy of the correct answers recorded so far, in
// submission order. Used as the application's snapshot after a pass.
func (e *Exam) Answers() []quiz.Answer {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]quiz.Answer, len(e.answers))
	copy(out, e.answers)
	return out
}

// Score returns the current run's score.
func (e *Exam) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}
