package certification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terrabuddy/terrabuddy-backend/internal/clock"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

const resetDelay = 1500 * time.Millisecond

func testBank(n int) []quiz.CertificationQuestion {
	bank := make([]quiz.CertificationQuestion, n)
	for i := range bank {
		bank[i] = quiz.CertificationQuestion{
			ID:            i + 1,
			Prompt:        "question",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			CorrectAnswer: "B",
		}
	}
	return bank
}

func newTestExam(n int) (*Exam, *clock.Manual) {
	clk := clock.NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(testBank(n), clk, resetDelay), clk
}

func TestExamAllCorrectPasses(t *testing.T) {
	exam, _ := newTestExam(5)

	for i := 0; i < 5; i++ {
		p, err := exam.Answer("B")
		require.NoError(t, err)
		assert.True(t, p.Correct)
	}

	assert.True(t, exam.Passed())
	assert.Equal(t, 5, exam.Score())
	assert.Len(t, exam.Answers(), 5)

	_, err := exam.Answer("B")
	assert.ErrorIs(t, err, ErrExamPassed)
}

func TestExamWrongAnswerResets(t *testing.T) {
	// A wrong answer at any point must throw away the whole run.
	for wrongAt := 0; wrongAt < 5; wrongAt++ {
		exam, clk := newTestExam(5)

		for i := 0; i < wrongAt; i++ {
			_, err := exam.Answer("B")
			require.NoError(t, err)
		}

		p, err := exam.Answer("A")
		require.NoError(t, err)
		assert.False(t, p.Correct)
		assert.Equal(t, StateResetting, p.State)

		// Answering during the reset window is refused.
		_, err = exam.Answer("B")
		assert.ErrorIs(t, err, ErrExamResetting)

		clk.Advance(resetDelay)

		p = exam.Progress()
		assert.Equal(t, StateAnswering, p.State)
		assert.Equal(t, 0, p.QuestionIndex)
		assert.Equal(t, 0, p.Score)
		assert.Empty(t, exam.Answers())
	}
}

func TestExamResetDelayNotElapsed(t *testing.T) {
	exam, clk := newTestExam(3)

	_, err := exam.Answer("C")
	require.NoError(t, err)

	clk.Advance(resetDelay - time.Millisecond)
	assert.Equal(t, StateResetting, exam.Progress().State)

	clk.Advance(time.Millisecond)
	assert.Equal(t, StateAnswering, exam.Progress().State)
}

func TestExamRestartAfterResetCanStillPass(t *testing.T) {
	exam, clk := newTestExam(3)

	_, err := exam.Answer("B")
	require.NoError(t, err)
	_, err = exam.Answer("A")
	require.NoError(t, err)
	clk.Advance(resetDelay)

	for i := 0; i < 3; i++ {
		_, err := exam.Answer("B")
		require.NoError(t, err)
	}
	assert.True(t, exam.Passed())
	assert.Equal(t, 3, exam.Score())
}

func TestExamProgressHidesCorrectAnswer(t *testing.T) {
	exam, _ := newTestExam(3)

	p := exam.Progress()
	view, ok := p.Question.(quiz.CertificationPublicView)
	require.True(t, ok)
	assert.Equal(t, 1, view.ID)
}

func TestExamFullBank(t *testing.T) {
	clk := clock.NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	exam := New(quiz.CertificationQuestions, clk, resetDelay)

	for range quiz.CertificationQuestions {
		_, err := exam.Answer("B")
		require.NoError(t, err)
	}

	assert.True(t, exam.Passed())
	assert.Equal(t, quiz.CertificationQuestionCount, exam.Score())
}
