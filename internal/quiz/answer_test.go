package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeAppendsNewAnswers(t *testing.T) {
	existing := []Answer{{QuestionID: 1, Answer: "A"}}

	merged := Merge(existing, Answer{QuestionID: 2, Answer: "B"})

	assert.Equal(t, []Answer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: "B"},
	}, merged)
}

func TestMergeReplacesSameQuestion(t *testing.T) {
	existing := []Answer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: "A"},
	}

	merged := Merge(existing, Answer{QuestionID: 1, Answer: "B"})

	assert.Len(t, merged, 2)
	assert.Contains(t, merged, Answer{QuestionID: 1, Answer: "B"})
	assert.Contains(t, merged, Answer{QuestionID: 2, Answer: "A"})
	assert.NotContains(t, merged, Answer{QuestionID: 1, Answer: "A"})
}

func TestMergeEmptyExisting(t *testing.T) {
	merged := Merge(nil, Answer{QuestionID: 3, Answer: "C"})
	assert.Equal(t, []Answer{{QuestionID: 3, Answer: "C"}}, merged)
}

func TestCertificationPublicViewOmitsCorrectAnswer(t *testing.T) {
	for _, q := range CertificationQuestions {
		view := q.ToPublicView()
		assert.Equal(t, q.ID, view.ID)
		assert.Equal(t, q.Prompt, view.Prompt)
	}
}

func TestQuestionBankShape(t *testing.T) {
	assert.Len(t, CompatibilityQuestions, 10)
	assert.Equal(t, 20, CertificationQuestionCount)
	for _, q := range CertificationQuestions {
		assert.Contains(t, []string{"A", "B", "C"}, q.CorrectAnswer)
	}
}
