package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

func answers(pairs ...interface{}) []quiz.Answer {
	out := make([]quiz.Answer, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, quiz.Answer{QuestionID: pairs[i].(int), Answer: pairs[i+1].(string)})
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		user  []quiz.Answer
		buddy []quiz.Answer
		want  int
	}{
		{"empty user answers", nil, answers(1, "A"), 0},
		{"identical answers", answers(1, "A", 2, "B"), answers(1, "A", 2, "B"), 100},
		{"half agreement", answers(1, "B", 2, "A"), answers(1, "B", 2, "B"), 50},
		{"no agreement", answers(1, "A"), answers(1, "B"), 0},
		{"buddy missing a question", answers(1, "A", 2, "B", 3, "A"), answers(1, "A"), 33},
		{"rounds half up", answers(1, "A", 2, "A", 3, "A", 4, "A", 5, "A", 6, "A", 7, "A", 8, "A"), answers(1, "A", 2, "A", 3, "A"), 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.user, tt.buddy))
		})
	}
}

func TestScoreBounds(t *testing.T) {
	user := answers(1, "A", 2, "B", 3, "A")
	for _, buddy := range [][]quiz.Answer{nil, answers(1, "A"), answers(1, "A", 2, "B", 3, "A"), answers(9, "C")} {
		got := Score(user, buddy)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestRankFiltersAndSorts(t *testing.T) {
	user := answers(1, "A", 2, "B")
	candidates := []Candidate{
		{Answers: answers(1, "B", 2, "A"), Approved: true, Value: "none"},
		{Answers: answers(1, "A", 2, "B"), Approved: false, Value: "unapproved"},
		{Answers: answers(1, "A", 2, "B"), Approved: true, Value: "perfect"},
		{Answers: answers(1, "A", 2, "A"), Approved: true, Value: "half"},
	}

	ranked := Rank(candidates, user)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "perfect", ranked[0].Value)
	assert.Equal(t, 100, ranked[0].Score)
	assert.Equal(t, "half", ranked[1].Value)
	assert.Equal(t, "none", ranked[2].Value)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i].Score, ranked[i-1].Score)
	}
}

func TestRankStableOnTies(t *testing.T) {
	user := answers(1, "A")
	candidates := []Candidate{
		{Answers: answers(1, "A"), Approved: true, Value: "first"},
		{Answers: answers(1, "A"), Approved: true, Value: "second"},
		{Answers: answers(1, "A"), Approved: true, Value: "third"},
	}

	ranked := Rank(candidates, user)

	assert.Equal(t, "first", ranked[0].Value)
	assert.Equal(t, "second", ranked[1].Value)
	assert.Equal(t, "third", ranked[2].Value)
}

func TestTopMatchesThresholdIsStrict(t *testing.T) {
	ranked := []Ranked{
		{Score: 100, Value: "a"},
		{Score: 61, Value: "b"},
		{Score: 60, Value: "c"},
		{Score: 10, Value: "d"},
	}

	top := TopMatches(ranked, 60)

	assert.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Value)
	assert.Equal(t, "b", top[1].Value)
}
