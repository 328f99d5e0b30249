// Package matching scores compatibility between a user's quiz answers and
// a Buddy's. Pure computation, no I/O.
package matching

import (
	"math"
	"sort"

	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

// Score returns the percentage of the user's answers that agree with the
// buddy's answer to the same question, rounded half-up to [0,100]. An
// empty user answer set scores 0. Questions the buddy never answered
// simply don't match.
func Score(userAnswers, buddyAnswers []quiz.Answer) int {
	if len(userAnswers) == 0 {
		return 0
	}

	buddyByQuestion := make(map[int]string, len(buddyAnswers))
	for _, a := range buddyAnswers {
		buddyByQuestion[a.QuestionID] = a.Answer
	}

	matches := 0
	for _, a := range userAnswers {
		if answer, ok := buddyByQuestion[a.QuestionID]; ok && answer == a.Answer {
			matches++
		}
	}

	return int(math.Round(float64(matches) / float64(len(userAnswers)) * 100))
}

// Candidate pairs an opaque item (typically a Buddy) with its answer set
// so Rank can stay independent of the persistence model.
type Candidate struct {
	Answers  []quiz.Answer
	Approved bool
	Value    interface{}
}

// Ranked is a scored candidate in ranking order.
type Ranked struct {
	Score int
	Value interface{}
}

// Rank filters to approved candidates, scores each against the user's
// answers, and sorts descending by score. The sort is stable: equal
// scores keep their incoming relative order.
func Rank(candidates []Candidate, userAnswers []quiz.Answer) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if !c.Approved {
			continue
		}
		ranked = append(ranked, Ranked{Score: Score(userAnswers, c.Answers), Value: c.Value})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopMatches keeps ranked entries strictly above the threshold. The
// threshold is a display policy owned by the caller's config.
func TopMatches(ranked []Ranked, threshold int) []Ranked {
	top := make([]Ranked, 0, len(ranked))
	for _, r := range ranked {
		if r.Score > threshold {
			top = append(top, r)
		}
	}
	return top
}
