package quiz

// Answer is a single quiz response: the question and the option letter
// chosen. The compatibility quiz uses A/B, the certification quiz A/B/C.
// JSON field names follow the mobile client's wire format.
type Answer struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// Merge replaces any existing answer for the same question and appends the
// rest, so re-answering a question never duplicates it.
func Merge(existing []Answer, incoming ...Answer) []Answer {
	merged := make([]Answer, 0, len(existing)+len(incoming))
	for _, a := range existing {
		replaced := false
		for _, in := range incoming {
			if in.QuestionID == a.QuestionID {
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, a)
		}
	}
	return append(merged, incoming...)
}
