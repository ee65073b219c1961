package quiz

// Option is a single keyed entry, used for answer choices and for
// per-option explanation text. Slices of Option keep document order.
type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Explanation is shown once a question has been answered.
type Explanation struct {
	Correct   string   // always shown after answering
	Incorrect []Option // shown only for a wrong answer
	Image     string
}

// Question is one immutable quiz item.
type Question struct {
	Number        string
	Text          string
	Image         string
	Options       []Option
	CorrectAnswer string
	Explanation   Explanation
}

// HasOption reports whether key is one of the question's option keys.
func (q Question) HasOption(key string) bool {
	for _, o := range q.Options {
		if o.Key == key {
			return true
		}
	}
	return false
}

// OptionKeys returns the option keys in display order.
func (q Question) OptionKeys() []string {
	keys := make([]string, len(q.Options))
	for i, o := range q.Options {
		keys[i] = o.Key
	}
	return keys
}

// Answer is the recorded selection for a position. Once recorded it is
// final for the rest of the session.
type Answer struct {
	SelectedKey string `json:"selectedKey"`
	Answered    bool   `json:"answered"`
}

// Result is the outcome of grading a selection against a question.
type Result struct {
	Selected   string `json:"selected"`
	CorrectKey string `json:"correctKey"`
	Correct    bool   `json:"correct"`
}

// Grade compares selected against the question's correct answer.
func Grade(q Question, selected string) Result {
	return Result{
		Selected:   selected,
		CorrectKey: q.CorrectAnswer,
		Correct:    selected == q.CorrectAnswer,
	}
}

// Summary is a tally over the whole question set.
type Summary struct {
	Total    int `json:"total"`
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// Accuracy returns Correct/Answered, or 0 when nothing is answered yet.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}
