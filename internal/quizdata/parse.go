package quizdata

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/abhisek/quizview/internal/quiz"
)

// ValidationError reports a malformed question document. Index is the
// offending question, or -1 when the problem is document-wide.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid question document: %v", e.Err)
	}
	return fmt.Sprintf("invalid question at index %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Parse validates raw and decodes it into questions. Object key order in
// "options" and "explanation.incorrect" is kept as display order, which a
// plain map decode would lose.
func Parse(raw []byte) ([]quiz.Question, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	doc := gjson.ParseBytes(raw)
	questions := make([]quiz.Question, 0, len(doc.Array()))

	var perr error
	doc.ForEach(func(_, item gjson.Result) bool {
		q, err := parseQuestion(item)
		if err != nil {
			perr = &ValidationError{Index: len(questions), Err: err}
			return false
		}
		questions = append(questions, q)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return questions, nil
}

func parseQuestion(item gjson.Result) (quiz.Question, error) {
	q := quiz.Question{
		Number:        item.Get("question_number").String(),
		Text:          item.Get("question_text").String(),
		Image:         item.Get("question_image").String(),
		CorrectAnswer: item.Get("correct_answer").String(),
	}

	opts, err := orderedEntries(item.Get("options"))
	if err != nil {
		return quiz.Question{}, fmt.Errorf("options: %w", err)
	}
	q.Options = opts

	if !q.HasOption(q.CorrectAnswer) {
		return quiz.Question{}, fmt.Errorf("correct_answer %q is not an option key %v", q.CorrectAnswer, q.OptionKeys())
	}

	exp := item.Get("explanation")
	q.Explanation.Correct = exp.Get("correct").String()
	q.Explanation.Image = exp.Get("explanation_image").String()
	incorrect, err := orderedEntries(exp.Get("incorrect"))
	if err != nil {
		return quiz.Question{}, fmt.Errorf("explanation.incorrect: %w", err)
	}
	q.Explanation.Incorrect = incorrect

	return q, nil
}

// orderedEntries walks a JSON object in document order. Missing or null
// objects yield nil.
func orderedEntries(obj gjson.Result) ([]quiz.Option, error) {
	if !obj.IsObject() {
		return nil, nil
	}
	var (
		out     []quiz.Option
		seen    = make(map[string]bool)
		dup     string
		haveDup bool
	)
	obj.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if seen[key] {
			dup, haveDup = key, true
			return false
		}
		seen[key] = true
		out = append(out, quiz.Option{Key: key, Text: v.String()})
		return true
	})
	if haveDup {
		return nil, fmt.Errorf("duplicate key %q", dup)
	}
	return out, nil
}
