package quiz

import "fmt"

// User-visible messages for the non-question views.
const (
	MsgLoading     = "Loading questions..."
	MsgNoQuestions = "No questions available."
	MsgLoadFailed  = "Failed to load quiz questions. Please try again later."
)

// ViewState selects which variant of the ViewModel is populated.
type ViewState string

const (
	ViewLoading  ViewState = "loading"
	ViewFailed   ViewState = "failed"
	ViewEmpty    ViewState = "empty"
	ViewQuestion ViewState = "question"
)

// Mark is the visual grading state of an option control.
type Mark string

const (
	MarkNone      Mark = ""
	MarkCorrect   Mark = "correct"
	MarkIncorrect Mark = "incorrect"
)

// ViewModel describes one rendered frame independent of the display
// surface. The content region is fully described by it.
type ViewModel struct {
	State    ViewState `json:"state"`
	Message  string    `json:"message,omitempty"`
	Position int       `json:"position"`
	Total    int       `json:"total"`

	Heading     string          `json:"heading,omitempty"`
	Image       string          `json:"image,omitempty"`
	Options     []OptionView    `json:"options,omitempty"`
	Explanation ExplanationView `json:"explanation"`
	Answered    bool            `json:"answered"`

	Prev    NavView `json:"prev"`
	Next    NavView `json:"next"`
	Summary Summary `json:"summary"`
}

// OptionView is one option control.
type OptionView struct {
	Key      string `json:"key"`
	Text     string `json:"text"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
	Mark     Mark   `json:"mark,omitempty"`
}

// ExplanationView is the explanation panel. Incorrect is only populated
// when the recorded answer was wrong.
type ExplanationView struct {
	Visible   bool     `json:"visible"`
	Correct   string   `json:"correct,omitempty"`
	Incorrect []Option `json:"incorrect,omitempty"`
	Image     string   `json:"image,omitempty"`
}

// NavView is the state of a navigation control. Shown is false when the
// controls are not rendered at all (load failure).
type NavView struct {
	Shown   bool `json:"shown"`
	Enabled bool `json:"enabled"`
}

// Render builds the ViewModel for the controller's current state. It does
// not modify c, so rendering the same state twice gives equal results.
func Render(c *Controller) ViewModel {
	vm := ViewModel{
		Position: c.position,
		Total:    len(c.questions),
		Summary:  c.Summary(),
	}

	switch c.status {
	case StatusLoading:
		vm.State = ViewLoading
		vm.Message = MsgLoading
		return vm
	case StatusFailed:
		vm.State = ViewFailed
		vm.Message = MsgLoadFailed
		return vm
	}

	vm.Prev = NavView{Shown: true, Enabled: c.CanPrevious()}
	vm.Next = NavView{Shown: true, Enabled: c.CanNext()}

	if len(c.questions) == 0 {
		vm.State = ViewEmpty
		vm.Message = MsgNoQuestions
		return vm
	}

	q := c.questions[c.position]
	vm.State = ViewQuestion
	vm.Heading = fmt.Sprintf("%s. %s", q.Number, q.Text)
	vm.Image = q.Image
	vm.Options = make([]OptionView, len(q.Options))
	for i, o := range q.Options {
		vm.Options[i] = OptionView{Key: o.Key, Text: o.Text}
	}
	vm.Explanation.Image = q.Explanation.Image

	if a, ok := c.answers[c.position]; ok {
		reveal(&vm, q, a.SelectedKey)
	}
	return vm
}

// reveal applies the graded state for selected to vm.
func reveal(vm *ViewModel, q Question, selected string) {
	vm.Answered = true
	for i := range vm.Options {
		o := &vm.Options[i]
		o.Disabled = true
		o.Selected = o.Key == selected
		switch {
		case o.Key == q.CorrectAnswer:
			o.Mark = MarkCorrect
		case o.Key == selected:
			o.Mark = MarkIncorrect
		}
	}

	vm.Explanation.Visible = true
	vm.Explanation.Correct = q.Explanation.Correct
	if selected == q.CorrectAnswer {
		return
	}
	for _, e := range q.Explanation.Incorrect {
		if e.Key == q.CorrectAnswer {
			continue
		}
		vm.Explanation.Incorrect = append(vm.Explanation.Incorrect, e)
	}
}
